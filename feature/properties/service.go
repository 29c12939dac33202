package properties

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"foodfunk/core/source"

	"go.uber.org/zap"
)

// ErrUnknownTable is returned for table names that are not bound.
var ErrUnknownTable = errors.New("unknown table")

// Service resolves subjects against the bound tables.
type Service struct {
	tables map[string]Binding
	logger *zap.Logger
}

// NewService creates a service over bindings.
func NewService(logger *zap.Logger, bindings ...Binding) *Service {
	s := &Service{tables: make(map[string]Binding, len(bindings)), logger: logger}
	for _, b := range bindings {
		s.tables[b.Name()] = b
	}
	return s
}

// Tables returns the bound table names, sorted.
func (s *Service) Tables() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Service) table(name string) (Binding, error) {
	b, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return b, nil
}

// ResolveKey resolves a raw "id" or "id@meta" key against table.
func (s *Service) ResolveKey(table, key string) (*Resolution, error) {
	b, err := s.table(table)
	if err != nil {
		return nil, err
	}
	r := b.Resolve(CandidateKeys(key))
	r.Key = key
	return &r, nil
}

// Export returns the current entries of table.
func (s *Service) Export(table string) (map[string]any, error) {
	b, err := s.table(table)
	if err != nil {
		return nil, err
	}
	return b.Export(), nil
}

// ExportAll returns the current entries of every table keyed by table name.
func (s *Service) ExportAll() map[string]map[string]any {
	out := make(map[string]map[string]any, len(s.tables))
	for name, b := range s.tables {
		out[name] = b.Export()
	}
	return out
}

// Reload reloads table from its sources.
func (s *Service) Reload(ctx context.Context, table string) (*source.Report, error) {
	b, err := s.table(table)
	if err != nil {
		return nil, err
	}
	return b.Reload(ctx)
}

// ReloadAll reloads every table. All tables are attempted; the errors are joined.
func (s *Service) ReloadAll(ctx context.Context) error {
	var errs []error
	for _, name := range s.Tables() {
		if _, err := s.tables[name].Reload(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
