package integrity

import (
	"context"
	"errors"

	"foodfunk/core/source"
	"foodfunk/core/storage"
	"foodfunk/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotConfigured is returned by checks whose backend is disabled.
var ErrNotConfigured = errors.New("backend is not configured")

// Table names a property table, its sources and its value validator.
type Table struct {
	Name     string
	Sources  []source.Source
	Validate checks.Validator
}

// Service handles integrity checks.
type Service struct {
	client   storage.Client
	bucket   string
	object   string
	db       *gorm.DB
	tables   []Table
	defaults DefaultsFunc
	logger   *zap.Logger
}

// DefaultsFunc renders the property file uploaded when the storage object is
// fixed. It should leave out keys already configured below the storage layer.
type DefaultsFunc func(ctx context.Context) ([]byte, error)

// Options holds the backends the service checks. Nil backends are skipped.
type Options struct {
	Client   storage.Client
	Bucket   string
	Object   string
	DB       *gorm.DB
	Tables   []Table
	Defaults DefaultsFunc
}

// NewService creates a new integrity service.
func NewService(opts Options, logger *zap.Logger) *Service {
	return &Service{
		client:   opts.Client,
		bucket:   opts.Bucket,
		object:   opts.Object,
		db:       opts.DB,
		tables:   opts.Tables,
		defaults: opts.Defaults,
		logger:   logger,
	}
}

func (s *Service) sections() []string {
	names := make([]string, 0, len(s.tables))
	for _, t := range s.tables {
		names = append(names, t.Name)
	}
	return names
}

// CheckStorage inspects the shared property object.
func (s *Service) CheckStorage(ctx context.Context) (*checks.ObjectReport, error) {
	if s.client == nil {
		return nil, ErrNotConfigured
	}
	return checks.CheckObject(ctx, s.client, s.bucket, s.object, s.sections())
}

// FixStorage uploads the default property file.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil || s.defaults == nil {
		return ErrNotConfigured
	}
	data, err := s.defaults(ctx)
	if err != nil {
		return err
	}
	return checks.FixObject(ctx, s.client, s.bucket, s.object, s.logger, data)
}

// CheckDatabase inspects the override table schema.
func (s *Service) CheckDatabase() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	return checks.CheckSchema(s.db)
}

// FixDatabase migrates the override table.
func (s *Service) FixDatabase(ctx context.Context) error {
	if s.db == nil {
		return ErrNotConfigured
	}
	return checks.FixSchema(ctx, s.db)
}

// CheckSources loads and validates every source of every table.
func (s *Service) CheckSources(ctx context.Context) map[string][]checks.SourceReport {
	report := make(map[string][]checks.SourceReport, len(s.tables))
	for _, t := range s.tables {
		reports := make([]checks.SourceReport, 0, len(t.Sources))
		for _, src := range t.Sources {
			reports = append(reports, checks.CheckSource(ctx, src, t.Validate))
		}
		report[t.Name] = reports
	}
	return report
}
