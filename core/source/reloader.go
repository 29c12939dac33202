package source

import (
	"context"
	"fmt"
	"sort"
	"time"

	"foodfunk/core/matching"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Seeder registers a table's default entries. It runs against a staging table
// after the sources are merged, so defaults never override loaded values.
type Seeder[T any] func(t *matching.Table[T])

// Recorder is notified of every reload attempt.
type Recorder interface {
	RecordReload(table string, err error, elapsed time.Duration)
}

// Report summarizes a reload.
type Report struct {
	Table    string        `json:"table"`
	Sources  []string      `json:"sources"`
	Entries  int           `json:"entries"`
	Skipped  []string      `json:"skipped"`
	Duration time.Duration `json:"duration"`
}

// Reloader rebuilds a table from its sources and publishes the result with a
// single atomic swap. A failed reload leaves the current table in place.
type Reloader[T any] struct {
	table    *matching.Table[T]
	decode   Decoder[T]
	sources  []Source
	seed     Seeder[T]
	logger   *zap.Logger
	recorder Recorder
	sf       singleflight.Group
}

// NewReloader creates a reloader for table. Sources are applied in order;
// later sources override earlier ones key by key.
func NewReloader[T any](table *matching.Table[T], decode Decoder[T], seed Seeder[T], logger *zap.Logger, sources ...Source) *Reloader[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reloader[T]{
		table:   table,
		decode:  decode,
		sources: sources,
		seed:    seed,
		logger:  logger.With(zap.String("table", table.Name())),
	}
}

// SetRecorder attaches a reload recorder.
func (r *Reloader[T]) SetRecorder(rec Recorder) {
	r.recorder = rec
}

// Table returns the table being reloaded.
func (r *Reloader[T]) Table() *matching.Table[T] {
	return r.table
}

// Reload loads every source, decodes the merged entries, seeds defaults and
// swaps the table. Concurrent calls share one reload.
func (r *Reloader[T]) Reload(ctx context.Context) (*Report, error) {
	res, err, shared := r.sf.Do(r.table.Name(), func() (interface{}, error) {
		start := time.Now()
		report, err := r.reload(ctx)
		elapsed := time.Since(start)
		if r.recorder != nil {
			r.recorder.RecordReload(r.table.Name(), err, elapsed)
		}
		if err != nil {
			return nil, err
		}
		report.Duration = elapsed
		return report, nil
	})
	if err != nil {
		r.logger.Error("Reload failed, keeping current table", zap.Error(err))
		return nil, err
	}
	if shared {
		r.logger.Debug("Joined in-flight reload")
	}
	return res.(*Report), nil
}

func (r *Reloader[T]) reload(ctx context.Context) (*Report, error) {
	report := &Report{Table: r.table.Name(), Skipped: []string{}}

	raw := make(map[string]any)
	for _, src := range r.sources {
		entries, err := src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.Name(), err)
		}
		for k, v := range entries {
			raw[k] = v
		}
		report.Sources = append(report.Sources, src.Name())
		r.logger.Debug("Loaded source", zap.String("source", src.Name()), zap.Int("entries", len(entries)))
	}

	decoded := make(map[string]T, len(raw))
	for k, v := range raw {
		val, err := r.decode(v)
		if err != nil {
			r.logger.Warn("Skipping undecodable property", zap.String("key", k), zap.Any("value", v), zap.Error(err))
			report.Skipped = append(report.Skipped, k)
			continue
		}
		decoded[k] = val
	}
	sort.Strings(report.Skipped)

	staged := r.table.Derive(decoded)
	if r.seed != nil {
		r.seed(staged)
	}

	entries := staged.Snapshot()
	r.table.Replace(entries)
	report.Entries = len(entries)

	r.logger.Info("Table reloaded",
		zap.Int("entries", report.Entries),
		zap.Int("skipped", len(report.Skipped)),
		zap.Strings("sources", report.Sources),
	)
	return report, nil
}
