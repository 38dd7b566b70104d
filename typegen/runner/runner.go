// Package runner drives emission over many entities concurrently. Each entity
// is emitted by exactly one worker into its own in-memory result, so no two
// workers ever share a sink. A failing entity is recorded in the report and
// does not stop the others.
package runner

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/logger"
	"github.com/teranos/hsuno/typegen"
	"github.com/teranos/hsuno/typegen/emit"
	"github.com/teranos/hsuno/unoidl"
)

// Sink stores the result of one successfully emitted entity and returns the
// paths it wrote. output.Writer is the file-system implementation.
type Sink interface {
	Write(r *typegen.Result) ([]string, error)
}

// Config configures a run
type Config struct {
	// Workers bounds the number of entities emitted concurrently; <= 0 means GOMAXPROCS
	Workers int

	// RunID identifies the run in logs; generated when empty
	RunID string

	// OnEntity, when set, is called after each entity finishes. Calls may come
	// from several goroutines at once.
	OnEntity func(EntityReport)
}

// DefaultConfig returns a config using one worker per CPU
func DefaultConfig() Config {
	return Config{Workers: runtime.GOMAXPROCS(0)}
}

// EntityReport is the outcome of one entity
type EntityReport struct {
	Entity   string
	Kind     unoidl.Kind
	Files    []string
	Duration time.Duration
	Err      error
}

// Skipped reports whether the entity kind is not supported by the generator yet
func (r EntityReport) Skipped() bool {
	return errors.IsNotImplemented(r.Err)
}

// Failed reports whether the entity could not be generated for any other reason
func (r EntityReport) Failed() bool {
	return r.Err != nil && !r.Skipped()
}

// Report is the outcome of a run, with entities in input order
type Report struct {
	RunID    string
	Entities []EntityReport
	Duration time.Duration
}

// Succeeded returns the entities whose artifacts were written
func (r *Report) Succeeded() []EntityReport {
	return r.filter(func(e EntityReport) bool { return e.Err == nil })
}

// Skipped returns the entities of kinds the generator does not support yet
func (r *Report) Skipped() []EntityReport {
	return r.filter(EntityReport.Skipped)
}

// Failed returns the entities that failed
func (r *Report) Failed() []EntityReport {
	return r.filter(EntityReport.Failed)
}

func (r *Report) filter(keep func(EntityReport) bool) []EntityReport {
	var out []EntityReport
	for _, e := range r.Entities {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Err combines the errors of all failed entities; skipped entities do not count
func (r *Report) Err() error {
	var combined error
	for _, e := range r.Failed() {
		combined = errors.CombineErrors(combined, e.Err)
	}
	return combined
}

// Run emits every entity and hands each successful result to sink.
// The returned error is non-nil only when ctx is cancelled; per-entity
// failures are in the report.
func Run(ctx context.Context, ectx *emit.Context, entities []*unoidl.Entity, sink Sink, cfg Config) (*Report, error) {
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	ctx = logger.WithRunID(logger.WithComponent(ctx, "typegen.runner"), cfg.RunID)
	log := logger.LoggerFromContext(ctx)
	log.Infow("Starting generation",
		logger.FieldCount, len(entities),
		logger.FieldWorkers, cfg.Workers)

	start := time.Now()
	report := &Report{
		RunID:    cfg.RunID,
		Entities: make([]EntityReport, len(entities)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, e := range entities {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each goroutine owns its slot of the report
			report.Entities[i] = runEntity(ectx, e, sink)
			logEntity(ctx, report.Entities[i])
			if cfg.OnEntity != nil {
				cfg.OnEntity(report.Entities[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, errors.Wrap(err, "generation cancelled")
	}
	if err := ctx.Err(); err != nil {
		return report, errors.Wrap(err, "generation cancelled")
	}

	report.Duration = time.Since(start)
	log.Infow("Generation finished",
		"succeeded", len(report.Succeeded()),
		"skipped", len(report.Skipped()),
		"failed", len(report.Failed()),
		logger.FieldDurationMS, report.Duration.Milliseconds())
	return report, nil
}

func runEntity(ectx *emit.Context, e *unoidl.Entity, sink Sink) EntityReport {
	start := time.Now()
	rep := EntityReport{Entity: e.FullName(), Kind: e.Kind}

	result, err := emit.EmitResult(ectx, e)
	if err == nil {
		rep.Files, err = sink.Write(result)
	}
	rep.Err = err
	rep.Duration = time.Since(start)
	return rep
}

func logEntity(ctx context.Context, rep EntityReport) {
	log := logger.LoggerFromContext(ctx)
	fields := []interface{}{
		logger.FieldEntity, rep.Entity,
		logger.FieldKind, rep.Kind.String(),
		logger.FieldDurationMS, rep.Duration.Milliseconds(),
	}
	switch {
	case rep.Skipped():
		log.Warnw("Entity kind not supported, skipped", append(fields, logger.FieldError, rep.Err.Error())...)
	case rep.Failed():
		log.Errorw("Entity failed", append(fields, logger.FieldError, rep.Err.Error())...)
	default:
		log.Debugw("Entity generated", append(fields, logger.FieldCount, len(rep.Files))...)
	}
}
