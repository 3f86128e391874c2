package geometry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/echoflaresat/sensorgeom/body"
)

// Evaluator evaluates observations against a target body. The zero Body
// yields radial normals.
type Evaluator struct {
	Body    body.Body
	Workers int
	Log     *zap.Logger
}

// EvaluateAll evaluates obs with at most Workers concurrent evaluations.
// Results are in input order. The first failure cancels the rest and is
// returned wrapped with the observation ID.
func (e *Evaluator) EvaluateAll(ctx context.Context, obs []Observation) ([]Result, error) {
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	workers := e.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	results := make([]Result, len(obs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range obs {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := e.Evaluate(obs[i])
			if err != nil {
				return fmt.Errorf("observation %s: %w", obs[i].ID, err)
			}
			results[i] = r
			log.Debug("evaluated",
				zap.String("id", r.ID),
				zap.Float64("emission_rad", r.Emission),
				zap.Float64("phase_rad", r.Phase),
				zap.Float64("off_nadir_rad", r.OffNadir))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info("batch evaluated",
		zap.Int("observations", len(obs)),
		zap.Int("workers", workers),
		zap.String("body", e.Body.Name),
		zap.Duration("elapsed", time.Since(start)))
	return results, nil
}
