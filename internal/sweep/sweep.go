// Package sweep batches pricing calls over a swept spot range for
// plotting collaborators. Each point is an independent pure pricing call,
// so the sweep is an embarrassingly parallel map: a bounded pool of
// workers prices the points and the results come back in sweep order.
package sweep

import (
	"context"
	"runtime"
	"sync"

	"fx-pricer/internal/errors"
	"fx-pricer/internal/models"
	"fx-pricer/internal/pricing"
)

// Config describes the spot range to sweep.
type Config struct {
	From    float64
	To      float64
	Points  int
	Workers int // 0 means runtime.NumCPU()
}

// Point is one priced sample of the sweep.
type Point struct {
	Spot   float64              `json:"spot"`
	Result models.PricingResult `json:"result"`
}

func (c Config) validate() error {
	if c.From <= 0 {
		return errors.NewInvalidInputError("sweep_from", c.From, "must be positive")
	}
	if c.To <= c.From {
		return errors.NewInvalidInputError("sweep_to", c.To, "must exceed sweep_from")
	}
	if c.Points < 2 {
		return errors.NewInvalidInputError("sweep_points", float64(c.Points), "need at least two points")
	}
	return nil
}

// Spot prices the request at Points evenly spaced spot values in
// [From, To], holding every other parameter fixed. The first pricing
// error aborts the sweep.
func Spot(ctx context.Context, cfg Config, req pricing.Request) ([]Point, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Points {
		workers = cfg.Points
	}

	step := (cfg.To - cfg.From) / float64(cfg.Points-1)
	points := make([]Point, cfg.Points)
	indexes := make(chan int)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				spot := cfg.From + float64(i)*step
				r := req
				r.Market.Spot = spot
				res, err := pricing.Price(r)
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					continue
				}
				points[i] = Point{Spot: spot, Result: res}
			}
		}()
	}

	for i := 0; i < cfg.Points; i++ {
		select {
		case <-ctx.Done():
			close(indexes)
			wg.Wait()
			return nil, ctx.Err()
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return points, nil
}
