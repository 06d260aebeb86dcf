// Package rotation plays a configured list of episode URIs in random order,
// forever, until cancelled or disabled.
package rotation

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/PIAAR/PlayerXSpotty/internal/core"
)

// Options configures a Rotator.
type Options struct {
	// URIs is the ordered pool of resource URIs to rotate through.
	URIs []string

	// MaxConcurrent bounds in-flight play commands (default 5). Concurrent
	// commands against the same device race at the backend, not here.
	MaxConcurrent int

	// Hold is how long a slot is held after a successful play command
	// (default 5s), approximating playback duration.
	Hold time.Duration

	// Rate paces command issuance in commands per second (default 1).
	Rate float64

	// Enabled is re-checked before every cycle; the loop stops cleanly when
	// it returns false. Nil means always enabled.
	Enabled func() bool

	// Logger receives per-command results. Nil silences logging.
	Logger *log.Logger
}

// Rotator issues shuffled play commands against a player in repeated cycles.
type Rotator struct {
	player  core.Player
	opts    Options
	limiter *rate.Limiter
	rng     *rand.Rand
}

// New creates a Rotator. Zero-value options get defaults.
func New(player core.Player, opts Options) *Rotator {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 5
	}
	if opts.Hold == 0 {
		opts.Hold = 5 * time.Second
	}
	if opts.Rate <= 0 {
		opts.Rate = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Rotator{
		player:  player,
		opts:    opts,
		limiter: rate.NewLimiter(rate.Limit(opts.Rate), 1),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes cycles until the context is cancelled or the enabled gate
// turns off. Individual command failures are logged and skipped; the cycle
// keeps going.
func (r *Rotator) Run(ctx context.Context) error {
	if len(r.opts.URIs) == 0 {
		r.opts.Logger.Warn("rotation list is empty, nothing to play")
		return nil
	}

	for {
		if r.opts.Enabled != nil && !r.opts.Enabled() {
			r.opts.Logger.Info("rotation disabled, stopping")
			return nil
		}

		if err := r.runCycle(ctx); err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// runCycle shuffles the URI pool and issues one play command per entry,
// bounded by the concurrency limit and paced by the rate limiter.
func (r *Rotator) runCycle(ctx context.Context) error {
	order := make([]string, len(r.opts.URIs))
	copy(order, r.opts.URIs)
	r.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	sem := make(chan struct{}, r.opts.MaxConcurrent)
	var wg sync.WaitGroup

	for _, uri := range order {
		if err := r.limiter.Wait(ctx); err != nil {
			wg.Wait()
			return err
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		}

		wg.Add(1)
		go func(uri string) {
			defer wg.Done()
			defer func() { <-sem }()
			r.playOne(ctx, uri)
		}(uri)
	}

	wg.Wait()
	return nil
}

// playOne issues a single play command and holds its slot for the configured
// duration on success.
func (r *Rotator) playOne(ctx context.Context, uri string) {
	if err := r.player.PlayURI(ctx, uri); err != nil {
		r.opts.Logger.Warn("play failed", "uri", uri, "err", err)
		return
	}

	r.opts.Logger.Info("playing", "uri", uri)

	select {
	case <-ctx.Done():
	case <-time.After(r.opts.Hold):
	}
}
