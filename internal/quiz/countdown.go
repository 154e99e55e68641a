package quiz

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const DefaultTickInterval = time.Second

// Ticker is the part of *time.Ticker the countdown needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	ticker *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.ticker.C }
func (t timeTicker) Stop()               { t.ticker.Stop() }

func NewTimeTicker(interval time.Duration) Ticker {
	return timeTicker{ticker: time.NewTicker(interval)}
}

// Countdown runs a callback once per interval until the callback asks to stop
// or the returned cancel function is called.
type Countdown struct {
	interval  time.Duration
	newTicker func(time.Duration) Ticker
	log       zerolog.Logger
}

func NewCountdown(interval time.Duration, log zerolog.Logger) *Countdown {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Countdown{
		interval:  interval,
		newTicker: NewTimeTicker,
		log:       log.With().Str("component", "countdown").Logger(),
	}
}

// WithTicker swaps the ticker source, mainly for tests that drive ticks by hand.
func (c *Countdown) WithTicker(newTicker func(time.Duration) Ticker) *Countdown {
	c.newTicker = newTicker
	return c
}

// Start launches the ticking goroutine. onTick returns true to stop. The
// returned cancel function is safe to call more than once.
func (c *Countdown) Start(ctx context.Context, onTick func() bool) context.CancelFunc {
	ctx, cancel := context.WithCancel(ctx)
	ticker := c.newTicker(c.interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				c.log.Debug().Msg("Countdown cancelled")
				return
			case <-ticker.C():
				if ctx.Err() != nil {
					return
				}
				if onTick() {
					c.log.Debug().Msg("Countdown finished")
					return
				}
			}
		}
	}()

	return cancel
}
