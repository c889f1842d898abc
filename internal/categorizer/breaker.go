package categorizer

import (
	"sync"
	"time"
)

// BreakerState is the state of a Breaker.
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	}
	return "closed"
}

// BreakerConfig configures a Breaker.
type BreakerConfig struct {
	MaxFailures     int           // Consecutive failures that open the breaker
	ResetTimeout    time.Duration // Time after the last failure until a request is let through again
	HalfOpenMaxSucc int           // Successes needed in half-open state to close the breaker
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// Breaker stops calls to a remote classifier after repeated failures.
// It is safe for concurrent use.
type Breaker struct {
	mu                sync.Mutex
	config            BreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailure       time.Time
	now               func() time.Time
}

func NewBreaker(config BreakerConfig) *Breaker {
	return &Breaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// Allow reports whether a call may be made. An open breaker switches to
// half-open once the reset timeout has passed.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.lastFailure) > b.config.ResetTimeout {
		b.state = StateHalfOpen
		b.halfOpenSuccesses = 0
	}

	return b.state != StateOpen
}

func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
			b.state = StateClosed
			b.failures = 0
			b.halfOpenSuccesses = 0
		}
	case StateClosed:
		b.failures = 0
	}
}

func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailure = b.now()

	switch b.state {
	case StateHalfOpen:
		b.state = StateOpen
		b.halfOpenSuccesses = 0
	case StateClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.state = StateOpen
		}
	}
}

func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
