// Package submit runs single-flight submissions against a backend that is
// simulated today.
package submit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDelay is how long a simulated submission takes.
const DefaultDelay = 2 * time.Second

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID          string
	SubmittedAt time.Time
}

// Result is the outcome of one submission.
type Result struct {
	Receipt Receipt
	Err     error
}

// OK reports whether the submission succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Submitter sends requests of type R to whatever verifies them.
type Submitter[R any] interface {
	Submit(ctx context.Context, req R) (Receipt, error)
}

// Func adapts a function to Submitter.
type Func[R any] func(ctx context.Context, req R) (Receipt, error)

func (f Func[R]) Submit(ctx context.Context, req R) (Receipt, error) { return f(ctx, req) }

// Simulated accepts every request after Delay. It fails only when ctx ends
// first.
type Simulated[R any] struct {
	Delay time.Duration
	Now   func() time.Time
}

func (s Simulated[R]) Submit(ctx context.Context, _ R) (Receipt, error) {
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-t.C:
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Receipt{ID: uuid.NewString(), SubmittedAt: now().UTC()}, nil
}

// Run submits req and folds the outcome into a Result.
func Run[R any](ctx context.Context, s Submitter[R], req R) Result {
	rec, err := s.Submit(ctx, req)
	return Result{Receipt: rec, Err: err}
}

// Flight allows one pending submission at a time and lets it be cancelled.
// The zero value is ready to use.
type Flight struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

// Start claims the flight. It returns false while another submission is
// pending; otherwise the returned context is cancelled by Cancel.
func (f *Flight) Start(parent context.Context) (context.Context, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		return nil, false
	}
	ctx, cancel := context.WithCancel(parent)
	f.cancel = cancel
	return ctx, true
}

// Done releases the flight after its submission has returned.
func (f *Flight) Done() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

// Cancel aborts the pending submission, if any. The flight stays claimed
// until Done.
func (f *Flight) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
	}
}

// Pending reports whether a submission holds the flight.
func (f *Flight) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancel != nil
}
