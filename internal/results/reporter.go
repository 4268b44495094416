package results

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match-league/internal/engine"
)

// Outcome is delivered once per reported result.
type Outcome struct {
	Result  engine.Result
	Receipt Receipt
	Err     error
}

// Ranked reports whether a ranking position is available.
func (o Outcome) Ranked() bool {
	return o.Receipt.Ranking > 0
}

// Reporter submits results in the background so the session never waits on
// a store. Failures are logged and never retried.
type Reporter struct {
	submitter Submitter
	logger    *log.Logger
	timeout   time.Duration
	outcomes  chan Outcome

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// outcomeBuffer bounds undelivered outcomes. Extra outcomes are dropped.
const outcomeBuffer = 8

// NewReporter creates a reporter. A nil submitter makes Report a no-op apart
// from delivering an empty outcome.
func NewReporter(s Submitter, logger *log.Logger, timeout time.Duration) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Reporter{
		submitter: s,
		logger:    logger,
		timeout:   timeout,
		outcomes:  make(chan Outcome, outcomeBuffer),
	}
}

// Report submits r asynchronously. It matches engine.Config.OnEnded.
func (rp *Reporter) Report(r engine.Result) {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	if rp.closed {
		return
	}

	rp.wg.Add(1)
	go func() {
		defer rp.wg.Done()
		rp.deliver(rp.submit(r))
	}()
}

func (rp *Reporter) submit(r engine.Result) Outcome {
	out := Outcome{Result: r}
	if rp.submitter == nil {
		return out
	}

	ctx, cancel := context.WithTimeout(context.Background(), rp.timeout)
	defer cancel()

	out.Receipt, out.Err = rp.submitter.Submit(ctx, r)
	if out.Err != nil {
		rp.logger.Warn("result submission failed",
			"player", r.Player,
			"score", r.Score,
			"error", out.Err,
		)
	}
	if out.Ranked() {
		rp.logger.Info("result saved",
			"player", r.Player,
			"score", r.Score,
			"ranking", out.Receipt.Ranking,
		)
	}
	return out
}

func (rp *Reporter) deliver(out Outcome) {
	select {
	case rp.outcomes <- out:
	default:
		rp.logger.Debug("outcome dropped, no reader", "score", out.Result.Score)
	}
}

// Outcomes returns the channel outcomes are delivered on. It is closed by
// Close.
func (rp *Reporter) Outcomes() <-chan Outcome {
	return rp.outcomes
}

// Close waits for in-flight submissions and closes the outcome channel.
func (rp *Reporter) Close() {
	rp.mu.Lock()
	if rp.closed {
		rp.mu.Unlock()
		return
	}
	rp.closed = true
	rp.mu.Unlock()

	rp.wg.Wait()
	close(rp.outcomes)
}
