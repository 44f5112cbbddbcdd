package services

import (
	"sync"
	"time"
)

// ProgressStage is one display step of the pricing loading sequence.
type ProgressStage struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// PricingStages is the fixed sequence shown while a pricing run is in
// flight. The sequence always plays in full even when the model answers
// before the last stage is reached.
var PricingStages = []ProgressStage{
	{Label: "Analyzing project requirements...", Icon: "search"},
	{Label: "Studying market and competitors...", Icon: "globe"},
	{Label: "Estimating effort and technical complexity...", Icon: "calculator"},
	{Label: "Crafting the ideal pricing packages...", Icon: "sparkles"},
	{Label: "Putting on the finishing touches...", Icon: "check-circle"},
}

// DefaultStageInterval matches the reference cadence of the sequence.
const DefaultStageInterval = 1500 * time.Millisecond

// ProgressTracker advances through its stages on a timer. It holds on the
// last stage until Finish is signalled, then fires onComplete exactly once.
// Stop ends the sequence immediately (the failure path, where the caller
// reports an error instead of a result).
type ProgressTracker struct {
	mu         sync.Mutex
	stages     []ProgressStage
	interval   time.Duration
	current    int
	canFinish  bool
	completed  bool
	stopped    bool
	onComplete func()
	done       chan struct{}
}

func NewProgressTracker(stages []ProgressStage, interval time.Duration, onComplete func()) *ProgressTracker {
	return &ProgressTracker{
		stages:     stages,
		interval:   interval,
		onComplete: onComplete,
		done:       make(chan struct{}),
	}
}

// Start runs the timer loop until completion or Stop.
func (t *ProgressTracker) Start() {
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if t.tick() {
					return
				}
			case <-t.done:
				return
			}
		}
	}()
}

// tick advances one stage, or completes when the last stage is showing and
// the data is ready. Returns true when the loop should end.
func (t *ProgressTracker) tick() bool {
	t.mu.Lock()

	if t.stopped || t.completed {
		t.mu.Unlock()
		return true
	}

	if t.current < len(t.stages)-1 {
		t.current++
		t.mu.Unlock()
		return false
	}

	// On the last stage: hold until the data is ready. Completion always
	// lands on the tick after the last stage first shows, so the final stage
	// stays visible for a full interval like every other stage and the
	// sequence floor is N*interval even when Finish arrives early.
	if !t.canFinish {
		t.mu.Unlock()
		return false
	}

	t.completed = true
	onComplete := t.onComplete
	close(t.done)
	t.mu.Unlock()

	if onComplete != nil {
		onComplete()
	}
	return true
}

// Finish marks the data as ready. The sequence still visits every remaining
// stage before completion fires.
func (t *ProgressTracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.canFinish = true
}

// Stop aborts the sequence without completing it.
func (t *ProgressTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.completed {
		return
	}
	t.stopped = true
	close(t.done)
}

// Snapshot reports the current stage for status polling.
func (t *ProgressTracker) Snapshot() (stage int, label string, icon string, completed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.stages[t.current]
	return t.current, s.Label, s.Icon, t.completed
}

// Done is closed once the tracker has completed or been stopped.
func (t *ProgressTracker) Done() <-chan struct{} {
	return t.done
}
