package reconciliation

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
)

// ActionFunc is one user action against a session
type ActionFunc func(ctx context.Context) (any, error)

// ActionQueue runs the actions of each session strictly one after another,
// each to completion before the next is accepted
type ActionQueue struct {
	logger coreport.Logger

	// Session-based action queues for strict ordering
	queues    sync.Map // map[string]chan *actionRequest
	waitGroup sync.WaitGroup
	closed    bool
	mu        sync.Mutex
}

type actionRequest struct {
	ctx        context.Context
	name       string
	fn         ActionFunc
	resultChan chan actionResult
}

type actionResult struct {
	value any
	err   error
}

// NewActionQueue creates a new action queue
func NewActionQueue(logger coreport.Logger) *ActionQueue {
	return &ActionQueue{logger: logger}
}

// Enqueue adds an action to the session's queue and waits for its result
func (q *ActionQueue) Enqueue(ctx context.Context, sessionID, name string, fn ActionFunc) (any, error) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil, errs.ErrInternalServer
	}

	queueIface, loaded := q.queues.LoadOrStore(sessionID, make(chan *actionRequest, 32))
	queue, ok := queueIface.(chan *actionRequest)
	if !ok {
		q.mu.Unlock()
		q.logger.Error("Failed to type assert action queue channel", nil)
		return nil, errs.ErrInternalServer
	}

	// Start worker if this is a new queue
	if !loaded {
		q.logger.Info("Starting action queue worker for session", map[string]any{
			"session_id": sessionID,
		})
		q.waitGroup.Add(1)
		go q.processSessionActions(sessionID, queue)
	}

	req := &actionRequest{
		ctx:        ctx,
		name:       name,
		fn:         fn,
		resultChan: make(chan actionResult, 1),
	}

	// Sending under the lock keeps Shutdown from closing the queue mid-send
	select {
	case queue <- req:
		q.mu.Unlock()
	case <-ctx.Done():
		q.mu.Unlock()
		q.logger.Warn("Context canceled while enqueueing action", map[string]any{
			"session_id": sessionID,
			"action":     name,
			"error":      ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	// The action itself always runs to completion once dequeued
	result := <-req.resultChan
	return result.value, result.err
}

func (q *ActionQueue) processSessionActions(sessionID string, queue chan *actionRequest) {
	defer q.waitGroup.Done()

	for req := range queue {
		q.logger.Debug("Processing session action", map[string]any{
			"session_id": sessionID,
			"action":     req.name,
		})

		value, err := req.fn(context.WithoutCancel(req.ctx))
		req.resultChan <- actionResult{value: value, err: err}
		close(req.resultChan)
	}

	q.logger.Info("Action queue worker stopped", map[string]any{
		"session_id": sessionID,
	})
}

// Shutdown stops all workers after the queued actions finish
func (q *ActionQueue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.queues.Range(func(_, queueIface any) bool {
		if queue, ok := queueIface.(chan *actionRequest); ok {
			close(queue)
		}
		return true
	})
	q.mu.Unlock()

	q.waitGroup.Wait()
	q.logger.Info("Action queue shut down", nil)
}

// Run enqueues a typed action and returns its typed result
func Run[T any](ctx context.Context, q *ActionQueue, sessionID, name string, fn func(ctx context.Context) (T, error)) (T, error) {
	value, err := q.Enqueue(ctx, sessionID, name, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})

	var zero T
	if value == nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, errs.ErrInternalServer
	}
	return typed, err
}
