package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hollowpine/frontier/internal/logger"
)

// retryEntry tracks an event moving through the retry queue
type retryEntry struct {
	event   Event
	attempt int
	lastErr error
	nextTry time.Time
}

// ResilientPublisher wraps a Bus with asynchronous retry and dead-letter
// handling. PublishWithRetry never blocks the caller on a failing bus: a
// failed publish is queued and retried with exponential backoff by a
// background worker, and events that exhaust their retries are appended to a
// dead-letter file for manual replay.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a ResilientPublisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	rp.wg.Add(1)
	go rp.retryWorker()
	return rp, nil
}

// PublishWithRetry attempts a synchronous publish and, on failure, hands the
// event to the retry worker. The caller always proceeds immediately.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	entry := retryEntry{
		event:   event,
		attempt: 1,
		lastErr: err,
		nextTry: time.Now().Add(CalculateRetryDelay(rp.retryDelay, 1)),
	}
	select {
	case rp.retryQueue <- entry:
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", event.Type)
		if dlErr := rp.deadLetter.Write(event, entry.attempt, err); dlErr != nil {
			log.Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
		}
	}
}

// Publish satisfies Bus by delegating to PublishWithRetry
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for {
		select {
		case entry := <-rp.retryQueue:
			rp.processEntry(ctx, log, entry)
		case <-rp.shutdown:
			// Drain whatever is still queued, one final attempt each
			for {
				select {
				case entry := <-rp.retryQueue:
					if err := rp.bus.Publish(ctx, entry.event); err != nil {
						if dlErr := rp.deadLetter.Write(entry.event, entry.attempt, err); dlErr != nil {
							log.Error(LogMsgDeadLetterWriteFailedS, "error", dlErr)
						}
					}
				default:
					log.Info(LogMsgQueueDrainedShutdown)
					return
				}
			}
		}
	}
}

func (rp *ResilientPublisher) processEntry(ctx context.Context, log *slog.Logger, entry retryEntry) {
	if wait := time.Until(entry.nextTry); wait > 0 {
		select {
		case <-time.After(wait):
		case <-rp.shutdown:
			// One last attempt before the drain loop takes over
			if err := rp.bus.Publish(ctx, entry.event); err != nil {
				if dlErr := rp.deadLetter.Write(entry.event, entry.attempt, err); dlErr != nil {
					log.Error(LogMsgDeadLetterWriteFailedS, "error", dlErr)
				}
			}
			return
		}
	}

	err := rp.bus.Publish(ctx, entry.event)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
		return
	}

	if entry.attempt >= rp.maxRetries {
		log.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempt)
		if dlErr := rp.deadLetter.Write(entry.event, entry.attempt, err); dlErr != nil {
			log.Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
		}
		return
	}

	log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempt, "error", err)
	next := retryEntry{
		event:   entry.event,
		attempt: entry.attempt + 1,
		lastErr: err,
		nextTry: time.Now().Add(CalculateRetryDelay(rp.retryDelay, entry.attempt+1)),
	}
	select {
	case rp.retryQueue <- next:
	default:
		if dlErr := rp.deadLetter.Write(entry.event, next.attempt, err); dlErr != nil {
			log.Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
		}
	}
}

// Shutdown stops the retry worker, draining the queue first. Events that still
// cannot publish during the drain are dead-lettered rather than dropped.
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	close(rp.shutdown)

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
	return rp.deadLetter.Close()
}
