// internal/alerts/batcher.go
package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"
)

// Alert is a single notification destined for a recipient.
type Alert struct {
	ID        string    `json:"id"`
	Severity  string    `json:"severity"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// BatchPayload is the JSON document published per recipient when a
// batch flushes.
type BatchPayload struct {
	Recipient string  `json:"recipient"`
	Count     int     `json:"count"`
	Alerts    []Alert `json:"alerts"`
}

// QueuePublisher is the transport the batcher delivers through. The
// RabbitMQ client in pkg/rabbitmq satisfies it; tests inject a fake.
type QueuePublisher interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}

type pendingBatch struct {
	alerts   []Alert
	openedAt time.Time
}

// Batcher accumulates alerts per recipient and flushes each batch once
// its window has elapsed, so a noisy hour becomes one message instead
// of dozens. An empty batch is never delivered.
type Batcher struct {
	mu        sync.Mutex
	pending   map[string]*pendingBatch
	publisher QueuePublisher
	queueName string
	window    time.Duration

	quitChan chan struct{}
	wg       sync.WaitGroup
}

// NewBatcher creates a batcher that publishes batches to queueName
// after window has elapsed since the first alert in the batch.
func NewBatcher(publisher QueuePublisher, queueName string, window time.Duration) *Batcher {
	return &Batcher{
		pending:   make(map[string]*pendingBatch),
		publisher: publisher,
		queueName: queueName,
		window:    window,
		quitChan:  make(chan struct{}),
	}
}

// Add queues an alert for the recipient. The batch window opens when
// the first alert arrives and is not extended by later ones.
func (b *Batcher) Add(recipient string, a Alert, now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	batch, ok := b.pending[recipient]
	if !ok {
		batch = &pendingBatch{openedAt: now}
		b.pending[recipient] = batch
	}
	batch.alerts = append(batch.alerts, a)
}

// FlushDue publishes every batch whose window has elapsed as of now.
// Batches that fail to publish stay pending for the next pass.
func (b *Batcher) FlushDue(ctx context.Context, now time.Time) error {
	b.mu.Lock()
	due := make(map[string]*pendingBatch)
	for recipient, batch := range b.pending {
		if now.Sub(batch.openedAt) >= b.window {
			due[recipient] = batch
			delete(b.pending, recipient)
		}
	}
	b.mu.Unlock()

	var firstErr error
	for recipient, batch := range due {
		if err := b.publish(ctx, recipient, batch); err != nil {
			// Re-queue so the alerts are not lost.
			b.requeue(recipient, batch)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// FlushAll publishes every pending batch regardless of window, used at
// shutdown so nothing queued is dropped.
func (b *Batcher) FlushAll(ctx context.Context) error {
	b.mu.Lock()
	all := b.pending
	b.pending = make(map[string]*pendingBatch)
	b.mu.Unlock()

	var firstErr error
	for recipient, batch := range all {
		if err := b.publish(ctx, recipient, batch); err != nil {
			b.requeue(recipient, batch)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Start launches the background flush loop, ticking at interval.
func (b *Batcher) Start(interval time.Duration) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := b.FlushDue(context.Background(), time.Now()); err != nil {
					log.Println("alert batch flush failed:", err)
				}
			case <-b.quitChan:
				return
			}
		}
	}()
}

// Stop halts the flush loop and delivers whatever is still pending.
func (b *Batcher) Stop() {
	close(b.quitChan)
	b.wg.Wait()
	if err := b.FlushAll(context.Background()); err != nil {
		log.Println("final alert flush failed:", err)
	}
}

func (b *Batcher) publish(ctx context.Context, recipient string, batch *pendingBatch) error {
	if len(batch.alerts) == 0 {
		return nil
	}
	payload := BatchPayload{
		Recipient: recipient,
		Count:     len(batch.alerts),
		Alerts:    batch.alerts,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal alert batch: %w", err)
	}
	return b.publisher.Publish(ctx, b.queueName, body)
}

func (b *Batcher) requeue(recipient string, batch *pendingBatch) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if existing, ok := b.pending[recipient]; ok {
		existing.alerts = append(batch.alerts, existing.alerts...)
		if batch.openedAt.Before(existing.openedAt) {
			existing.openedAt = batch.openedAt
		}
		return
	}
	b.pending[recipient] = batch
}
