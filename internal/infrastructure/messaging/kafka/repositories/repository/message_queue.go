package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	sdk "github.com/segmentio/kafka-go"
	domainrepos "github.com/whiteelite/solgate/internal/domain/repositories"
	shared "github.com/whiteelite/solgate/pkg/shared/domain/entities"
)

// KafkaMessageQueueParams implements repositories.MessageQueueParams
// and provides configuration for initializing KafkaMessageQueue.
type KafkaMessageQueueParams struct {
	// Required
	Brokers []string
	Topic   string

	// Optional
	ToProduceBufSize int
	DrainTimeout     time.Duration
	OnError          func(error)
}

func (p KafkaMessageQueueParams) Get() map[string]any {
	return map[string]any{
		"brokers":         p.Brokers,
		"topic":           p.Topic,
		"toProduceBuffer": p.ToProduceBufSize,
		"drainTimeout":    p.DrainTimeout,
	}
}

// KafkaMessageQueue is a produce-only queue: entities handed to Publish are
// serialized by a background StartProducer worker.
type KafkaMessageQueue struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup
	errWG  *sync.WaitGroup

	writer MessageWriter

	mu           sync.RWMutex
	closed       bool
	bucket       chan *shared.Entity
	errors       chan error
	drainTimeout time.Duration
}

// InitializeKafkaMessageQueue creates a KafkaMessageQueue using params.
func InitializeKafkaMessageQueue(params domainrepos.MessageQueueParams) (domainrepos.MessageQueueProducer, error) {
	typed, ok := params.(KafkaMessageQueueParams)
	if !ok {
		return nil, errors.New("kafka: unexpected message queue params")
	}
	if err := ValidateKafkaParams(typed); err != nil {
		return nil, err
	}

	writer := &sdk.Writer{
		Addr:         sdk.TCP(typed.Brokers...),
		Topic:        typed.Topic,
		RequiredAcks: sdk.RequireAll,
		Balancer:     &sdk.LeastBytes{},
		// failed writes are reported through OnError, never retried
		MaxAttempts: 1,
	}

	return NewKafkaMessageQueue(writer, typed), nil
}

// NewKafkaMessageQueue starts the producer workers on an existing writer.
func NewKafkaMessageQueue(writer MessageWriter, params KafkaMessageQueueParams) *KafkaMessageQueue {
	// defaults
	if params.ToProduceBufSize <= 0 {
		params.ToProduceBufSize = 1024
	}
	if params.DrainTimeout <= 0 {
		params.DrainTimeout = 5 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	q := &KafkaMessageQueue{
		ctx:          ctx,
		cancel:       cancel,
		wg:           &sync.WaitGroup{},
		errWG:        &sync.WaitGroup{},
		writer:       writer,
		bucket:       make(chan *shared.Entity, params.ToProduceBufSize),
		errors:       make(chan error, 16),
		drainTimeout: params.DrainTimeout,
	}

	q.startWorkers(params.OnError)
	return q
}

func (q *KafkaMessageQueue) startWorkers(onError func(error)) {
	q.wg.Add(1)
	go StartProducer[shared.Entity](q.ctx, q.wg, q.writer, q.bucket, q.errors)

	q.errWG.Add(1)
	go func() {
		defer q.errWG.Done()
		for err := range q.errors {
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Publish enqueues entity without blocking. It returns false when the queue
// is closed or its buffer is full.
func (q *KafkaMessageQueue) Publish(entity shared.Entity) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}

	select {
	case q.bucket <- &entity:
		return true
	default:
		return false
	}
}

// Close stops accepting entities, drains the buffer for at most the drain
// timeout and closes the writer. It is safe to call more than once.
func (q *KafkaMessageQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.bucket)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(q.drainTimeout):
		q.cancel()
		<-done
	}
	q.cancel()

	close(q.errors)
	q.errWG.Wait()

	_ = q.writer.Close()
}

// Compile-time assertion to ensure interface conformance
var _ domainrepos.MessageQueueProducer = (*KafkaMessageQueue)(nil)

// Helper to ensure required params are set.
func ValidateKafkaParams(p KafkaMessageQueueParams) error {
	if len(p.Brokers) == 0 {
		return errors.New("kafka brokers are required")
	}
	if p.Topic == "" {
		return errors.New("kafka topic is required")
	}
	return nil
}
