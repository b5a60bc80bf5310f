package repository

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"

	sdk "github.com/segmentio/kafka-go"
	mapper "github.com/whiteelite/solgate/internal/infrastructure/messaging/kafka/repositories/mapper"
	shared "github.com/whiteelite/solgate/pkg/shared/domain/entities"
)

// MessageWriter is the subset of *kafka.Writer used by the producer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...sdk.Message) error
	Close() error
}

// StartProducer writes every entity received on bucket until bucket is closed
// or ctx is cancelled. Failures go to errors without blocking.
func StartProducer[T shared.Entity](
	ctx context.Context,
	wg *sync.WaitGroup,
	writer MessageWriter,
	bucket <-chan *T,
	errors chan<- error,
) {
	defer wg.Done()

	report := func(err error) {
		select {
		case errors <- err:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case request, ok := <-bucket:
			if !ok {
				return
			}

			model, err := mapper.ToMessage(request)
			if err != nil {
				report(err)
				continue
			}

			serialized, err := json.Marshal(model)
			if err != nil {
				report(err)
				continue
			}
			err = writer.WriteMessages(ctx, sdk.Message{
				Key:   []byte(model.Digest),
				Value: serialized,
			})
			if err != nil {
				report(err)
				continue
			}
		}
	}
}
