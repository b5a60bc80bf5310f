package repositories

import (
	shared "github.com/whiteelite/solgate/pkg/shared/domain/entities"
)

type MessageQueueParams interface {
	Get() map[string]any
}

type InitializeMessageQueue func(MessageQueueParams) (MessageQueueProducer, error)

// MessageQueueProducer accepts entities for asynchronous delivery. Publish
// never blocks: it reports false when the entity was dropped.
type MessageQueueProducer interface {
	Publish(entity shared.Entity) bool
	Close()
}
