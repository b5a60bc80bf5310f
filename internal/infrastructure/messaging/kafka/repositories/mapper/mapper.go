package mapper

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	json "github.com/goccy/go-json"

	"github.com/google/uuid"
	"github.com/whiteelite/solgate/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/solgate/pkg/shared/domain/entities"
)

var ErrDigestMismatch = errors.New("message digest does not match content")

// typed is implemented by entities that name their event type.
type typed interface {
	EventType() string
}

func ToMessage[T shared.Entity](entity *T) (*models.Message, error) {
	serialized, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:         uuid.New(),
		Content:    string(serialized),
		Digest:     digest(serialized),
		ProducedAt: time.Now().UTC(),
	}
	if t, ok := any(*entity).(typed); ok {
		msg.Type = t.EventType()
	}
	return msg, nil
}

func FromMessage[T shared.Entity](message *models.Message) (*T, error) {
	if digest([]byte(message.Content)) != message.Digest {
		return nil, ErrDigestMismatch
	}

	entity := new(T)
	if err := json.Unmarshal([]byte(message.Content), entity); err != nil {
		return nil, err
	}

	return entity, nil
}

func digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
