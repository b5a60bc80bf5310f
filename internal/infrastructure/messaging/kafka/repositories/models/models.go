package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is the envelope written to Kafka. Content holds the JSON encoded
// entity and Digest its hex SHA-256, which also serves as the message key.
type Message struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type,omitempty"`
	Content    string    `json:"content"`
	Digest     string    `json:"digest"`
	ProducedAt time.Time `json:"produced_at"`
}
