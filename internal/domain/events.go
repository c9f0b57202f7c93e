package domain

import (
	"encoding/json"
	"fmt"
)

// Event type discriminators carried in the event envelope.
const (
	EventUserRegistered = "UserRegistered"
)

// EventEnvelope is the wire form of a domain event: a type discriminator
// plus the type-specific fields, flattened into one JSON object.
type EventEnvelope struct {
	EventType string `json:"event_type"`

	// Raw keeps the full message body so typed payloads can be decoded
	// after dispatching on EventType.
	Raw json.RawMessage `json:"-"`
}

// DecodeEnvelope parses the discriminator out of a message body. The body is
// retained for a second, typed decode by the handler.
func DecodeEnvelope(body []byte) (*EventEnvelope, error) {
	var env EventEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode event envelope: %w", err)
	}
	if env.EventType == "" {
		return nil, fmt.Errorf("decode event envelope: missing event_type")
	}
	env.Raw = body
	return &env, nil
}

// UserRegistered is emitted by the auth service when a new user account is
// created.
type UserRegistered struct {
	EventType string `json:"event_type"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

// NewUserRegistered builds the event with its discriminator set.
func NewUserRegistered(userID, email, username string) UserRegistered {
	return UserRegistered{
		EventType: EventUserRegistered,
		UserID:    userID,
		Email:     email,
		Username:  username,
	}
}
