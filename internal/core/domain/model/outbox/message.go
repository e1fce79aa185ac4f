package outbox

import (
	"errors"
	"strings"
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"

	"github.com/goccy/go-json"
)

var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Envelope is the wire form of a published event.
type Envelope struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// Message is a domain event waiting in the outbox to be published.
type Message struct {
	id          kernel.UUID
	name        string
	payload     []byte
	occurredAt  time.Time
	processedAt *time.Time

	isConstructed bool
}

// NewMessage serialises a domain event into an unprocessed outbox message.
func NewMessage(event kernel.DomainEvent) (*Message, error) {
	if event == nil {
		return nil, errs.NewValueIsRequiredError("event")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("event", err)
	}

	return RestoreMessage(kernel.NewUUID(), event.EventName(), payload, event.OccurredAt(), nil)
}

func RestoreMessage(
	id kernel.UUID,
	name string,
	payload []byte,
	occurredAt time.Time,
	processedAt *time.Time,
) (*Message, error) {
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Message{
		id:            id,
		name:          name,
		payload:       payload,
		occurredAt:    occurredAt,
		processedAt:   processedAt,
		isConstructed: true,
	}, nil
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) Name() string {
	return m.name
}

func (m *Message) Payload() []byte {
	return m.payload
}

func (m *Message) OccurredAt() time.Time {
	return m.occurredAt
}

func (m *Message) ProcessedAt() *time.Time {
	return m.processedAt
}

func (m *Message) MarkProcessed(at time.Time) {
	m.processedAt = &at
}

// Envelope wraps the payload with its routing metadata.
func (m *Message) Envelope() Envelope {
	return Envelope{
		ID:         m.id.String(),
		Name:       m.name,
		OccurredAt: m.occurredAt,
		Payload:    m.payload,
	}
}

// Body encodes the envelope for a message broker.
func (m *Message) Body() ([]byte, error) {
	return json.Marshal(m.Envelope())
}
