package outbox_test

import (
	"testing"
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/outbox"
	"pharmacygo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type sampleEvent struct {
	Code string    `json:"code"`
	At   time.Time `json:"at"`
}

func (e sampleEvent) EventName() string     { return "sample.happened" }
func (e sampleEvent) OccurredAt() time.Time { return e.At }

func TestNewMessage(t *testing.T) {
	at := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("should serialise event", func(t *testing.T) {
		m, err := outbox.NewMessage(sampleEvent{Code: "#PG-2148", At: at})

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "sample.happened", m.Name())
		assert.Equal(t, at, m.OccurredAt())
		assert.Nil(t, m.ProcessedAt())
		assert.Equal(t, "#PG-2148", gjson.GetBytes(m.Payload(), "code").String())
	})

	t.Run("should build broker body", func(t *testing.T) {
		m, _ := outbox.NewMessage(sampleEvent{Code: "#PG-2148", At: at})

		body, err := m.Body()

		require.NoError(t, err)
		assert.Equal(t, "sample.happened", gjson.GetBytes(body, "name").String())
		assert.Equal(t, m.ID().String(), gjson.GetBytes(body, "id").String())
		assert.Equal(t, "#PG-2148", gjson.GetBytes(body, "payload.code").String())
	})

	t.Run("should reject nil event", func(t *testing.T) {
		_, err := outbox.NewMessage(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMessage_MarkProcessed(t *testing.T) {
	m, err := outbox.RestoreMessage(kernel.NewUUID(), "sample.happened", []byte(`{}`), time.Now(), nil)
	require.NoError(t, err)

	at := time.Date(2025, 3, 14, 10, 0, 1, 0, time.UTC)
	m.MarkProcessed(at)

	assert.NotNil(t, m.ProcessedAt())
	assert.Equal(t, at, *m.ProcessedAt())
}
