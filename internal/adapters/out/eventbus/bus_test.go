package eventbus

import (
	"context"
	"errors"
	"testing"

	"pharmacygo/internal/core/domain/model/outbox"
	"pharmacygo/internal/core/domain/model/pharmacy"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Handle(ctx context.Context, body []byte) error {
	args := m.Called(ctx, body)
	return args.Error(0)
}

func TestBus_HandsEnvelopeToHandler(t *testing.T) {
	message, err := outbox.NewMessage(pharmacy.ApplicationReviewed{PharmacyName: "Oasis", Status: "approved"})
	require.NoError(t, err)

	handler := &MockHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(body []byte) bool {
		return gjson.GetBytes(body, "name").String() == pharmacy.ApplicationReviewedEventName &&
			gjson.GetBytes(body, "payload.pharmacy_name").String() == "Oasis"
	})).Return(nil).Once()

	require.NoError(t, New(handler).Publish(context.Background(), message))
	handler.AssertExpectations(t)
}

func TestBus_PropagatesHandlerError(t *testing.T) {
	message, err := outbox.NewMessage(pharmacy.ApplicationReviewed{PharmacyName: "Oasis", Status: "approved"})
	require.NoError(t, err)

	handler := &MockHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	require.EqualError(t, New(handler).Publish(context.Background(), message), "boom")
}
