package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentTracker struct {
	mock.Mock
}

func (m *MockShipmentTracker) Track(ctx context.Context, carrierName, trackingNumber string) (ports.TrackingInfo, error) {
	args := m.Called(ctx, carrierName, trackingNumber)
	return args.Get(0).(ports.TrackingInfo), args.Error(1)
}

func TestTrackShipmentQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_the_carrier_view", func(t *testing.T) {
		delivery := time.Now().Add(48 * time.Hour)
		info := ports.TrackingInfo{
			TrackingNumber:    "1Z999",
			CarrierName:       "UPS",
			Status:            "in_transit",
			EstimatedDelivery: &delivery,
			Events: []ports.TrackingEvent{
				{Timestamp: time.Now(), Location: "Los Angeles, CA", Description: "Departed facility"},
			},
		}

		mockTracker := new(MockShipmentTracker)
		mockTracker.On("Track", ctx, "UPS", "1Z999").Return(info, nil).Once()

		handler := queries.NewTrackShipmentQueryHandler(mockTracker)
		query, err := queries.NewTrackShipmentQuery("UPS", "1Z999")
		require.NoError(t, err)

		got, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "in_transit", got.Status)
		assert.Len(t, got.Events, 1)
		mockTracker.AssertExpectations(t)
	})

	t.Run("unknown_tracking_number_is_not_found", func(t *testing.T) {
		mockTracker := new(MockShipmentTracker)
		mockTracker.On("Track", ctx, "", "NOPE").
			Return(ports.TrackingInfo{}, errs.NewObjectNotFoundError("trackingNumber", "NOPE")).Once()

		handler := queries.NewTrackShipmentQueryHandler(mockTracker)
		query, err := queries.NewTrackShipmentQuery("", "NOPE")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("empty_tracking_number_is_rejected", func(t *testing.T) {
		_, err := queries.NewTrackShipmentQuery("UPS", "   ")
		require.ErrorIs(t, err, queries.ErrTrackingNumberIsRequired)
	})
}
