package queries

import (
	"context"

	"shipping/internal/core/ports"
)

// TrackShipmentQueryHandler resolves tracking queries through the carrier
// gateway. No local state is kept; the carrier is the source of truth for
// shipments in transit.
type TrackShipmentQueryHandler struct {
	tracker ports.ShipmentTracker
}

// NewTrackShipmentQueryHandler creates a handler for shipment tracking.
func NewTrackShipmentQueryHandler(tracker ports.ShipmentTracker) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{tracker: tracker}
}

// Handle queries the carrier for the shipment's transit status.
// Returns errs.ObjectNotFoundError when the carrier does not know the
// tracking number.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (ports.TrackingInfo, error) {
	if err := query.Validate(); err != nil {
		return ports.TrackingInfo{}, err
	}

	return h.tracker.Track(ctx, query.CarrierName(), query.TrackingNumber())
}
