package queries

import (
	"errors"
	"strings"

	"shipping/internal/pkg/guard"
)

var (
	ErrTrackShipmentQueryIsNotConstructed = errors.New(
		"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// TrackShipmentQuery requests a carrier's transit view of a shipment.
type TrackShipmentQuery struct {
	carrierName    string
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a tracking query. The tracking number is
// required; the carrier name may be empty when it is encoded in the number.
func NewTrackShipmentQuery(carrierName, trackingNumber string) (TrackShipmentQuery, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return TrackShipmentQuery{}, ErrTrackingNumberIsRequired
	}

	return TrackShipmentQuery{
		carrierName:    strings.TrimSpace(carrierName),
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackShipmentQueryIsNotConstructed if validation fails.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// CarrierName returns the carrier name from the query.
func (q TrackShipmentQuery) CarrierName() string {
	return q.carrierName
}

// TrackingNumber returns the tracking number from the query.
func (q TrackShipmentQuery) TrackingNumber() string {
	return q.trackingNumber
}
