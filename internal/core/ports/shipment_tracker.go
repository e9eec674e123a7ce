package ports

import (
	"context"
	"time"
)

// TrackingEvent is one scan in a shipment's history.
type TrackingEvent struct {
	Timestamp   time.Time
	Location    string
	Description string
}

// TrackingInfo is a carrier's view of a shipment in transit.
type TrackingInfo struct {
	TrackingNumber    string
	CarrierName       string
	Status            string
	EstimatedDelivery *time.Time
	Events            []TrackingEvent
}

// ShipmentTracker queries a carrier for a shipment's transit status.
type ShipmentTracker interface {
	// Track returns the carrier's current view of the shipment.
	// Returns errs.ObjectNotFoundError when the carrier does not know the
	// tracking number.
	Track(ctx context.Context, carrierName, trackingNumber string) (TrackingInfo, error)
}
