package http

import (
	"fmt"
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/zone"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest is the wire shape of a destination address.
type AddressRequest struct {
	Country      string `json:"country"`
	State        string `json:"state,omitempty"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postal_code"`
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
}

func (r AddressRequest) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(r.Country, r.State, r.City, r.PostalCode, r.AddressLine1, r.AddressLine2)
}

// ItemRequest is one requested product with its quantity.
type ItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CalculateShippingRequest is the calculation endpoint's request body.
// StoreID scopes the catalog; omit it for platform-wide calculations.
type CalculateShippingRequest struct {
	Destination AddressRequest `json:"destination"`
	Items       []ItemRequest  `json:"items"`
	StoreID     *string        `json:"store_id,omitempty"`
}

// EstimateResponse is the promised delivery window in business days.
type EstimateResponse struct {
	MinDays int `json:"min_days"`
	MaxDays int `json:"max_days"`
}

// ShippingOptionResponse is one priced shipping option.
type ShippingOptionResponse struct {
	ZoneID         string           `json:"zone_id"`
	ZoneName       string           `json:"zone_name"`
	MethodID       string           `json:"method_id"`
	MethodCode     string           `json:"method_code"`
	MethodName     string           `json:"method_name"`
	Description    string           `json:"description,omitempty"`
	CarrierName    string           `json:"carrier_name,omitempty"`
	CarrierService string           `json:"carrier_service,omitempty"`
	Features       []string         `json:"features,omitempty"`
	RateType       string           `json:"rate_type"`
	Cost           float64          `json:"cost"`
	Estimate       EstimateResponse `json:"estimate"`
}

// PackageResponse describes the estimated package the quotes were priced for.
type PackageResponse struct {
	TotalWeight       float64 `json:"total_weight"`
	BillableWeight    float64 `json:"billable_weight"`
	DimensionalWeight float64 `json:"dimensional_weight"`
	TotalValue        float64 `json:"total_value"`
	TotalItems        int     `json:"total_items"`
	Length            float64 `json:"length"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
}

// CalculateShippingResponse is the calculation endpoint's response body.
type CalculateShippingResponse struct {
	Options []ShippingOptionResponse `json:"options"`
	Package PackageResponse          `json:"package"`
}

// WeightTierRequest is one row of a weight-based rate table.
type WeightTierRequest struct {
	MinWeight      float64 `json:"min_weight"`
	MaxWeight      float64 `json:"max_weight"`
	Rate           float64 `json:"rate"`
	AdditionalRate float64 `json:"additional_rate"`
}

// RateCalculationRequest is the wire shape of a rate strategy: a type tag
// plus the configuration fields the strategy uses.
type RateCalculationRequest struct {
	Type                  string              `json:"type"`
	BaseRate              float64             `json:"base_rate,omitempty"`
	Tiers                 []WeightTierRequest `json:"tiers,omitempty"`
	FreeShippingThreshold *float64            `json:"free_shipping_threshold,omitempty"`
	Percentage            *float64            `json:"percentage,omitempty"`
}

func (r RateCalculationRequest) toDomain() (method.RateCalculation, error) {
	switch r.Type {
	case method.TypeFlatRate:
		return method.NewFlatRate(r.BaseRate)
	case method.TypeWeightBased:
		tiers, err := tiersToDomain(r.Tiers)
		if err != nil {
			return nil, err
		}
		return method.NewWeightBased(tiers, r.BaseRate)
	case method.TypePriceBased:
		return method.NewPriceBased(r.BaseRate, r.FreeShippingThreshold, r.Percentage)
	case method.TypeDimensionalWeight:
		tiers, err := tiersToDomain(r.Tiers)
		if err != nil {
			return nil, err
		}
		return method.NewDimensionalWeight(tiers, r.BaseRate)
	case method.TypeZoneBased:
		return method.NewZoneBased(r.BaseRate)
	case method.TypeCarrierAPI:
		return method.NewCarrierAPI(), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("unknown rate calculation type %q", r.Type))
	}
}

func tiersToDomain(requests []WeightTierRequest) ([]method.WeightTier, error) {
	tiers := make([]method.WeightTier, 0, len(requests))
	for _, r := range requests {
		tier, err := method.NewWeightTier(r.MinWeight, r.MaxWeight, r.Rate, r.AdditionalRate)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

// PostalCodeRangeRequest is an inclusive postal code range.
type PostalCodeRangeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CountryCoverageRequest is one coverage entry of a zone.
type CountryCoverageRequest struct {
	CountryCode      string                   `json:"country_code"`
	Regions          []string                 `json:"regions,omitempty"`
	PostalCodeRanges []PostalCodeRangeRequest `json:"postal_code_ranges,omitempty"`
	Cities           []string                 `json:"cities,omitempty"`
}

func (r CountryCoverageRequest) toDomain() (zone.CountryCoverage, error) {
	ranges := make([]zone.PostalCodeRange, 0, len(r.PostalCodeRanges))
	for _, rangeRequest := range r.PostalCodeRanges {
		postalRange, err := zone.NewPostalCodeRange(rangeRequest.From, rangeRequest.To)
		if err != nil {
			return zone.CountryCoverage{}, err
		}
		ranges = append(ranges, postalRange)
	}
	return zone.NewCountryCoverage(r.CountryCode, r.Regions, ranges, r.Cities)
}

// MethodLinkRequest links a method into a zone, optionally overriding its
// rate strategy for that zone.
type MethodLinkRequest struct {
	MethodID    string                  `json:"method_id"`
	CustomRates *RateCalculationRequest `json:"custom_rates,omitempty"`
}

// CreateZoneRequest is the zone creation endpoint's request body.
type CreateZoneRequest struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	StoreID     *string                  `json:"store_id,omitempty"`
	Countries   []CountryCoverageRequest `json:"countries"`
	Methods     []MethodLinkRequest      `json:"methods,omitempty"`
}

// CreateZoneResponse returns the generated zone ID.
type CreateZoneResponse struct {
	ID string `json:"id"`
}

// ZoneResponse is one zone in the listing read model.
type ZoneResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	CountryCodes []string `json:"country_codes"`
	MethodCount  int      `json:"method_count"`
	IsActive     bool     `json:"is_active"`
}

func zoneResponseFrom(model queries.ListZonesQueryResponse) ZoneResponse {
	return ZoneResponse{
		ID:           model.ID.String(),
		Name:         model.Name,
		Description:  model.Description,
		CountryCodes: model.CountryCodes,
		MethodCount:  model.MethodCount,
		IsActive:     model.IsActive,
	}
}

// CreateMethodRequest is the method creation endpoint's request body.
type CreateMethodRequest struct {
	Code               string                 `json:"code"`
	Name               string                 `json:"name"`
	Description        string                 `json:"description,omitempty"`
	StoreID            *string                `json:"store_id,omitempty"`
	CarrierName        string                 `json:"carrier_name,omitempty"`
	CarrierService     string                 `json:"carrier_service,omitempty"`
	Features           []string               `json:"features,omitempty"`
	RateCalculation    RateCalculationRequest `json:"rate_calculation"`
	MinCost            *float64               `json:"min_cost,omitempty"`
	MaxCost            *float64               `json:"max_cost,omitempty"`
	EstimateMinDays    *int                   `json:"estimate_min_days,omitempty"`
	EstimateMaxDays    *int                   `json:"estimate_max_days,omitempty"`
	ExcludedCountries  []string               `json:"excluded_countries,omitempty"`
	MaxWeight          *float64               `json:"max_weight,omitempty"`
	ProhibitedProducts []string               `json:"prohibited_products,omitempty"`
}

// CreateMethodResponse returns the generated method ID.
type CreateMethodResponse struct {
	ID string `json:"id"`
}

// MethodResponse is one method in the listing read model.
type MethodResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	CarrierName    string `json:"carrier_name,omitempty"`
	CarrierService string `json:"carrier_service,omitempty"`
	RateType       string `json:"rate_type"`
	IsActive       bool   `json:"is_active"`
}

func methodResponseFrom(model queries.ListMethodsQueryResponse) MethodResponse {
	return MethodResponse{
		ID:             model.ID.String(),
		Code:           model.Code,
		Name:           model.Name,
		Description:    model.Description,
		CarrierName:    model.CarrierName,
		CarrierService: model.CarrierService,
		RateType:       model.RateType,
		IsActive:       model.IsActive,
	}
}

// TrackingEventResponse is one carrier scan event.
type TrackingEventResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
}

// TrackingResponse is the carrier's transit view of a shipment.
type TrackingResponse struct {
	TrackingNumber    string                  `json:"tracking_number"`
	CarrierName       string                  `json:"carrier_name,omitempty"`
	Status            string                  `json:"status"`
	EstimatedDelivery *time.Time              `json:"estimated_delivery,omitempty"`
	Events            []TrackingEventResponse `json:"events"`
}

func trackingResponseFrom(info ports.TrackingInfo) TrackingResponse {
	events := make([]TrackingEventResponse, 0, len(info.Events))
	for _, event := range info.Events {
		events = append(events, TrackingEventResponse{
			Timestamp:   event.Timestamp,
			Location:    event.Location,
			Description: event.Description,
		})
	}
	return TrackingResponse{
		TrackingNumber:    info.TrackingNumber,
		CarrierName:       info.CarrierName,
		Status:            info.Status,
		EstimatedDelivery: info.EstimatedDelivery,
		Events:            events,
	}
}

// ownerFromStoreID resolves an optional store ID into an Owner. A nil or
// empty ID means the platform owner.
func ownerFromStoreID(storeID *string) (kernel.Owner, error) {
	if storeID == nil || *storeID == "" {
		return kernel.PlatformOwner(), nil
	}

	id, err := kernel.UUIDFromString(*storeID)
	if err != nil {
		return kernel.Owner{}, err
	}
	return kernel.StoreOwner(id)
}
