// Package methodrepo provides data transfer objects and mapping functions
// for shipping method persistence. It owns the JSON codec for rate
// calculation strategies, shared with zonerepo for link-level overrides.
package methodrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// MethodDTO represents the database structure for persisting shipping method
// aggregates. The rate strategy is stored as a type tag plus a JSONB config
// blob; list-valued fields use Postgres text arrays.
type MethodDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerStoreID       *uuid.UUID `gorm:"type:uuid;index"`
	Code               string     `gorm:"uniqueIndex;size:64"`
	Name               string
	Description        string
	CarrierName        string
	CarrierService     string
	Features           pq.StringArray `gorm:"type:text[]"`
	RateType           string         `gorm:"size:32"`
	RateConfig         datatypes.JSON `gorm:"type:jsonb"`
	MinCost            *float64
	MaxCost            *float64
	EstimateMinDays    *int
	EstimateMaxDays    *int
	ExcludedCountries  pq.StringArray `gorm:"type:text[]"`
	MaxWeight          *float64
	ProhibitedProducts pq.StringArray `gorm:"type:text[]"`
	IsActive           bool
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for method entities.
func (MethodDTO) TableName() string {
	return "shipping_methods"
}

// weightTierDTO is the JSON shape of one weight tier row.
type weightTierDTO struct {
	MinWeight      float64 `json:"min_weight"`
	MaxWeight      float64 `json:"max_weight"`
	Rate           float64 `json:"rate"`
	AdditionalRate float64 `json:"additional_rate"`
}

// rateConfigDTO is the JSON shape of a rate strategy's configuration.
// Fields irrelevant to a strategy stay empty.
type rateConfigDTO struct {
	BaseRate              float64         `json:"base_rate,omitempty"`
	Tiers                 []weightTierDTO `json:"tiers,omitempty"`
	FreeShippingThreshold *float64        `json:"free_shipping_threshold,omitempty"`
	Percentage            *float64        `json:"percentage,omitempty"`
}

// EncodeRateCalculation serializes a strategy to its type tag and JSONB
// config. Shared with zonerepo for zone-link rate overrides.
func EncodeRateCalculation(rc method.RateCalculation) (string, datatypes.JSON, error) {
	var config rateConfigDTO

	switch s := rc.(type) {
	case method.FlatRate:
		config.BaseRate = s.BaseRate()
	case method.WeightBased:
		config.BaseRate = s.BaseRate()
		config.Tiers = tiersToDTO(s.Tiers())
	case method.PriceBased:
		config.BaseRate = s.BaseRate()
		config.FreeShippingThreshold = s.FreeShippingThreshold()
		config.Percentage = s.Percentage()
	case method.DimensionalWeight:
		config.BaseRate = s.BaseRate()
		config.Tiers = tiersToDTO(s.Tiers())
	case method.ZoneBased:
		config.BaseRate = s.BaseRate()
	case method.CarrierAPI:
		// No configuration.
	default:
		return "", nil, fmt.Errorf("unknown rate calculation type %q", rc.Type())
	}

	raw, err := json.Marshal(config)
	if err != nil {
		return "", nil, err
	}
	return rc.Type(), raw, nil
}

// DecodeRateCalculation reconstructs a strategy from its type tag and JSONB
// config, re-running the strategy's construction validation.
func DecodeRateCalculation(rateType string, raw datatypes.JSON) (method.RateCalculation, error) {
	var config rateConfigDTO
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &config); err != nil {
			return nil, err
		}
	}

	switch rateType {
	case method.TypeFlatRate:
		return method.NewFlatRate(config.BaseRate)
	case method.TypeWeightBased:
		tiers, err := tiersFromDTO(config.Tiers)
		if err != nil {
			return nil, err
		}
		return method.NewWeightBased(tiers, config.BaseRate)
	case method.TypePriceBased:
		return method.NewPriceBased(config.BaseRate, config.FreeShippingThreshold, config.Percentage)
	case method.TypeDimensionalWeight:
		tiers, err := tiersFromDTO(config.Tiers)
		if err != nil {
			return nil, err
		}
		return method.NewDimensionalWeight(tiers, config.BaseRate)
	case method.TypeZoneBased:
		return method.NewZoneBased(config.BaseRate)
	case method.TypeCarrierAPI:
		return method.NewCarrierAPI(), nil
	default:
		return nil, fmt.Errorf("unknown rate calculation type %q", rateType)
	}
}

func tiersToDTO(tiers []method.WeightTier) []weightTierDTO {
	dtos := make([]weightTierDTO, 0, len(tiers))
	for _, tier := range tiers {
		dtos = append(dtos, weightTierDTO{
			MinWeight:      tier.MinWeight(),
			MaxWeight:      tier.MaxWeight(),
			Rate:           tier.Rate(),
			AdditionalRate: tier.AdditionalRate(),
		})
	}
	return dtos
}

func tiersFromDTO(dtos []weightTierDTO) ([]method.WeightTier, error) {
	tiers := make([]method.WeightTier, 0, len(dtos))
	for _, dto := range dtos {
		tier, err := method.NewWeightTier(dto.MinWeight, dto.MaxWeight, dto.Rate, dto.AdditionalRate)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

// fromDomain converts a method domain aggregate to its database representation.
func fromDomain(aggregate *method.Method) (MethodDTO, error) {
	rateType, rateConfig, err := EncodeRateCalculation(aggregate.RateCalculation())
	if err != nil {
		return MethodDTO{}, err
	}

	var ownerStoreID *uuid.UUID
	if id := aggregate.Owner().StoreID(); id != nil {
		raw := id.Bytes()
		ownerStoreID = &raw
	}

	var estimateMin, estimateMax *int
	if aggregate.HasDeliveryEstimate() {
		estimate := aggregate.DeliveryEstimate()
		minDays, maxDays := estimate.MinDays(), estimate.MaxDays()
		estimateMin, estimateMax = &minDays, &maxDays
	}

	restrictions := aggregate.Restrictions()
	prohibited := make(pq.StringArray, 0, len(restrictions.ProhibitedProducts()))
	for _, id := range restrictions.ProhibitedProducts() {
		prohibited = append(prohibited, id.String())
	}

	return MethodDTO{
		ID:                 aggregate.ID().Bytes(),
		OwnerStoreID:       ownerStoreID,
		Code:               aggregate.Code(),
		Name:               aggregate.Name(),
		Description:        aggregate.Description(),
		CarrierName:        aggregate.CarrierName(),
		CarrierService:     aggregate.CarrierService(),
		Features:           pq.StringArray(aggregate.Features()),
		RateType:           rateType,
		RateConfig:         rateConfig,
		MinCost:            aggregate.CostBounds().MinCost(),
		MaxCost:            aggregate.CostBounds().MaxCost(),
		EstimateMinDays:    estimateMin,
		EstimateMaxDays:    estimateMax,
		ExcludedCountries:  pq.StringArray(restrictions.ExcludedCountries()),
		MaxWeight:          restrictions.MaxWeight(),
		ProhibitedProducts: prohibited,
		IsActive:           aggregate.IsActive(),
	}, nil
}

// toDomain converts a database DTO to a method domain aggregate.
// Reconstructs the complete aggregate using RestoreMethod.
func toDomain(dto MethodDTO) (*method.Method, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	owner := kernel.PlatformOwner()
	if dto.OwnerStoreID != nil {
		storeID, storeErr := kernel.UUIDFromBytes((*dto.OwnerStoreID)[:])
		if storeErr != nil {
			return nil, storeErr
		}
		owner, storeErr = kernel.StoreOwner(storeID)
		if storeErr != nil {
			return nil, storeErr
		}
	}

	rateCalculation, err := DecodeRateCalculation(dto.RateType, dto.RateConfig)
	if err != nil {
		return nil, err
	}

	costBounds, err := method.NewCostBounds(dto.MinCost, dto.MaxCost)
	if err != nil {
		return nil, err
	}

	var estimate *method.DeliveryEstimate
	if dto.EstimateMinDays != nil && dto.EstimateMaxDays != nil {
		est, estErr := method.NewDeliveryEstimate(*dto.EstimateMinDays, *dto.EstimateMaxDays)
		if estErr != nil {
			return nil, estErr
		}
		estimate = &est
	}

	prohibited := make([]kernel.UUID, 0, len(dto.ProhibitedProducts))
	for _, raw := range dto.ProhibitedProducts {
		productID, productErr := kernel.UUIDFromString(raw)
		if productErr != nil {
			return nil, productErr
		}
		prohibited = append(prohibited, productID)
	}

	restrictions, err := method.NewRestrictions(dto.ExcludedCountries, dto.MaxWeight, prohibited)
	if err != nil {
		return nil, err
	}

	return method.RestoreMethod(
		id, owner, dto.Code, dto.Name, dto.Description,
		dto.CarrierName, dto.CarrierService, dto.Features,
		rateCalculation, costBounds, estimate, restrictions,
		dto.IsActive,
	)
}
