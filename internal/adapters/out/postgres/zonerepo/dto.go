// Package zonerepo provides data transfer objects and mapping functions for
// shipping zone persistence. Coverage entries are stored as a JSONB document
// on the zone row; method links live in their own table.
package zonerepo

import (
	"encoding/json"
	"time"

	"shipping/internal/adapters/out/postgres/methodrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/zone"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ZoneDTO represents the database structure for persisting zone aggregates.
type ZoneDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerStoreID *uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Description  string
	Countries    datatypes.JSON `gorm:"type:jsonb"`
	IsActive     bool
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	Links        []MethodLinkDTO `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "shipping_zones"
}

// MethodLinkDTO represents one zone-method link row. CustomRates is null
// when the method's own strategy applies.
type MethodLinkDTO struct {
	ZoneID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MethodID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsActive        bool
	CustomRateType  *string        `gorm:"size:32"`
	CustomRatesJSON datatypes.JSON `gorm:"column:custom_rates;type:jsonb"`
}

// TableName specifies the database table name for zone-method links.
func (MethodLinkDTO) TableName() string {
	return "zone_method_links"
}

// coverageDTO is the JSON shape of one country coverage entry.
type coverageDTO struct {
	CountryCode string           `json:"country_code"`
	Regions     []string         `json:"regions,omitempty"`
	PostalCodes []postalRangeDTO `json:"postal_codes,omitempty"`
	Cities      []string         `json:"cities,omitempty"`
}

// postalRangeDTO is the JSON shape of one inclusive postal-code range.
type postalRangeDTO struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// fromDomain converts a zone domain aggregate to its database representation.
func fromDomain(aggregate *zone.Zone) (ZoneDTO, error) {
	entries := make([]coverageDTO, 0, len(aggregate.Countries()))
	for _, coverage := range aggregate.Countries() {
		ranges := make([]postalRangeDTO, 0, len(coverage.PostalCodes()))
		for _, r := range coverage.PostalCodes() {
			ranges = append(ranges, postalRangeDTO{Min: r.Min(), Max: r.Max()})
		}
		entries = append(entries, coverageDTO{
			CountryCode: coverage.CountryCode(),
			Regions:     coverage.Regions(),
			PostalCodes: ranges,
			Cities:      coverage.Cities(),
		})
	}

	countries, err := json.Marshal(entries)
	if err != nil {
		return ZoneDTO{}, err
	}

	links := make([]MethodLinkDTO, 0, len(aggregate.MethodLinks()))
	for _, link := range aggregate.MethodLinks() {
		dto := MethodLinkDTO{
			ZoneID:   aggregate.ID().Bytes(),
			MethodID: link.MethodID().Bytes(),
			IsActive: link.IsActive(),
		}
		if link.CustomRates() != nil {
			rateType, rateConfig, encErr := methodrepo.EncodeRateCalculation(link.CustomRates())
			if encErr != nil {
				return ZoneDTO{}, encErr
			}
			dto.CustomRateType = &rateType
			dto.CustomRatesJSON = rateConfig
		}
		links = append(links, dto)
	}

	var ownerStoreID *uuid.UUID
	if id := aggregate.Owner().StoreID(); id != nil {
		raw := id.Bytes()
		ownerStoreID = &raw
	}

	return ZoneDTO{
		ID:           aggregate.ID().Bytes(),
		OwnerStoreID: ownerStoreID,
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		Countries:    countries,
		IsActive:     aggregate.IsActive(),
		Links:        links,
	}, nil
}

// toDomain converts a database DTO to a zone domain aggregate.
// Reconstructs the complete aggregate using RestoreZone.
func toDomain(dto ZoneDTO) (*zone.Zone, error) {
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

	var entries []coverageDTO
	if len(dto.Countries) > 0 {
		if err = json.Unmarshal(dto.Countries, &entries); err != nil {
			return nil, err
		}
	}

	countries := make([]zone.CountryCoverage, 0, len(entries))
	for _, entry := range entries {
		ranges := make([]zone.PostalCodeRange, 0, len(entry.PostalCodes))
		for _, r := range entry.PostalCodes {
			postalRange, rangeErr := zone.NewPostalCodeRange(r.Min, r.Max)
			if rangeErr != nil {
				return nil, rangeErr
			}
			ranges = append(ranges, postalRange)
		}
		coverage, coverageErr := zone.NewCountryCoverage(entry.CountryCode, entry.Regions, ranges, entry.Cities)
		if coverageErr != nil {
			return nil, coverageErr
		}
		countries = append(countries, coverage)
	}

	links := make([]zone.MethodLink, 0, len(dto.Links))
	for _, linkDTO := range dto.Links {
		methodID, linkErr := kernel.UUIDFromBytes(linkDTO.MethodID[:])
		if linkErr != nil {
			return nil, linkErr
		}

		var customRates method.RateCalculation
		if linkDTO.CustomRateType != nil {
			customRates, linkErr = methodrepo.DecodeRateCalculation(*linkDTO.CustomRateType, linkDTO.CustomRatesJSON)
			if linkErr != nil {
				return nil, linkErr
			}
		}

		link, linkErr := zone.RestoreMethodLink(methodID, linkDTO.IsActive, customRates)
		if linkErr != nil {
			return nil, linkErr
		}
		links = append(links, link)
	}

	return zone.RestoreZone(id, owner, dto.Name, dto.Description, countries, links, dto.IsActive)
}
