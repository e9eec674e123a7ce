package queries

import (
	"context"
	"encoding/json"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListZonesQueryHandler retrieves zone information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListZonesQueryHandler struct {
	db *gorm.DB
}

// NewListZonesQueryHandler creates a handler for zone listing queries.
// Requires a GORM database connection for query execution.
func NewListZonesQueryHandler(db *gorm.DB) ListZonesQueryHandler {
	return ListZonesQueryHandler{db: db}
}

// Handle executes the query and returns zone read models in creation order.
// Store-owned zones are included only for the requesting store.
func (h ListZonesQueryHandler) Handle(
	ctx context.Context,
	query ListZonesQuery,
) ([]ListZonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var storeID any
	if id := query.Store().StoreID(); id != nil {
		storeID = id.Bytes()
	}

	zones := make([]ListZonesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			z.id,
			z.name,
			z.description,
			z.countries,
			z.is_active,
			(SELECT COUNT(*) FROM zone_method_links l WHERE l.zone_id = z.id) AS method_count
		FROM shipping_zones z
		WHERE z.owner_store_id IS NULL OR z.owner_store_id = ?
		ORDER BY z.created_at
	`, storeID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var z ListZonesQueryResponse
		var id uuid.UUID
		var countries []byte

		err = rows.Scan(&id, &z.Name, &z.Description, &countries, &z.IsActive, &z.MethodCount)
		if err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		z.ID = zoneID

		var entries []struct {
			CountryCode string `json:"country_code"`
		}
		if err = json.Unmarshal(countries, &entries); err != nil {
			return nil, err
		}
		for _, entry := range entries {
			z.CountryCodes = append(z.CountryCodes, entry.CountryCode)
		}

		zones = append(zones, z)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
