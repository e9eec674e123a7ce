package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMethodsQueryHandler retrieves method information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListMethodsQueryHandler struct {
	db *gorm.DB
}

// NewListMethodsQueryHandler creates a handler for method listing queries.
// Requires a GORM database connection for query execution.
func NewListMethodsQueryHandler(db *gorm.DB) ListMethodsQueryHandler {
	return ListMethodsQueryHandler{db: db}
}

// Handle executes the query and returns method read models in creation order.
// Store-owned methods are included only for the requesting store.
func (h ListMethodsQueryHandler) Handle(
	ctx context.Context,
	query ListMethodsQuery,
) ([]ListMethodsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var storeID any
	if id := query.Store().StoreID(); id != nil {
		storeID = id.Bytes()
	}

	methods := make([]ListMethodsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			description,
			carrier_name,
			carrier_service,
			rate_type,
			is_active
		FROM shipping_methods
		WHERE owner_store_id IS NULL OR owner_store_id = ?
		ORDER BY created_at
	`, storeID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m ListMethodsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&m.Code,
			&m.Name,
			&m.Description,
			&m.CarrierName,
			&m.CarrierService,
			&m.RateType,
			&m.IsActive,
		)
		if err != nil {
			return nil, err
		}

		methodID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		m.ID = methodID

		methods = append(methods, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return methods, nil
}
