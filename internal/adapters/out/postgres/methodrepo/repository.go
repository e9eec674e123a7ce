package methodrepo

import (
	"context"
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMethodRepository implements MethodRepository using GORM.
type GormMethodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMethodRepository creates a new GORM method repository.
func NewGormMethodRepository(db *gorm.DB, tracker aggregateTracker) *GormMethodRepository {
	return &GormMethodRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new method to the database.
func (r *GormMethodRepository) Add(ctx context.Context, aggregate *method.Method) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing method to the database.
func (r *GormMethodRepository) Update(ctx context.Context, aggregate *method.Method) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&MethodDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a method by ID.
func (r *GormMethodRepository) Get(ctx context.Context, id kernel.UUID) (*method.Method, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("method", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a method by its unique upper-case code.
func (r *GormMethodRepository) GetByCode(ctx context.Context, code string) (*method.Method, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto MethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("method", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every method in creation order.
func (r *GormMethodRepository) GetAll(ctx context.Context) ([]*method.Method, error) {
	var dtos []MethodDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	methods := make([]*method.Method, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	return methods, nil
}
