package departmentregistry

import (
	"context"
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/ports"
	"production/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDepartmentRegistry implements DepartmentRegistry using GORM.
type GormDepartmentRegistry struct {
	db *gorm.DB
}

// NewGormDepartmentRegistry creates a new GORM department registry.
func NewGormDepartmentRegistry(db *gorm.DB) *GormDepartmentRegistry {
	return &GormDepartmentRegistry{db: db}
}

// GetAll retrieves every department in pipeline order.
func (r *GormDepartmentRegistry) GetAll(ctx context.Context) ([]ports.Department, error) {
	var dtos []DepartmentDTO
	if err := r.db.WithContext(ctx).Order("sort_order").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return departmentsToDomain(dtos)
}

// GetByID retrieves a single department.
func (r *GormDepartmentRegistry) GetByID(ctx context.Context, id kernel.UUID) (ports.Department, error) {
	if err := id.Validate(); err != nil {
		return ports.Department{}, err
	}

	var dto DepartmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Department{}, errs.NewObjectNotFoundError("department", id.String())
		}
		return ports.Department{}, err
	}

	return departmentToDomain(dto)
}

// GetForUser retrieves the departments the worker is assigned to, in
// pipeline order.
func (r *GormDepartmentRegistry) GetForUser(ctx context.Context, userID kernel.UUID) ([]ports.Department, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DepartmentDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN user_departments ud ON ud.department_id = departments.id").
		Where("ud.user_id = ?", userID.Bytes()).
		Order("departments.sort_order").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return departmentsToDomain(dtos)
}

// GetBreaks retrieves the defect catalogs of the given departments.
// Departments without predefined reasons are simply absent from the map.
func (r *GormDepartmentRegistry) GetBreaks(
	ctx context.Context,
	departmentIDs []kernel.UUID,
) (map[kernel.UUID][]ports.BreakReason, error) {
	ids := make([]uuid.UUID, 0, len(departmentIDs))
	for _, id := range departmentIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}

	var dtos []BreakDTO
	if err := r.db.WithContext(ctx).
		Where("department_id IN ?", ids).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	breaks := make(map[kernel.UUID][]ports.BreakReason, len(departmentIDs))
	for _, dto := range dtos {
		reason, err := breakToDomain(dto)
		if err != nil {
			return nil, err
		}
		breaks[reason.DepartmentID] = append(breaks[reason.DepartmentID], reason)
	}

	return breaks, nil
}

func departmentsToDomain(dtos []DepartmentDTO) ([]ports.Department, error) {
	departments := make([]ports.Department, 0, len(dtos))
	for _, dto := range dtos {
		department, err := departmentToDomain(dto)
		if err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}
	return departments, nil
}
