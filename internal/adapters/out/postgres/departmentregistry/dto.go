// Package departmentregistry provides read access to department reference
// data: the departments themselves, their defect catalogs, and the
// worker-to-department assignments. The data is administered outside this
// service; the registry only reads it.
package departmentregistry

import (
	"production/internal/core/domain/model/kernel"
	"production/internal/core/ports"

	"github.com/google/uuid"
)

// DepartmentDTO represents the database structure for departments.
// SortOrder defines the canonical pipeline order used when decomposing a
// new order into stages.
type DepartmentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	SortOrder int `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for department entities.
func (DepartmentDTO) TableName() string {
	return "departments"
}

// BreakDTO represents one predefined defect reason in a department's catalog.
type BreakDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DepartmentID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
}

// TableName specifies the database table name for break entities.
func (BreakDTO) TableName() string {
	return "breaks"
}

// UserDepartmentDTO represents a worker's assignment to a department.
type UserDepartmentDTO struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	DepartmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for assignment entities.
func (UserDepartmentDTO) TableName() string {
	return "user_departments"
}

func departmentToDomain(dto DepartmentDTO) (ports.Department, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Department{}, err
	}

	return ports.Department{
		ID:        id,
		Name:      dto.Name,
		SortOrder: dto.SortOrder,
	}, nil
}

func breakToDomain(dto BreakDTO) (ports.BreakReason, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.BreakReason{}, err
	}

	departmentID, err := kernel.UUIDFromBytes(dto.DepartmentID[:])
	if err != nil {
		return ports.BreakReason{}, err
	}

	return ports.BreakReason{
		ID:           id,
		DepartmentID: departmentID,
		Name:         dto.Name,
	}, nil
}
