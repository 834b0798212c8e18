package ports

import (
	"context"

	"production/internal/core/domain/model/kernel"
)

// Department is reference data describing one work department of the shop.
// SortOrder defines the canonical pipeline order used when decomposing a new
// order into stages.
type Department struct {
	ID        kernel.UUID
	Name      string
	SortOrder int
}

// BreakReason is reference data describing one predefined defect reason
// offered by a department's catalog.
type BreakReason struct {
	ID           kernel.UUID
	DepartmentID kernel.UUID
	Name         string
}

// DepartmentRegistry defines the read contract for department reference data.
// Departments and their defect catalogs are administered outside this engine;
// the registry only reads them.
type DepartmentRegistry interface {
	// GetAll retrieves every department ordered by SortOrder.
	GetAll(ctx context.Context) ([]Department, error)

	// GetByID retrieves a single department.
	GetByID(ctx context.Context, id kernel.UUID) (Department, error)

	// GetForUser retrieves the departments the given worker is assigned to,
	// ordered by SortOrder. Workers only see stages of their own departments.
	GetForUser(ctx context.Context, userID kernel.UUID) ([]Department, error)

	// GetBreaks retrieves the defect catalogs of the given departments as a
	// map from department ID to its break reasons.
	GetBreaks(ctx context.Context, departmentIDs []kernel.UUID) (map[kernel.UUID][]BreakReason, error)
}
