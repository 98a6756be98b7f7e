package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrSpaceNotFound indicates that a space with the given ID does not exist.
	ErrSpaceNotFound = errors.New("space not found")

	// ErrAssetNotFound indicates that an asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrCashFlowNotFound indicates that a cash-flow record with the given ID does not exist.
	ErrCashFlowNotFound = errors.New("cash flow not found")

	// ErrSnapshotNotFound indicates that no snapshot exists for the requested space and date.
	ErrSnapshotNotFound = errors.New("portfolio snapshot not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")
)
