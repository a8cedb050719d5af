package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMemberNotFound indicates that a member with the given ID does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrFamilyGroupNotFound indicates that a family group with the given ID does not exist.
	ErrFamilyGroupNotFound = errors.New("family group not found")

	// ErrSIPScheduleNotFound indicates that a SIP schedule with the given ID does not exist.
	ErrSIPScheduleNotFound = errors.New("sip schedule not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidInviteToken indicates that an invite token could not be
	// decrypted or has expired.
	ErrInvalidInviteToken = errors.New("invalid or expired invite token")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToRetrieveMembers      = errors.New("failed to retrieve members")
	ErrFailedToRetrieveSchedules    = errors.New("failed to retrieve sip schedules")
	ErrFailedToRetrievePrices       = errors.New("failed to retrieve price overrides")
	ErrFailedToComputeHoldings      = errors.New("failed to compute holdings")
	ErrFailedToComputeMetrics       = errors.New("failed to compute dashboard metrics")
	ErrFailedToRetrieveSnapshots    = errors.New("failed to retrieve dashboard snapshots")
	ErrFailedToRefreshSnapshots     = errors.New("failed to refresh dashboard snapshots")
)
