package services

import "errors"

// Registration constraint failures. Everything except ErrBatchWriteFailed is
// detected before any write happens; ErrBatchWriteFailed is returned after a
// mid-batch write error was rolled back, so the caller can retry the request.
var (
	ErrLeaderNotFound     = errors.New("leader not found")
	ErrIncompleteProfile  = errors.New("leader profile incomplete, missing college or department")
	ErrInvalidEvent       = errors.New("invalid event selected")
	ErrEventAlreadyTaken  = errors.New("team already registered for this event")
	ErrDuplicateInBatch   = errors.New("duplicate register numbers in team")
	ErrValidation         = errors.New("invalid participant data")
	ErrCapacityExceeded   = errors.New("15-student limit exceeded")
	ErrBidMayhemExclusive = errors.New("Bid Mayhem cannot be combined with other events")
	ErrTwoEventCap        = errors.New("student is already in 2 events")
	ErrSlotConflict       = errors.New("student already has an event in the same time slot")
	ErrBatchWriteFailed   = errors.New("team registration failed and was rolled back")
)

// Team query/mutation failures.
var (
	ErrMemberNotFound          = errors.New("student not found")
	ErrNoTeamFound             = errors.New("no team found")
	ErrNoRegistrationsForEvent = errors.New("no registrations found for this event")
)

// Auth failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMobileTaken        = errors.New("mobile number already registered")
	ErrGroupTaken         = errors.New("leader already exists for this college, department and shift")
	ErrAdminExists        = errors.New("admin already exists")
)
