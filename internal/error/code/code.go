package code

// HTTP status codes used by the API.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusCreated - 201: record created.
	StatusCreated = 201
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusNotFound - 404: record does not exist.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal / storage error.
	StatusInternalServerError = 500
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: failed to bind request parameters.
	ErrBind
	// ErrValidation - 400: request parameter validation failed.
	ErrValidation
	// ErrDatabase - 500: storage-level failure.
	ErrDatabase
)

// Household error codes (101xxx).
const (
	// ErrHouseholdNotFound - 404: household does not exist.
	ErrHouseholdNotFound int = iota + 101000
	// ErrHouseholdNicknameRequired - 400: nickname is required.
	ErrHouseholdNicknameRequired
)

// Address error codes (102xxx).
const (
	// ErrAddressNotFound - 404: address does not exist.
	ErrAddressNotFound int = iota + 102000
)

// Event error codes (103xxx).
const (
	// ErrEventNotFound - 404: event does not exist.
	ErrEventNotFound int = iota + 103000
)

// Gift error codes (104xxx).
const (
	// ErrGiftNotFound - 404: gift does not exist.
	ErrGiftNotFound int = iota + 104000
)

// Card error codes (105xxx).
const (
	// ErrCardNotFound - 404: card does not exist.
	ErrCardNotFound int = iota + 105000
	// ErrCardInvalidStatus - 400: status is not one of New/Written/Addressed/Sent.
	ErrCardInvalidStatus
)

// Picklist error codes (106xxx).
const (
	// ErrPicklistNotFound - 404: the picklist singleton row is missing.
	ErrPicklistNotFound int = iota + 106000
)
