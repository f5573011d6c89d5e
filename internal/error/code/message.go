package code

// messages maps error codes to their default human-readable messages.
var messages = map[int]string{
	ErrSuccess:    "success",
	ErrUnknown:    "internal server error",
	ErrBind:       "invalid request parameters",
	ErrValidation: "request validation failed",
	ErrDatabase:   "database error",

	ErrHouseholdNotFound:         "household not found",
	ErrHouseholdNicknameRequired: "must provide a household nickname",

	ErrAddressNotFound: "address not found",

	ErrEventNotFound: "event not found",

	ErrGiftNotFound: "gift not found",

	ErrCardNotFound:      "card not found",
	ErrCardInvalidStatus: "card status must be one of: New, Written, Addressed, Sent",

	ErrPicklistNotFound: "no picklist values found",
}

// statuses maps error codes to HTTP status codes.
var statuses = map[int]int{
	ErrSuccess:    StatusOK,
	ErrUnknown:    StatusInternalServerError,
	ErrBind:       StatusBadRequest,
	ErrValidation: StatusBadRequest,
	ErrDatabase:   StatusInternalServerError,

	ErrHouseholdNotFound:         StatusNotFound,
	ErrHouseholdNicknameRequired: StatusBadRequest,

	ErrAddressNotFound: StatusNotFound,

	ErrEventNotFound: StatusNotFound,

	ErrGiftNotFound: StatusNotFound,

	ErrCardNotFound:      StatusNotFound,
	ErrCardInvalidStatus: StatusBadRequest,

	ErrPicklistNotFound: StatusNotFound,
}

// GetMessage returns the default message for an error code
func GetMessage(errorCode int) string {
	if msg, ok := messages[errorCode]; ok {
		return msg
	}
	return messages[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code
func GetStatus(errorCode int) int {
	if status, ok := statuses[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
