package code

// General error codes (100xxx).
const (
	// ErrSuccess - 200.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unexpected failure.
	ErrUnknown
	// ErrBind - 400: body could not be decoded.
	ErrBind
	// ErrValidation - 400: required field missing or malformed.
	ErrValidation
)

// Patient error codes (101xxx).
const (
	// ErrPatientAlreadyExist - 409: idLabel already taken.
	ErrPatientAlreadyExist int = iota + 101000
)

// Storage error codes (105xxx).
const (
	// ErrStorageUnavailable - 503: the database cannot be reached.
	ErrStorageUnavailable int = iota + 105000
)
