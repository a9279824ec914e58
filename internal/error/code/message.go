package code

import "net/http"

var codeMessageMap = map[int]string{
	ErrSuccess:    "success",
	ErrUnknown:    "unknown error",
	ErrBind:       "invalid request body",
	ErrValidation: "validation failed",

	ErrPatientAlreadyExist: "patient with this idLabel already exists",

	ErrStorageUnavailable: "storage unavailable",
}

var codeStatusMap = map[int]int{
	ErrSuccess:    http.StatusOK,
	ErrUnknown:    http.StatusInternalServerError,
	ErrBind:       http.StatusBadRequest,
	ErrValidation: http.StatusBadRequest,

	ErrPatientAlreadyExist: http.StatusConflict,

	ErrStorageUnavailable: http.StatusServiceUnavailable,
}

// GetMessage returns the default message of an error code.
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status of an error code.
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
