package apperrors

import "net/http"

// Factories for the failures the profile/portfolio/skills handlers report.
// The upstream API contract maps duplicate-profile creation to 400, not 409,
// so the conflict factories here carry StatusBadRequest deliberately.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 with a caller-supplied message.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists reports a duplicate resource as 400 per the API contract.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation reports a business-rule violation as 400.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}
