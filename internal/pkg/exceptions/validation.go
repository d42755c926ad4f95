package exceptions

import (
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/schema"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if fieldErr, ok := schema.AsFieldError(err); ok {
		return fieldErr.Error()
	}
	return constvars.ErrDevInvalidInput
}
