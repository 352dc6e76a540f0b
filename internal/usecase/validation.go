package usecase

import (
	"fmt"
	"strings"

	"github.com/edgeup/edgeup-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEnquiryInput checks presence of the required form fields. Phone is
// optional; whitespace-only values count as empty. Email syntax is
// deliberately not enforced here.
func ValidateEnquiryInput(input SubmitEnquiryInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	}

	if strings.TrimSpace(input.Institution) == "" {
		errors = append(errors, ValidationError{"institution", "is required"})
	}

	if strings.TrimSpace(input.Message) == "" {
		errors = append(errors, ValidationError{"message", "is required"})
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		errors = append(errors, ValidationError{"role", "is required"})
	} else if !entity.EnquirerRole(role).Valid() {
		errors = append(errors, ValidationError{"role", "must be individual, institution or partner"})
	}

	return errors
}
