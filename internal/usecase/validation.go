package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/crm-records/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateContactBatch(contacts []*entity.Contact) []ValidationError {
	var errors []ValidationError

	for i, contact := range contacts {
		if strings.TrimSpace(contact.LastName) == "" {
			errors = append(errors, ValidationError{field(i, "last_name"), "is required"})
		}
		if contact.Email != "" {
			if _, err := mail.ParseAddress(contact.Email); err != nil {
				errors = append(errors, ValidationError{field(i, "email"), "is invalid"})
			}
		}
	}

	return errors
}

func ValidateOpportunityBatch(opps []*entity.Opportunity) []ValidationError {
	var errors []ValidationError

	for i, opp := range opps {
		if strings.TrimSpace(opp.Name) == "" {
			errors = append(errors, ValidationError{field(i, "name"), "is required"})
		}
	}

	return errors
}

func field(index int, name string) string {
	return fmt.Sprintf("[%d].%s", index, name)
}

func joinValidationErrors(errs []ValidationError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
