package validator

import (
	"strings"
)

// ValidationErrors maps a request field to what is wrong with it.
type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// ValidateUser checks that every field of a create/update request is present.
// Formats are not checked.
func ValidateUser(name, email, password, document string, isActive *bool) ValidationErrors {
	errs := make(ValidationErrors)

	required(errs, "name", "Name", name)
	required(errs, "email", "Email", email)
	required(errs, "password", "Password", password)
	required(errs, "document", "Document", document)
	if isActive == nil {
		errs.Add("isActive", "isActive is required")
	}

	return errs
}

func ValidateStatus(isActive *bool) ValidationErrors {
	errs := make(ValidationErrors)
	if isActive == nil {
		errs.Add("isActive", "isActive is required")
	}
	return errs
}

func required(errs ValidationErrors, field, label, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, label+" is required")
	}
}
