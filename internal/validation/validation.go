// Package validation checks request payloads before they reach the services.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"devconnect/internal/models"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
	MaxEmailLength    = 254
	MaxNameLength     = 100
	MaxBioLength      = 100
	MaxWebsiteLength  = 100
	MaxLocationLength = 50
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks the address shape and length.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("email must be at most %d characters", MaxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("please include a valid email")
	}
	return nil
}

// ValidatePassword checks length bounds. bcrypt ignores bytes past 72.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("please enter a password with %d or more characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordLength)
	}
	return nil
}

// ValidateRegistration returns one field error per failing input.
func ValidateRegistration(name, email, password string) []models.FieldError {
	var errs []models.FieldError
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs = append(errs, models.FieldError{Field: "name", Message: "name is required"})
	case utf8.RuneCountInString(name) > MaxNameLength:
		errs = append(errs, models.FieldError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", MaxNameLength)})
	}
	if err := ValidateEmail(email); err != nil {
		errs = append(errs, models.FieldError{Field: "email", Message: err.Error()})
	}
	if err := ValidatePassword(password); err != nil {
		errs = append(errs, models.FieldError{Field: "password", Message: err.Error()})
	}
	return errs
}

// ValidateLogin only checks presence; wrong values are a credential failure.
func ValidateLogin(email, password string) []models.FieldError {
	var errs []models.FieldError
	if err := ValidateEmail(email); err != nil {
		errs = append(errs, models.FieldError{Field: "email", Message: err.Error()})
	}
	if password == "" {
		errs = append(errs, models.FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}

// ValidateProfile enforces field length limits on provided fields.
func ValidateProfile(f models.ProfileFields) []models.FieldError {
	var errs []models.FieldError
	check := func(field string, v *string, limit int) {
		if v != nil && utf8.RuneCountInString(*v) > limit {
			errs = append(errs, models.FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s must be at most %d characters", field, limit),
			})
		}
	}
	check("bio", f.Bio, MaxBioLength)
	check("location", f.Location, MaxLocationLength)
	check("website", f.Website, MaxWebsiteLength)
	return errs
}

// ValidateText requires a non-blank value for field.
func ValidateText(field, text string) []models.FieldError {
	if strings.TrimSpace(text) == "" {
		return []models.FieldError{{Field: field, Message: "text is required"}}
	}
	return nil
}
