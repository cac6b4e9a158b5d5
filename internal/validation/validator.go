// Package validation holds the pure rules a Person must satisfy before it is stored.
package validation

import (
	"time"

	"people/internal/models"
	"people/internal/shared"
)

// ValidatePerson checks every attribute of p in a fixed order and returns the first
// failure. It is shared by the save and update flows so both report identical messages.
func ValidatePerson(p *models.Person) error {
	if p == nil {
		return shared.NewKindError(shared.ErrMissingValue, "Person cannot be null")
	}

	if err := validateName(p.Name); err != nil {
		return err
	}
	if err := validateWeight(p.Weight); err != nil {
		return err
	}
	if err := validateHeight(p.Height); err != nil {
		return err
	}
	if err := validateDateOfBirth(p.DateOfBirth); err != nil {
		return err
	}
	return validateGender(p.Gender)
}

// ValidateIdentifier only checks presence. Whether the value is well formed is
// decided by the storage port.
func ValidateIdentifier(id string) error {
	if id == "" {
		return shared.NewKindError(shared.ErrMissingValue, "Id cannot be null")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewKindError(shared.ErrMissingOrEmpty, "Person's name cannot be null or empty")
	}
	return nil
}

func validateWeight(weight *float64) error {
	if weight == nil {
		return shared.NewKindError(shared.ErrMissingValue, "Person's weight cannot be null")
	}
	if *weight <= 0 {
		return shared.NewKindError(shared.ErrOutOfRange, "Person's weight cannot be less than or equal to zero")
	}
	return nil
}

func validateHeight(height *float64) error {
	if height == nil {
		return shared.NewKindError(shared.ErrMissingValue, "Person's height cannot be null")
	}
	if *height <= 0 {
		return shared.NewKindError(shared.ErrOutOfRange, "Person's height cannot be less than or equal to zero")
	}
	return nil
}

// validateDateOfBirth relies on time.Parse being strict: two-digit day and month,
// four-digit year, and no day past the end of its month.
func validateDateOfBirth(dateOfBirth string) error {
	if dateOfBirth == "" {
		return shared.NewKindError(shared.ErrMissingOrEmpty, "Person's date of birth cannot be null or empty")
	}
	if _, err := time.Parse(models.DateOfBirthLayout, dateOfBirth); err != nil {
		return shared.NewKindError(shared.ErrMalformedInput, "Person's date of birth must be in dd/MM/yyyy format")
	}
	return nil
}

func validateGender(gender models.Gender) error {
	if gender == "" {
		return shared.NewKindError(shared.ErrMissingValue, "Person's gender cannot be null")
	}
	if !gender.IsValid() {
		return shared.NewKindError(shared.ErrMalformedInput, "Person's gender must be MALE or FEMALE")
	}
	return nil
}
