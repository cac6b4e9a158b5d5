package models

import (
	"fmt"
	"strings"
)

// DateOfBirthLayout is the textual format of Person.DateOfBirth (dd/MM/yyyy).
const DateOfBirthLayout = "02/01/2006"

// Gender is the enumerated gender of a person. The zero value means "not provided".
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// IsValid reports whether g is one of the supported literals.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// String returns the string representation of the gender.
func (g Gender) String() string {
	return string(g)
}

// UnmarshalText rejects literals other than MALE and FEMALE.
// An empty string decodes to the zero value so the validator can report it as missing.
func (g *Gender) UnmarshalText(text []byte) error {
	v := Gender(strings.TrimSpace(string(text)))
	if v != "" && !v.IsValid() {
		return fmt.Errorf("unknown gender %q", string(text))
	}
	*g = v
	return nil
}

// Person is the single document type stored in the people collection.
// Numeric attributes are pointers so that an absent value can be told apart from zero.
type Person struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Weight      *float64 `json:"weight"`
	Height      *float64 `json:"height"`
	DateOfBirth string   `json:"dateOfBirth"`
	Gender      Gender   `json:"gender"`
}

// WithID returns a copy of p carrying the given identifier.
func (p Person) WithID(id string) Person {
	p.ID = id
	return p
}

// Float64 returns a pointer to v. Handy when building Person literals.
func Float64(v float64) *float64 {
	return &v
}
