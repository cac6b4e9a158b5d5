package validation

import (
	"errors"
	"testing"

	"people/internal/models"
	"people/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPerson() *models.Person {
	return &models.Person{
		ID:          "6f1c6a52-6a4c-4a55-9d0c-3b1f1b8e2a10",
		Name:        "John Smith",
		Weight:      models.Float64(1),
		Height:      models.Float64(1),
		DateOfBirth: "10/10/2000",
		Gender:      models.GenderMale,
	}
}

func assertKindError(t *testing.T, err error, kind shared.Error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "expected kind %q, got %v", kind, err)
	assert.Equal(t, message, err.Error())
}

func TestValidatePerson(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.Person)
		kind    shared.Error
		message string
	}{
		{"name missing", func(p *models.Person) { p.Name = "" }, shared.ErrMissingOrEmpty, "Person's name cannot be null or empty"},
		{"weight missing", func(p *models.Person) { p.Weight = nil }, shared.ErrMissingValue, "Person's weight cannot be null"},
		{"weight negative", func(p *models.Person) { p.Weight = models.Float64(-1) }, shared.ErrOutOfRange, "Person's weight cannot be less than or equal to zero"},
		{"weight zero", func(p *models.Person) { p.Weight = models.Float64(0) }, shared.ErrOutOfRange, "Person's weight cannot be less than or equal to zero"},
		{"height missing", func(p *models.Person) { p.Height = nil }, shared.ErrMissingValue, "Person's height cannot be null"},
		{"height negative", func(p *models.Person) { p.Height = models.Float64(-1) }, shared.ErrOutOfRange, "Person's height cannot be less than or equal to zero"},
		{"height zero", func(p *models.Person) { p.Height = models.Float64(0) }, shared.ErrOutOfRange, "Person's height cannot be less than or equal to zero"},
		{"date of birth missing", func(p *models.Person) { p.DateOfBirth = "" }, shared.ErrMissingOrEmpty, "Person's date of birth cannot be null or empty"},
		{"date of birth wrong format", func(p *models.Person) { p.DateOfBirth = "10/30/12" }, shared.ErrMalformedInput, "Person's date of birth must be in dd/MM/yyyy format"},
		{"gender missing", func(p *models.Person) { p.Gender = "" }, shared.ErrMissingValue, "Person's gender cannot be null"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPerson()
			tc.mutate(p)
			assertKindError(t, ValidatePerson(p), tc.kind, tc.message)
		})
	}
}

func TestValidatePerson_Nil(t *testing.T) {
	assertKindError(t, ValidatePerson(nil), shared.ErrMissingValue, "Person cannot be null")
}

func TestValidatePerson_Valid(t *testing.T) {
	assert.NoError(t, ValidatePerson(validPerson()))

	female := validPerson()
	female.Gender = models.GenderFemale
	female.ID = ""
	assert.NoError(t, ValidatePerson(female), "identifier is not part of the record rules")
}

func TestValidatePerson_RuleOrder(t *testing.T) {
	t.Run("name before weight", func(t *testing.T) {
		p := validPerson()
		p.Name = ""
		p.Weight = nil
		assertKindError(t, ValidatePerson(p), shared.ErrMissingOrEmpty, "Person's name cannot be null or empty")
	})

	t.Run("height before date of birth", func(t *testing.T) {
		p := validPerson()
		p.Height = models.Float64(0)
		p.DateOfBirth = "garbage"
		assertKindError(t, ValidatePerson(p), shared.ErrOutOfRange, "Person's height cannot be less than or equal to zero")
	})

	t.Run("everything missing", func(t *testing.T) {
		assertKindError(t, ValidatePerson(&models.Person{}), shared.ErrMissingOrEmpty, "Person's name cannot be null or empty")
	})
}

func TestValidatePerson_DateOfBirthStrictness(t *testing.T) {
	accepted := []string{"10/10/1990", "29/02/2020", "31/12/1999", "01/01/2000"}
	for _, dob := range accepted {
		p := validPerson()
		p.DateOfBirth = dob
		assert.NoError(t, ValidatePerson(p), "expected %q to be accepted", dob)
	}

	rejected := []string{
		"30/02/2020",  // overflowing day
		"29/02/2019",  // not a leap year
		"31/04/2020",  // April has 30 days
		"10/10/90",    // two-digit year
		"1/1/2000",    // single-digit day and month
		"10/13/2000",  // month out of range
		"2000-10-10",  // ISO layout
		"10/10/2000 ", // trailing text
		"10/10/19900", // five-digit year
		"not a date",
	}
	for _, dob := range rejected {
		p := validPerson()
		p.DateOfBirth = dob
		assertKindError(t, ValidatePerson(p), shared.ErrMalformedInput, "Person's date of birth must be in dd/MM/yyyy format")
	}
}

func TestValidateIdentifier(t *testing.T) {
	assertKindError(t, ValidateIdentifier(""), shared.ErrMissingValue, "Id cannot be null")
	assert.NoError(t, ValidateIdentifier("6f1c6a52-6a4c-4a55-9d0c-3b1f1b8e2a10"))
	assert.NoError(t, ValidateIdentifier("123456"), "shape checks belong to the storage port")
}
