// filepath: internal/initconfig/models.go
package initconfig

import "people/internal/models"

// SeedFile is the root struct for parsing the TOML seed file.
type SeedFile struct {
	People []SeedPerson `toml:"people"`
}

// SeedPerson represents a [[people]] entry. Gender stays a plain string so a bad
// literal rejects only its own entry instead of the whole file.
type SeedPerson struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Weight      *float64 `toml:"weight"`
	Height      *float64 `toml:"height"`
	DateOfBirth string   `toml:"date_of_birth"`
	Gender      string   `toml:"gender"`
}

// Person converts the entry to the domain model.
func (s SeedPerson) Person() *models.Person {
	return &models.Person{
		ID:          s.ID,
		Name:        s.Name,
		Weight:      s.Weight,
		Height:      s.Height,
		DateOfBirth: s.DateOfBirth,
		Gender:      models.Gender(s.Gender),
	}
}

// Report summarizes a seed run.
type Report struct {
	Created int
	Skipped int
	Failed  int
}
