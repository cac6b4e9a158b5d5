// filepath: internal/initconfig/init.go
package initconfig

import (
	"context"
	"fmt"
	"os"

	"people/internal/logging"
	"people/internal/services"

	"github.com/BurntSushi/toml"
)

// SeedActor is recorded by the auditor for people created from a seed file.
const SeedActor = "seed"

// Run loads the seed file at path and saves every entry through the person service.
// Entries that already exist are skipped; entries the service rejects are logged and counted as failed.
func Run(ctx context.Context, personSvc services.PersonService, path string) (Report, error) {
	logging.Log.Infof("Seed file found at: %s. Processing...", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read seed file '%s': %w", path, err)
	}

	var seed SeedFile
	if _, err := toml.Decode(string(data), &seed); err != nil {
		return Report{}, fmt.Errorf("failed to parse TOML seed file '%s': %w", path, err)
	}

	logging.Log.Infof("Found %d person(s) in seed file.", len(seed.People))

	report := processPeople(services.WithActor(ctx, SeedActor), personSvc, seed.People)
	logging.Log.Infof("Seeding finished: %d created, %d skipped, %d failed.", report.Created, report.Skipped, report.Failed)
	return report, nil
}

// processPeople creates the entries that do not exist yet.
func processPeople(ctx context.Context, personSvc services.PersonService, people []SeedPerson) Report {
	var report Report
	for i, entry := range people {
		if entry.ID != "" {
			existing, err := personSvc.GetPersonByID(ctx, entry.ID)
			if err != nil {
				logging.Log.Errorf("Skipping seed entry %d: %v", i, err)
				report.Failed++
				continue
			}
			if existing != nil {
				logging.Log.Infof("Skipping person: '%s' already exists.", entry.ID)
				report.Skipped++
				continue
			}
		}

		saved, err := personSvc.SavePerson(ctx, entry.Person())
		if err != nil {
			logging.Log.Errorf("Failed to create person from seed entry %d (%s): %v", i, entry.Name, err)
			report.Failed++
			continue
		}
		logging.Log.Infof("Successfully created person: '%s' (%s)", saved.Name, saved.ID)
		report.Created++
	}
	return report
}
