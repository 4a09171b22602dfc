// Package lifecycle defines the contract of one test-run fixture
// lifecycle. A Fixture loads profiles once, keeps one auto value engine
// and a database connection per profile until Close.
package lifecycle

import (
	"context"

	"github.com/gnames/gnfixture/pkg/dataset"
	"github.com/gnames/gnfixture/pkg/profile"
	"gorm.io/gorm"
)

// Fixture sets up database content for tests from dataset files.
// Setup calls of one Fixture are expected to come from one goroutine at
// a time, the way test lifecycles run.
type Fixture interface {
	// Profiles returns the profile index loaded at creation.
	Profiles() profile.Index

	// Sources resolves dataset sources of a request without loading them.
	Sources(req dataset.Request) ([]dataset.Source, error)

	// Setup loads the dataset of a request and writes it to the database
	// of the profile. Existing rows of the dataset tables are removed.
	Setup(
		ctx context.Context,
		profileName string,
		req dataset.Request,
	) (*dataset.DataSet, error)

	// DB returns a connection to the database of the profile, opening it
	// if needed.
	DB(ctx context.Context, profileName string) (*gorm.DB, error)

	// Reset starts a new run: auto value row counters start from zero.
	Reset()

	// Close releases database connections of all profiles.
	Close() error
}
