// Package iofixture implements lifecycle.Fixture. It ties together
// profile properties, dataset files and database operators for one
// test run.
package iofixture

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gnames/gnfixture/internal/iodataset"
	"github.com/gnames/gnfixture/internal/iodb"
	"github.com/gnames/gnfixture/internal/ioprofile"
	"github.com/gnames/gnfixture/internal/ioresource"
	"github.com/gnames/gnfixture/pkg/autovalue"
	"github.com/gnames/gnfixture/pkg/config"
	"github.com/gnames/gnfixture/pkg/dataset"
	"github.com/gnames/gnfixture/pkg/db"
	"github.com/gnames/gnfixture/pkg/profile"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// Fixture implements lifecycle.Fixture.
type Fixture struct {
	cfg         *config.Config
	fs          afero.Fs
	numbering   autovalue.Numbering
	newOperator func(withProgress bool) db.Operator

	profiles profile.Index
	locator  dataset.Locator
	engine   *autovalue.Engine

	mu    sync.Mutex
	runID string
	ops   map[string]db.Operator
}

// Option configures a Fixture.
type Option func(*Fixture)

// OptFs sets the filesystem for properties and dataset files.
// Default is the OS filesystem.
func OptFs(fsys afero.Fs) Option {
	return func(f *Fixture) {
		f.fs = fsys
	}
}

// OptNumbering sets the auto number strategy of the engine.
func OptNumbering(n autovalue.Numbering) Option {
	return func(f *Fixture) {
		f.numbering = n
	}
}

// OptOperator sets the constructor of database operators.
func OptOperator(fn func(withProgress bool) db.Operator) Option {
	return func(f *Fixture) {
		f.newOperator = fn
	}
}

// New loads the profile index and creates a Fixture. Databases are not
// touched until the first Setup or DB call for a profile.
func New(cfg *config.Config, opts ...Option) (*Fixture, error) {
	res := &Fixture{
		cfg:         cfg,
		fs:          afero.NewOsFs(),
		numbering:   autovalue.DefaultNumbering{},
		newOperator: iodb.NewOperator,
		ops:         make(map[string]db.Operator),
	}
	for _, opt := range opts {
		opt(res)
	}

	store := ioprofile.NewFromDirs(res.fs, cfg.Fixture.ResourceDirs)
	idx, err := store.Load(cfg.Fixture.PropertiesFile)
	if err != nil {
		return nil, err
	}

	res.profiles = idx
	res.locator = ioresource.NewLocator(res.fs, cfg.Fixture.DataDir)
	res.engine = autovalue.New(autovalue.OptNumbering(res.numbering))
	res.Reset()
	return res, nil
}

// Profiles returns the profile index.
func (f *Fixture) Profiles() profile.Index {
	return f.profiles
}

// RunID identifies the current run in logs. It changes on every Reset.
func (f *Fixture) RunID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runID
}

// Sources resolves dataset sources of a request.
func (f *Fixture) Sources(req dataset.Request) ([]dataset.Source, error) {
	return dataset.Resolve(f.locator, req)
}

// Setup loads the dataset of the request and clean-inserts it into the
// database of the profile.
func (f *Fixture) Setup(
	ctx context.Context,
	profileName string,
	req dataset.Request,
) (*dataset.DataSet, error) {
	start := time.Now()
	runID := f.RunID()
	slog.Info("Setting up data set",
		"run", runID,
		"profile", profileName,
		"test", req.ID.String(),
	)

	op, err := f.operator(ctx, profileName)
	if err != nil {
		return nil, err
	}

	types := func(table string) (map[string]string, error) {
		return op.ColumnTypes(ctx, table)
	}
	b := iodataset.New(f.fs, f.engine, types, f.cfg.Fixture.AutoMarker)

	ds, err := dataset.Load(f.locator, b, req)
	if err != nil {
		return nil, err
	}

	if err = op.CleanInsert(ctx, ds); err != nil {
		return nil, err
	}

	slog.Info("Data set is ready",
		"run", runID,
		"profile", profileName,
		"test", req.ID.String(),
		"rows", ds.RowsNum(),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return ds, nil
}

// DB returns the gorm connection of the profile database.
func (f *Fixture) DB(ctx context.Context, profileName string) (*gorm.DB, error) {
	op, err := f.operator(ctx, profileName)
	if err != nil {
		return nil, err
	}
	return op.DB(), nil
}

// Reset clears auto value row counters and starts a new run.
func (f *Fixture) Reset() {
	f.engine.Reset()
	runID := uuid.NewString()

	f.mu.Lock()
	f.runID = runID
	f.mu.Unlock()
	slog.Debug("Fixture run started", "run", runID)
}

// Close closes all opened database connections.
func (f *Fixture) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []error
	for k, op := range f.ops {
		if err := op.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(f.ops, k)
	}
	return errors.Join(errs...)
}

// DatabaseConfig returns the database settings of a profile: the
// application settings updated with the profile properties.
func (f *Fixture) DatabaseConfig(profileName string) (*config.DatabaseConfig, error) {
	props, err := f.profiles.Get(profileName)
	if err != nil {
		return nil, err
	}
	cfg := f.cfg.Copy()
	cfg.Update(props.ToOptions())
	return &cfg.Database, nil
}

func (f *Fixture) operator(
	ctx context.Context,
	profileName string,
) (db.Operator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if op, ok := f.ops[profileName]; ok {
		return op, nil
	}

	dbCfg, err := f.DatabaseConfig(profileName)
	if err != nil {
		return nil, err
	}

	op := f.newOperator(f.cfg.WithProgress)
	if err = op.Connect(ctx, dbCfg); err != nil {
		return nil, err
	}
	f.ops[profileName] = op
	return op, nil
}
