// Package fixture is the entry point for tests that need database
// fixtures. A Fixture is created once per test run, usually in TestMain,
// and SetupT loads the datasets named after the running test.
//
//	var fx *fixture.Fixture
//
//	func TestMain(m *testing.M) {
//		var err error
//		fx, err = fixture.New(config.New())
//		if err != nil {
//			log.Fatal(err)
//		}
//		code := m.Run()
//		fx.Close()
//		os.Exit(code)
//	}
//
//	func TestFindPerson(t *testing.T) {
//		fixture.SetupT(t, fx, profile.Default)
//		...
//	}
//
// TestFindPerson uses testdata/TestFindPerson.xml, its subtest
// TestFindPerson/by_name uses testdata/TestFindPerson.by_name.xml when that
// file exists.
package fixture

import (
	"context"
	"testing"

	"github.com/gnames/gnfixture/internal/iofixture"
	"github.com/gnames/gnfixture/pkg/config"
	"github.com/gnames/gnfixture/pkg/dataset"
	"github.com/gnames/gnfixture/pkg/lifecycle"
)

// Fixture is a lifecycle.Fixture that knows the dataset suffixes of the
// configuration.
type Fixture struct {
	lifecycle.Fixture
	cfg *config.Config
}

// New creates a Fixture for the configuration. Profile properties are
// read from cfg.Fixture.ResourceDirs, datasets from cfg.Fixture.DataDir.
func New(cfg *config.Config) (*Fixture, error) {
	return NewWith(cfg, nil)
}

// NewWith wraps an existing lifecycle.Fixture. If fx is nil a default one
// is created from the configuration.
func NewWith(cfg *config.Config, fx lifecycle.Fixture) (*Fixture, error) {
	if fx == nil {
		res, err := iofixture.New(cfg)
		if err != nil {
			return nil, err
		}
		fx = res
	}
	return &Fixture{Fixture: fx, cfg: cfg}, nil
}

// SetupRequest creates a request for the setup dataset of a test.
// The test name is a Go test name, for example "TestFind/by_name".
func (f *Fixture) SetupRequest(testName string, names ...string) dataset.Request {
	return f.request(testName, f.cfg.Fixture.SetupSuffix, names)
}

// VerifyRequest creates a request for the dataset that describes the
// expected state after a test.
func (f *Fixture) VerifyRequest(testName string, names ...string) dataset.Request {
	return f.request(testName, f.cfg.Fixture.VerifySuffix, names)
}

func (f *Fixture) request(
	testName, suffix string,
	names []string,
) dataset.Request {
	return dataset.Request{
		ID:     dataset.IdentityFromTestName("", testName),
		Suffix: suffix,
		Names:  names,
	}
}

// SetupT loads datasets for the running test into the database of the
// profile. Without names the datasets are found by the test name. Any
// failure stops the test.
func SetupT(
	t testing.TB,
	fx *Fixture,
	profileName string,
	names ...string,
) *dataset.DataSet {
	t.Helper()

	ds, err := fx.Setup(
		context.Background(),
		profileName,
		fx.SetupRequest(t.Name(), names...),
	)
	if err != nil {
		t.Fatalf("cannot set up fixture for %s: %v", t.Name(), err)
	}
	return ds
}
