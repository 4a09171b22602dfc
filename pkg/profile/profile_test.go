package profile_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/pkg/config"
	"github.com/gnames/gnfixture/pkg/errcode"
	"github.com/gnames/gnfixture/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapFinder serves resources from a map. A resource with nil content
// cannot be opened.
type mapFinder struct {
	files map[string]*string
	found []string
}

func (f *mapFinder) Find(name string) (io.ReadCloser, bool, error) {
	f.found = append(f.found, name)
	content, ok := f.files[name]
	if !ok {
		return nil, false, nil
	}
	if content == nil {
		return nil, true, errors.New("permission denied")
	}
	return io.NopCloser(strings.NewReader(*content)), true, nil
}

// parseLines reads "key=value" lines.
func parseLines(r io.Reader) (profile.Properties, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	res := make(profile.Properties)
	for _, line := range strings.Split(string(bs), "\n") {
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return nil, errors.New("bad line: " + line)
		}
		res[k] = v
	}
	return res, nil
}

func ptr(s string) *string { return &s }

func TestLoad(t *testing.T) {
	f := &mapFinder{files: map[string]*string{
		"a.properties": ptr("k=v\nprofile.x=b.properties\n"),
		"b.properties": ptr("k=w\n"),
	}}

	idx, err := profile.Load(f, parseLines, "a.properties")
	require.NoError(t, err)

	assert.Equal(t, profile.Index{
		"":  {"k": "v", "profile.x": "b.properties"},
		"x": {"k": "w"},
	}, idx)
	assert.Equal(t, []string{"", "x"}, idx.Names())
}

func TestLoadNoMerge(t *testing.T) {
	f := &mapFinder{files: map[string]*string{
		"default.properties": ptr("shared=1\nprofile.h2=h2.properties\n" +
			"profile.pg=pg.properties\n"),
		"h2.properties": ptr("own=h2\n"),
		"pg.properties": ptr(""),
	}}

	idx, err := profile.Load(f, parseLines, "default.properties")
	require.NoError(t, err)
	assert.Len(t, idx, 3)
	assert.Equal(t, profile.Properties{"own": "h2"}, idx["h2"])
	assert.Equal(t, profile.Properties{}, idx["pg"])
	_, ok := idx["h2"]["shared"]
	assert.False(t, ok, "profiles do not inherit default entries")
}

func TestLoadEmptyDefault(t *testing.T) {
	f := &mapFinder{files: map[string]*string{"a.properties": ptr("")}}

	idx, err := profile.Load(f, parseLines, "a.properties")
	require.NoError(t, err)
	assert.Equal(t, profile.Index{"": {}}, idx)
}

func TestLoadRereads(t *testing.T) {
	content := "k=v\n"
	f := &mapFinder{files: map[string]*string{"a.properties": &content}}

	idx, err := profile.Load(f, parseLines, "a.properties")
	require.NoError(t, err)
	assert.Equal(t, "v", idx[""]["k"])

	content = "k=changed\n"
	idx, err = profile.Load(f, parseLines, "a.properties")
	require.NoError(t, err)
	assert.Equal(t, "changed", idx[""]["k"])
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]*string
		code     gn.ErrorCode
		resource string
	}{
		{
			name:     "default not found",
			files:    map[string]*string{},
			code:     errcode.PropertiesNotFoundError,
			resource: "a.properties",
		},
		{
			name: "profile not found",
			files: map[string]*string{
				"a.properties": ptr("profile.x=missing.properties\n"),
			},
			code:     errcode.PropertiesNotFoundError,
			resource: "missing.properties",
		},
		{
			name:     "cannot open",
			files:    map[string]*string{"a.properties": nil},
			code:     errcode.PropertiesUnreadableError,
			resource: "a.properties",
		},
		{
			name:     "cannot parse",
			files:    map[string]*string{"a.properties": ptr("garbage\n")},
			code:     errcode.PropertiesUnreadableError,
			resource: "a.properties",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &mapFinder{files: tt.files}
			idx, err := profile.Load(f, parseLines, "a.properties")
			assert.Nil(t, idx)

			var gnErr *gn.Error
			require.ErrorAs(t, err, &gnErr)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Equal(t, tt.resource, gnErr.Vars[0])
		})
	}
}

func TestDeclared(t *testing.T) {
	p := profile.Properties{
		"profile.b": "b.properties",
		"profile.a": "a.properties",
		"profile.":  "ignored.properties",
		"profiles":  "not a declaration",
		"k":         "v",
	}
	assert.Equal(t, [][2]string{
		{"a", "a.properties"},
		{"b", "b.properties"},
	}, p.Declared())
}

func TestIndexGet(t *testing.T) {
	idx := profile.Index{"": {}, "x": {"k": "w"}}

	p, err := idx.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "w", p["k"])

	_, err = idx.Get("y")
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.ProfileNotFoundError, gnErr.Code)
}

func TestToOptions(t *testing.T) {
	p := profile.Properties{
		profile.KeyDialect:   "sqlite",
		profile.KeyURL:       "/tmp/fixture.db",
		profile.KeyHost:      "db.local",
		profile.KeyPort:      "6543",
		profile.KeyUser:      "tester",
		profile.KeyPassword:  "secret",
		profile.KeyDatabase:  "people",
		profile.KeySSLMode:   "require",
		profile.KeySchema:    "fixtures",
		profile.KeyBatchSize: "50",
		"unrelated":          "value",
	}

	cfg := config.New()
	cfg.Update(p.ToOptions())

	assert.Equal(t, config.DatabaseConfig{
		Dialect:   "sqlite",
		URL:       "/tmp/fixture.db",
		Host:      "db.local",
		Port:      6543,
		User:      "tester",
		Password:  "secret",
		Database:  "people",
		SSLMode:   "require",
		Schema:    "fixtures",
		BatchSize: 50,
	}, cfg.Database)
}

func TestToOptionsBadValues(t *testing.T) {
	p := profile.Properties{
		profile.KeyPort: "not-a-port",
		profile.KeyHost: "  ",
	}
	opts := p.ToOptions()
	assert.Empty(t, opts)

	cfg := config.New()
	cfg.Update(opts)
	assert.Equal(t, config.New().Database, cfg.Database)
}
