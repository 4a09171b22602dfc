package ioprofile_test

import (
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/internal/ioprofile"
	"github.com/gnames/gnfixture/pkg/errcode"
	"github.com/gnames/gnfixture/pkg/profile"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `# connection
! legacy comment
database.dialect=sqlite
database.connectionUrl=/tmp/fixture.db
database.port = 5433
database.userName sa
database.password: ${SECRET}
profile.h2=h2.properties
profile.h2-mem=h2-mem.properties
database.schemaName=a\
  b
`
	res, err := ioprofile.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, profile.Properties{
		"database.dialect":       "sqlite",
		"database.connectionUrl": "/tmp/fixture.db",
		"database.port":          "5433",
		"database.userName":      "sa",
		"database.password":      "${SECRET}",
		"profile.h2":             "h2.properties",
		"profile.h2-mem":         "h2-mem.properties",
		"database.schemaName":    "ab",
	}, res)
}

func TestStoreLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/conf/a.properties",
		[]byte("k=v\nprofile.x-y=b.properties\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/testdata/b.properties",
		[]byte("k=w\n"), 0644))

	s := ioprofile.NewFromDirs(fs, []string{"/conf", "/testdata"})
	idx, err := s.Load("a.properties")
	require.NoError(t, err)
	assert.Equal(t, profile.Index{
		"":    {"k": "v", "profile.x-y": "b.properties"},
		"x-y": {"k": "w"},
	}, idx)
}

func TestStoreLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/conf/bad.properties",
		[]byte("k=\\uZZZZ\n"), 0644))

	s := ioprofile.NewFromDirs(fs, []string{"/conf"})

	_, err := s.Load("missing.properties")
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.PropertiesNotFoundError, gnErr.Code)

	_, err = s.Load("bad.properties")
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.PropertiesUnreadableError, gnErr.Code)
	assert.Equal(t, "bad.properties", gnErr.Vars[0])
}
