package ioresource_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/internal/ioresource"
	"github.com/gnames/gnfixture/pkg/dataset"
	"github.com/gnames/gnfixture/pkg/errcode"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	err := afero.WriteFile(fs, path, []byte(content), 0644)
	require.NoError(t, err)
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	bs, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(bs)
}

func TestFinderSearchPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/conf/a.properties", "from conf")
	writeFile(t, fs, "/testdata/a.properties", "from testdata")
	writeFile(t, fs, "/testdata/b.properties", "only testdata")

	f := ioresource.NewFinder(fs, []string{"/conf", "/testdata"})

	rc, ok, err := f.Find("a.properties")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "from conf", readAll(t, rc), "first directory wins")

	rc, ok, err = f.Find("b.properties")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "only testdata", readAll(t, rc))

	rc, ok, err = f.Find("/testdata/a.properties")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "from testdata", readAll(t, rc), "absolute names")

	_, ok, err = f.Find("c.properties")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFinderSkipsDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/conf/a.properties", 0755))
	writeFile(t, fs, "/testdata/a.properties", "file")

	f := ioresource.NewFinder(fs, []string{"/conf", "/testdata"})
	rc, ok, err := f.Find("a.properties")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "file", readAll(t, rc))
}

func TestFinderNoCache(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/conf/a.properties", "first")
	f := ioresource.NewFinder(fs, []string{"/conf"})

	rc, _, err := f.Find("a.properties")
	require.NoError(t, err)
	assert.Equal(t, "first", readAll(t, rc))

	writeFile(t, fs, "/conf/a.properties", "second")
	rc, _, err = f.Find("a.properties")
	require.NoError(t, err)
	assert.Equal(t, "second", readAll(t, rc))
}

func TestLocator(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := "/data"
	writeFile(t, fs, filepath.Join(root, "people", "T.m.xml"), "<dataset/>")
	writeFile(t, fs, filepath.Join(root, "shared", "common.xml"), "<dataset/>")
	require.NoError(t, fs.MkdirAll(filepath.Join(root, "people", "dir.xml"), 0755))

	loc := ioresource.NewLocator(fs, root)
	id := dataset.Identity{Package: "people", Type: "T", Method: "m"}

	t.Run("relative to package", func(t *testing.T) {
		src, ok := loc.ResolveIfPresent(id, "T.m.xml")
		require.True(t, ok)
		assert.Equal(t, dataset.Source{
			Name: "T.m.xml",
			Path: filepath.Join(root, "people", "T.m.xml"),
		}, src)
	})

	t.Run("relative to root", func(t *testing.T) {
		src, err := loc.MustResolve(id, "/shared/common.xml")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "shared", "common.xml"), src.Path)
		assert.Equal(t, "/shared/common.xml", src.Name)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := loc.ResolveIfPresent(id, "T.xml")
		assert.False(t, ok)

		_, ok = loc.ResolveIfPresent(id, "dir.xml")
		assert.False(t, ok, "directories are not data sets")
	})

	t.Run("must resolve fails", func(t *testing.T) {
		_, err := loc.MustResolve(id, "T.xml")
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.DataSetNotFoundError, gnErr.Code)
		assert.Equal(t, "T.xml", gnErr.Vars[0])
		assert.Equal(t, filepath.Join(root, "people", "T.xml"), gnErr.Vars[2])
	})
}

func TestResolveWithLocator(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/data/T.xml", "<dataset/>")
	loc := ioresource.NewLocator(fs, "/data")

	id := dataset.IdentityFromTestName("", "T/m")
	res, err := dataset.Resolve(loc, dataset.Request{ID: id})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "T.xml", res[0].Name)
}
