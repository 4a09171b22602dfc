package ioresource

import (
	"path/filepath"
	"strings"

	"github.com/gnames/gnfixture/pkg/dataset"
	"github.com/spf13/afero"
)

type locator struct {
	fs   afero.Fs
	root string
}

// NewLocator creates a dataset.Locator for files under root. A file name
// is resolved relative to the Package of the test identity. A name that
// starts with "/" is resolved relative to root.
func NewLocator(fsys afero.Fs, root string) dataset.Locator {
	return &locator{fs: fsys, root: root}
}

func (l *locator) MustResolve(
	id dataset.Identity,
	fileName string,
) (dataset.Source, error) {
	res, ok := l.ResolveIfPresent(id, fileName)
	if !ok {
		return dataset.Source{}, dataset.DataSetNotFoundError(
			id, fileName, l.path(id, fileName),
		)
	}
	return res, nil
}

func (l *locator) ResolveIfPresent(
	id dataset.Identity,
	fileName string,
) (dataset.Source, bool) {
	path := l.path(id, fileName)
	info, err := l.fs.Stat(path)
	if err != nil || info.IsDir() {
		return dataset.Source{}, false
	}
	return dataset.Source{Name: fileName, Path: path}, true
}

func (l *locator) path(id dataset.Identity, fileName string) string {
	if rel, ok := strings.CutPrefix(fileName, "/"); ok {
		return filepath.Join(l.root, filepath.FromSlash(rel))
	}
	return filepath.Join(
		l.root,
		filepath.FromSlash(id.Package),
		filepath.FromSlash(fileName),
	)
}
