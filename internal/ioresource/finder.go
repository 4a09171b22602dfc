// Package ioresource finds properties resources and dataset files on a
// file system. It implements profile.Finder and dataset.Locator.
package ioresource

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/gnames/gnfixture/pkg/profile"
	"github.com/spf13/afero"
)

type finder struct {
	fs   afero.Fs
	dirs []string
}

// NewFinder creates a profile.Finder that looks for resources in dirs.
// The first directory that contains the resource wins. Absolute resource
// names are opened as is.
func NewFinder(fsys afero.Fs, dirs []string) profile.Finder {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	return &finder{fs: fsys, dirs: dirs}
}

// Find opens the resource anew on every call, so changes of the file
// between calls are always visible.
func (f *finder) Find(name string) (io.ReadCloser, bool, error) {
	paths := []string{name}
	if !filepath.IsAbs(name) {
		paths = paths[:0]
		for _, v := range f.dirs {
			paths = append(paths, filepath.Join(v, name))
		}
	}

	for _, path := range paths {
		info, err := f.fs.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, true, err
		}
		if info.IsDir() {
			continue
		}

		file, err := f.fs.Open(path)
		if err != nil {
			return nil, true, err
		}
		slog.Debug("Found resource", "name", name, "path", path)
		return file, true, nil
	}
	return nil, false, nil
}
