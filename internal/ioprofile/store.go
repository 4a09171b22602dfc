// Package ioprofile loads profile properties from Java style
// .properties files.
package ioprofile

import (
	"io"

	"github.com/gnames/gnfixture/internal/ioresource"
	"github.com/gnames/gnfixture/pkg/profile"
	"github.com/magiconair/properties"
	"github.com/spf13/afero"
)

type store struct {
	finder profile.Finder
}

// New creates a profile.Store that reads resources with the given finder.
func New(f profile.Finder) profile.Store {
	return &store{finder: f}
}

// NewFromDirs creates a profile.Store that looks for resources in dirs of
// the file system.
func NewFromDirs(fsys afero.Fs, dirs []string) profile.Store {
	return New(ioresource.NewFinder(fsys, dirs))
}

// Load implements profile.Store.
func (s *store) Load(resourceName string) (profile.Index, error) {
	return profile.Load(s.finder, Parse, resourceName)
}

// Parse reads a properties file. Keys and values are separated by "=",
// ":" or whitespace, lines starting with "#" or "!" are comments and a
// trailing backslash continues a line. Values are kept verbatim,
// "${...}" references are not expanded.
func Parse(r io.Reader) (profile.Properties, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	l := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	p, err := l.LoadBytes(buf)
	if err != nil {
		return nil, err
	}
	return profile.Properties(p.Map()), nil
}
