// Package profile loads named sets of properties.
//
// The default profile has an empty name and comes from the default
// properties resource. Every key "profile.<name>" of the default
// properties declares a profile whose properties are loaded from the
// resource named by the value. Profiles never inherit default entries.
package profile

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

const (
	// Default is the name of the default profile.
	Default = ""

	// Prefix starts keys that declare profiles.
	Prefix = "profile."
)

// Properties maps property keys to values.
type Properties map[string]string

// Index maps profile names to their properties. It always contains the
// Default profile.
type Index map[string]Properties

// Names returns profile names in sorted order, the Default profile first.
func (idx Index) Names() []string {
	return slices.Sorted(maps.Keys(idx))
}

// Get returns the properties of a profile or ProfileNotFoundError.
func (idx Index) Get(name string) (Properties, error) {
	res, ok := idx[name]
	if !ok {
		return nil, ProfileNotFoundError(name)
	}
	return res, nil
}

// Declared returns profile names and resource names declared by
// "profile.<name>" keys of the properties, sorted by profile name.
func (p Properties) Declared() [][2]string {
	var res [][2]string
	for _, k := range slices.Sorted(maps.Keys(p)) {
		name, ok := strings.CutPrefix(k, Prefix)
		if !ok {
			continue
		}
		if name == Default {
			gn.Warn("Property <em>%s</em> does not name a profile, ignoring", k)
			continue
		}
		res = append(res, [2]string{name, p[k]})
	}
	return res
}

// Finder opens named resources. Every call must read the resource anew.
type Finder interface {
	// Find returns the content of a resource and true, or false if the
	// resource does not exist. The error is not nil if the resource exists
	// but cannot be opened.
	Find(name string) (io.ReadCloser, bool, error)
}

// Parser converts resource content to Properties.
type Parser func(io.Reader) (Properties, error)

// Store loads profile indexes.
type Store interface {
	Load(resourceName string) (Index, error)
}

// Load reads the default properties from resourceName and every profile
// they declare. It fails with PropertiesNotFoundError or
// PropertiesUnreadableError.
func Load(f Finder, parse Parser, resourceName string) (Index, error) {
	def, err := read(f, parse, resourceName)
	if err != nil {
		return nil, err
	}

	res := Index{Default: def}
	for _, v := range def.Declared() {
		name, resource := v[0], v[1]
		props, err := read(f, parse, resource)
		if err != nil {
			return nil, err
		}
		res[name] = props
	}

	slog.Info("Loaded profiles",
		"resource", resourceName,
		"profiles", len(res)-1,
	)
	return res, nil
}

func read(f Finder, parse Parser, name string) (Properties, error) {
	rc, ok, err := f.Find(name)
	if err != nil {
		return nil, PropertiesUnreadableError(name, err)
	}
	if !ok {
		return nil, PropertiesNotFoundError(name)
	}
	defer rc.Close()

	res, err := parse(rc)
	if err != nil {
		return nil, PropertiesUnreadableError(name, err)
	}
	if res == nil {
		res = Properties{}
	}
	return res, nil
}
