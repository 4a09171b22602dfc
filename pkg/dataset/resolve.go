package dataset

import (
	"errors"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/pkg/errcode"
)

// Resolve returns the ordered sources of a request.
//
// Explicit names are resolved in order, and the first missing name
// aborts resolution. Without explicit names the method-level file is
// used if it exists. Otherwise the class-level file is used, and its
// absence is an error.
func Resolve(loc Locator, req Request) ([]Source, error) {
	if len(req.Names) > 0 {
		res := make([]Source, 0, len(req.Names))
		for _, v := range req.Names {
			src, err := loc.MustResolve(req.ID, v)
			if err != nil {
				return nil, err
			}
			res = append(res, src)
		}
		logSources(req, res)
		return res, nil
	}

	if name := req.ID.MethodFileName(req.Suffix); name != "" {
		if src, ok := loc.ResolveIfPresent(req.ID, name); ok {
			res := []Source{src}
			logSources(req, res)
			return res, nil
		}
	}

	src, err := loc.MustResolve(req.ID, req.ID.ClassFileName(req.Suffix))
	if err != nil {
		return nil, err
	}
	res := []Source{src}
	logSources(req, res)
	return res, nil
}

// Load resolves the request and builds one DataSet from all its sources.
//
// A build failure is returned as IllegalDataSetContentError naming the
// explicit file names, or the resolved default name. Unsupported data type
// errors are returned as is.
func Load(loc Locator, b Builder, req Request) (*DataSet, error) {
	sources, err := Resolve(loc, req)
	if err != nil {
		return nil, err
	}

	res, err := b.Build(sources)
	if err == nil {
		return res, nil
	}

	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Code == errcode.UnsupportedDataTypeError {
		return nil, err
	}

	names := req.Names
	if len(names) == 0 {
		names = make([]string, len(sources))
		for i := range sources {
			names[i] = sources[i].Name
		}
	}
	return nil, IllegalDataSetContentError(names, err)
}

func logSources(req Request, sources []Source) {
	paths := make([]string, len(sources))
	for i := range sources {
		paths[i] = sources[i].Path
	}
	slog.Debug("Resolved data sets",
		"test", req.ID.String(),
		"suffix", req.Suffix,
		"sources", paths,
	)
}
