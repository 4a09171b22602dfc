package dataset

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/pkg/errcode"
)

// DataSetNotFoundError is returned when a required dataset file does not
// exist for a test identity.
func DataSetNotFoundError(id Identity, fileName, path string) error {
	msg := "Data set <em>%s</em> not found for <em>%s</em> at <em>%s</em>"
	vars := []any{fileName, id.String(), path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DataSetNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: data set %s not found at %s",
			fn.Name(), fileName, path),
	}
}

// IllegalDataSetContentError wraps a failure to build the data set from
// the named files.
func IllegalDataSetContentError(names []string, err error) error {
	list := strings.Join(names, ", ")
	msg := "Cannot load content of data set [%s]."
	vars := []any{list}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IllegalDataSetContentError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load content of data set [%s]: %w",
			fn.Name(), list, err),
	}
}
