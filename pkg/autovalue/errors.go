package autovalue

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/pkg/errcode"
)

// UnsupportedDataTypeError is returned when a column type has no
// synthesis rule.
func UnsupportedDataTypeError(typeName string) error {
	msg := "Data type <em>%s</em> is not supported for auto values"
	vars := []any{typeName}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnsupportedDataTypeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unsupported data type %q",
			fn.Name(), typeName),
	}
}
