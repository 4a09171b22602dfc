package profile

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/pkg/errcode"
)

// PropertiesNotFoundError is returned when a properties resource does not
// exist on the lookup path.
func PropertiesNotFoundError(name string) error {
	msg := "Properties not found: <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PropertiesNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: properties not found: %s", fn.Name(), name),
	}
}

// PropertiesUnreadableError is returned when a properties resource exists
// but cannot be read to completion.
func PropertiesUnreadableError(name string, err error) error {
	msg := "Properties file unreadable: <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PropertiesUnreadableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: properties file unreadable: %s: %w",
			fn.Name(), name, err),
	}
}

// ProfileNotFoundError is returned when a profile is not declared in the
// default properties.
func ProfileNotFoundError(name string) error {
	msg := "Profile <em>%s</em> is not declared"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ProfileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: profile %q is not declared", fn.Name(), name),
	}
}
