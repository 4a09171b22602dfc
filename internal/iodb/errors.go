package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/pkg/errcode"
	"github.com/gnames/gnlib"
)

// ConnectionError is returned when database connection fails. Its user
// message explains how to check the connection settings.
type ConnectionError struct {
	error
	gnlib.MessageBase
}

// NewConnectionError creates a connection error for the database
// configuration.
func NewConnectionError(
	dialect, host string,
	port int,
	database, user string,
	cause error,
) error {
	userBase := gnlib.NewMessage(
		`<title>Database Connection Failed</title>

<warning>Could not connect to %s database.</warning>

<em>Possible causes:</em>
  • Database server is not running
  • Profile properties or config.yaml settings are incorrect

<em>How to fix:</em>
  1. Check profile properties (<em>database.*</em> keys)
  2. Check your configuration file:
     <em>~/.config/gnfixture/config.yaml</em>

  3. Review connection settings:
     Host: %s
     Port: %d
     Database: %s
     User: %s
`,
		[]any{dialect, host, port, database, user},
	)

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return ConnectionError{
		error: &gn.Error{
			Code: errcode.DBConnectionError,
			Msg:  "Cannot connect to <em>%s</em> database <em>%s</em>",
			Vars: []any{dialect, database},
			Err: fmt.Errorf("from %s: failed to connect to %s:%d/%s: %w",
				fn.Name(), host, port, database, cause),
		},
		MessageBase: userBase,
	}
}

// Unwrap returns the underlying *gn.Error.
func (e ConnectionError) Unwrap() error {
	return e.error
}

func UnsupportedDialectError(dialect string) error {
	msg := "Database dialect <em>%s</em> is not supported"
	vars := []any{dialect}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBUnsupportedDialectError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unsupported dialect %q", fn.Name(), dialect),
	}
}

func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: database is not connected", fn.Name()),
	}
}

func ColumnTypesError(table string, err error) error {
	msg := "Cannot read column types of table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBColumnTypesError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read column types of %s: %w",
			fn.Name(), table, err),
	}
}

func CleanInsertError(table string, err error) error {
	msg := "Cannot insert data set rows into table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBCleanInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: clean insert into %s failed: %w",
			fn.Name(), table, err),
	}
}
