package dataset

import (
	"strings"
)

// Extension of dataset files.
const Extension = ".xml"

// Identity identifies the test a dataset belongs to.
type Identity struct {
	// Package is the directory of the test's datasets, relative to the
	// data root. It may be empty.
	Package string

	// Type is the owner of the test method. For Go tests it is the name of
	// the top-level test function.
	Type string

	// Method is the test method. For Go tests it is the subtest path with
	// "/" replaced by ".". Empty when the test has no subtests.
	Method string
}

// String returns "Type.Method", or just "Type" when Method is empty.
func (id Identity) String() string {
	if id.Method == "" {
		return id.Type
	}
	return id.Type + "." + id.Method
}

// MethodFileName returns "<Type>.<Method><suffix>.xml".
// It returns an empty string if the identity has no method.
func (id Identity) MethodFileName(suffix string) string {
	if id.Method == "" {
		return ""
	}
	return id.Type + "." + id.Method + suffix + Extension
}

// ClassFileName returns "<Type><suffix>.xml".
func (id Identity) ClassFileName(suffix string) string {
	return id.Type + suffix + Extension
}

// IdentityFromTestName creates Identity from the package directory and a
// Go test name as returned by testing.T.Name(). The first path element
// is the type, the rest joined by "." is the method:
//
//	TestPerson            -> Type "TestPerson", Method ""
//	TestPerson/insert     -> Type "TestPerson", Method "insert"
//	TestPerson/insert/one -> Type "TestPerson", Method "insert.one"
func IdentityFromTestName(pkg, name string) Identity {
	parts := strings.Split(name, "/")
	res := Identity{Package: pkg, Type: parts[0]}
	if len(parts) > 1 {
		res.Method = strings.Join(parts[1:], ".")
	}
	return res
}
