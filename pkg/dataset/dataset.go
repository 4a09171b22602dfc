// Package dataset decides which fixture files a test loads and holds the
// tabular data parsed from them.
//
// The file naming convention is "<Type>[.<Method>]<suffix>.xml". When a
// test names its files explicitly, all of them are loaded in the given
// order. Otherwise a method-level file is preferred, and the class-level
// file is required when there is no method-level one.
package dataset

// Source is a located dataset file that is not parsed yet.
type Source struct {
	// Name is the file name as requested or derived from the identity.
	Name string

	// Path is the location of the file for the Builder.
	Path string
}

// Request describes datasets requested by a test.
type Request struct {
	ID Identity

	// Suffix distinguishes setup from verify datasets.
	Suffix string

	// Names are explicitly requested file names. When empty, default names
	// are derived from ID and Suffix.
	Names []string
}

// Locator finds dataset files for a test identity.
type Locator interface {
	// MustResolve returns the source of a file name or DataSetNotFoundError.
	MustResolve(id Identity, fileName string) (Source, error)

	// ResolveIfPresent returns the source of a file name and true, or false
	// if the file does not exist.
	ResolveIfPresent(id Identity, fileName string) (Source, bool)
}

// Builder parses sources into one DataSet. Sources are read in order.
type Builder interface {
	Build(sources []Source) (*DataSet, error)
}

// DataSet is the data of tables in the order they first appear in the
// sources.
type DataSet struct {
	Tables []*Table
}

// Table is a named list of rows.
type Table struct {
	Name string
	Rows []Row
}

// Row keeps columns in document order.
type Row struct {
	Columns []Column
}

// Column is a named value.
type Column struct {
	Name  string
	Value string
}

// Table returns a table by name, or nil.
func (ds *DataSet) Table(name string) *Table {
	for _, v := range ds.Tables {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// RowsNum returns the number of rows in all tables.
func (ds *DataSet) RowsNum() int {
	var res int
	for _, v := range ds.Tables {
		res += len(v.Rows)
	}
	return res
}

// Value returns the value of a column and true, or false if the row has
// no such column.
func (r Row) Value(column string) (string, bool) {
	for _, v := range r.Columns {
		if v.Name == column {
			return v.Value, true
		}
	}
	return "", false
}
