// Package iodataset parses flat XML dataset files.
//
// A flat XML dataset has a root element, conventionally <dataset>, and one
// child element per row. The element name is the table name, attributes
// are columns:
//
//	<dataset>
//	  <person id="1" name="Jane"/>
//	  <person id="2" name="@auto"/>
//	</dataset>
//
// Attribute values equal to the auto marker are replaced by values from
// an autovalue.Engine. The column type comes from a TypeLookup.
package iodataset

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gnames/gnfixture/pkg/autovalue"
	"github.com/gnames/gnfixture/pkg/dataset"
	"github.com/spf13/afero"
)

// TypeLookup returns database type names of the columns of a table.
type TypeLookup func(table string) (map[string]string, error)

type builder struct {
	fs     afero.Fs
	engine *autovalue.Engine
	types  TypeLookup
	marker string
}

// New creates a dataset.Builder that reads files from fsys. The types
// lookup is only called for tables that have auto columns.
func New(
	fsys afero.Fs,
	engine *autovalue.Engine,
	types TypeLookup,
	marker string,
) dataset.Builder {
	return &builder{
		fs:     fsys,
		engine: engine,
		types:  types,
		marker: marker,
	}
}

// build keeps state of one Build call.
type build struct {
	*builder
	ds     *dataset.DataSet
	tables map[string]*dataset.Table
	types  map[string]map[string]string
}

// Build implements dataset.Builder. Rows of the same table from several
// sources are appended in source order.
func (b *builder) Build(sources []dataset.Source) (*dataset.DataSet, error) {
	bd := &build{
		builder: b,
		ds:      &dataset.DataSet{},
		tables:  make(map[string]*dataset.Table),
		types:   make(map[string]map[string]string),
	}
	for _, v := range sources {
		if err := bd.readSource(v); err != nil {
			return nil, err
		}
	}
	slog.Debug("Built data set",
		"sources", len(sources),
		"tables", len(bd.ds.Tables),
		"rows", bd.ds.RowsNum(),
	)
	return bd.ds, nil
}

func (bd *build) readSource(src dataset.Source) error {
	f, err := bd.fs.Open(src.Path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", src.Path, err)
	}
	defer f.Close()

	if err = bd.parse(f); err != nil {
		return fmt.Errorf("cannot parse %s: %w", src.Name, err)
	}
	return nil
}

func (bd *build) parse(r io.Reader) error {
	dec := xml.NewDecoder(r)
	var depth int
	var hasRoot bool
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				if hasRoot {
					return errors.New("more than one root element")
				}
				hasRoot = true
			case 2:
				if err = bd.addRow(t); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unexpected nested element <%s>", t.Name.Local)
			}
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth > 1 && len(strings.TrimSpace(string(t))) > 0 {
				return errors.New("rows cannot contain text")
			}
		}
	}
	if !hasRoot {
		return errors.New("no root element")
	}
	return nil
}

func (bd *build) addRow(el xml.StartElement) error {
	name := el.Name.Local
	tbl, ok := bd.tables[name]
	if !ok {
		tbl = &dataset.Table{Name: name}
		bd.tables[name] = tbl
		bd.ds.Tables = append(bd.ds.Tables, tbl)
	}

	row := dataset.Row{Columns: make([]dataset.Column, 0, len(el.Attr))}
	for _, attr := range el.Attr {
		val := attr.Value
		if val == bd.marker {
			var err error
			val, err = bd.autoValue(name, attr.Name.Local)
			if err != nil {
				return err
			}
		}
		row.Columns = append(row.Columns, dataset.Column{
			Name:  attr.Name.Local,
			Value: val,
		})
	}
	tbl.Rows = append(tbl.Rows, row)
	return nil
}

func (bd *build) autoValue(table, column string) (string, error) {
	types, err := bd.columnTypes(table)
	if err != nil {
		return "", err
	}
	typeName, ok := types[strings.ToLower(column)]
	if !ok {
		return "", fmt.Errorf("unknown column %s.%s", table, column)
	}
	dt, err := autovalue.ParseDataType(typeName)
	if err != nil {
		return "", err
	}
	return bd.engine.Generate(table, column, dt)
}

func (bd *build) columnTypes(table string) (map[string]string, error) {
	if res, ok := bd.types[table]; ok {
		return res, nil
	}
	if bd.builder.types == nil {
		return nil, fmt.Errorf("no column types for auto values of %s", table)
	}
	types, err := bd.builder.types(table)
	if err != nil {
		return nil, err
	}
	res := make(map[string]string, len(types))
	for k, v := range types {
		res[strings.ToLower(k)] = v
	}
	bd.types[table] = res
	return res, nil
}
