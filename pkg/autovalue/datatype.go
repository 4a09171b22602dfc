package autovalue

import (
	"strings"
)

// DataType is the declared type of a column that receives auto values.
type DataType int

const (
	Unknown DataType = iota

	// integral
	SmallInt
	Integer
	BigInt

	// fractional
	Decimal
	Numeric
	Real
	Double

	Boolean

	// character and large text
	Char
	Varchar
	LongVarchar
	NChar
	NVarchar
	Clob
	NClob

	// binary and large binary
	Binary
	Varbinary
	LongVarbinary
	Blob

	// temporal
	Date
	Time
	Timestamp

	// types that are recognized but have no synthesis rule
	Array
	Struct
	Other
)

var typeNames = map[DataType]string{
	Unknown:       "UNKNOWN",
	SmallInt:      "SMALLINT",
	Integer:       "INTEGER",
	BigInt:        "BIGINT",
	Decimal:       "DECIMAL",
	Numeric:       "NUMERIC",
	Real:          "REAL",
	Double:        "DOUBLE",
	Boolean:       "BOOLEAN",
	Char:          "CHAR",
	Varchar:       "VARCHAR",
	LongVarchar:   "LONGVARCHAR",
	NChar:         "NCHAR",
	NVarchar:      "NVARCHAR",
	Clob:          "CLOB",
	NClob:         "NCLOB",
	Binary:        "BINARY",
	Varbinary:     "VARBINARY",
	LongVarbinary: "LONGVARBINARY",
	Blob:          "BLOB",
	Date:          "DATE",
	Time:          "TIME",
	Timestamp:     "TIMESTAMP",
	Array:         "ARRAY",
	Struct:        "STRUCT",
	Other:         "OTHER",
}

// String returns the SQL-like name of the data type.
func (d DataType) String() string {
	if res, ok := typeNames[d]; ok {
		return res
	}
	return typeNames[Unknown]
}

// catalogNames maps lower-cased database catalog type names to DataType.
// Names are collected from PostgreSQL, SQLite and the ANSI types.
var catalogNames = map[string]DataType{
	"smallint": SmallInt,
	"int2":     SmallInt,
	"tinyint":  SmallInt,

	"integer":   Integer,
	"int":       Integer,
	"int4":      Integer,
	"mediumint": Integer,
	"serial":    Integer,

	"bigint":    BigInt,
	"int8":      BigInt,
	"bigserial": BigInt,

	"decimal": Decimal,
	"numeric": Numeric,
	"real":    Real,
	"float4":  Real,
	"float":   Double,
	"float8":  Double,
	"double":  Double,

	"double precision": Double,

	"boolean": Boolean,
	"bool":    Boolean,

	"char":      Char,
	"character": Char,
	"bpchar":    Char,
	"nchar":     NChar,
	"varchar":   Varchar,
	"nvarchar":  NVarchar,
	"text":      Clob,
	"clob":      Clob,
	"nclob":     NClob,
	"citext":    Clob,

	"character varying": Varchar,
	"longvarchar":       LongVarchar,

	"binary":        Binary,
	"varbinary":     Varbinary,
	"longvarbinary": LongVarbinary,
	"blob":          Blob,
	"bytea":         Blob,

	"date":        Date,
	"time":        Time,
	"timetz":      Time,
	"timestamp":   Timestamp,
	"timestamptz": Timestamp,
	"datetime":    Timestamp,

	"time without time zone":      Time,
	"time with time zone":         Time,
	"timestamp without time zone": Timestamp,
	"timestamp with time zone":    Timestamp,

	"array":  Array,
	"struct": Struct,
	"json":   Other,
	"jsonb":  Other,
	"uuid":   Other,
	"xml":    Other,
}

// ParseDataType converts a database catalog type name to DataType.
// The name is case-insensitive, and length or precision in parentheses
// is ignored, so "VARCHAR(255)" and "numeric(10, 2)" are accepted.
// Unknown names return UnsupportedDataTypeError.
func ParseDataType(name string) (DataType, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if idx := strings.Index(s, "("); idx > -1 {
		end := strings.LastIndex(s, ")")
		if end > idx {
			s = s[:idx] + s[end+1:]
		} else {
			s = s[:idx]
		}
	}
	s = strings.Join(strings.Fields(s), " ")
	if strings.HasSuffix(s, "[]") {
		return Array, nil
	}
	if res, ok := catalogNames[s]; ok {
		return res, nil
	}
	return Unknown, UnsupportedDataTypeError(name)
}
