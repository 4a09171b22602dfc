package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Properties errors
	PropertiesNotFoundError
	PropertiesUnreadableError
	ProfileNotFoundError

	// Dataset errors
	DataSetNotFoundError
	IllegalDataSetContentError

	// Auto value errors
	UnsupportedDataTypeError

	// Database errors
	DBConnectionError
	DBUnsupportedDialectError
	DBNotConnectedError
	DBColumnTypesError
	DBCleanInsertError
)
