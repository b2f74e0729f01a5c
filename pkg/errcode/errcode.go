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
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Load errors
	LoadInputNotFoundError
	LoadInputReadError
	LoadTimeZonesError
	LoadRegionsError
	LoadArtifactReadError
	LoadArtifactWriteError
	LoadCancelledError

	// Query errors
	QueryNoAirportsError
	QueryAirportNotFoundError
	QueryAmbiguousIATAError
	QueryInvalidCoordinateError
	QueryInvalidIATAError

	// Export errors
	ExportOpenError
	ExportWriteError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError

	// Schema errors
	SchemaGORMConnectionError
	SchemaMigrateError
	SchemaCollationError

	// Publish errors
	PublishTruncateError
	PublishCopyError
	PublishAnalyzeError
)
