// Package files provides file system operations for the export
// reconciliation pipeline.
//
// This package contains three main components:
//
// Discovery: finds .xlsx/.csv source exports in the input directory,
// orders them domestic-first the way the batch pipeline expects, and moves
// ingested files out of the way.
//
// ReadSource: reads one export into raw rows, trying the supported CSV
// text encodings (utf-8, gbk, gb18030, utf-16) before giving up with a
// typed UnreadableSourceError.
//
// LoadSnapshot: reads a previously exported canonical workbook back into a
// PostTable for snapshot comparison, surfacing a SchemaMismatchError when
// the key columns are absent.
package files
