// Package config holds the read-only snapshot of startup configuration that
// CONFIG GET exposes. The field set is closed to what the server actually
// takes on the command line (dir, dbfilename); the snapshot is built once
// at startup and never mutated afterward.
package config

import "github.com/ridgewood-io/respkv/internal/resp"

// Field identifies one of the known CONFIG GET fields.
type Field string

const (
	FieldDir        Field = "dir"
	FieldDBFilename Field = "dbfilename"
)

// Snapshot is the immutable mapping from known config fields to their
// configured value, built once at startup from CLI flags.
type Snapshot struct {
	dir        string
	dbfilename string
	hasDir     bool
	hasDBFile  bool
}

// New builds a Snapshot from the CLI-supplied dir/dbfilename flags. An empty
// string means the field was left unset.
func New(dir, dbfilename string) Snapshot {
	return Snapshot{
		dir:        dir,
		dbfilename: dbfilename,
		hasDir:     dir != "",
		hasDBFile:  dbfilename != "",
	}
}

// Known reports whether field names one of the fields this snapshot serves.
func Known(field string) bool {
	return Field(field) == FieldDir || Field(field) == FieldDBFilename
}

// Get returns the RESP value CONFIG GET should report for field. The caller
// must have already validated field via Known.
func (s Snapshot) Get(field Field) resp.Value {
	switch field {
	case FieldDir:
		if !s.hasDir {
			return resp.NewNullBulkString()
		}
		return resp.NewBulkStringFromString(s.dir)
	case FieldDBFilename:
		if !s.hasDBFile {
			return resp.NewNullBulkString()
		}
		return resp.NewBulkStringFromString(s.dbfilename)
	default:
		return resp.NewNullBulkString()
	}
}
