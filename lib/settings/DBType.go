package settings

import (
	"fmt"
	"strings"
)

// IDBType selects the DataStore backend wired at startup.
type IDBType string

const (
	SQLITE   IDBType = "sqlite"
	MEMORY   IDBType = "memory"
	POSTGRES IDBType = "postgres"
)

var dbTypes = map[string]IDBType{
	"sqlite":   SQLITE,
	"memory":   MEMORY,
	"postgres": POSTGRES,
}

// ParseDBType maps the configured dbType value to its backend,
// case-insensitively.
func ParseDBType(s string) (IDBType, error) {
	if dbType, ok := dbTypes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return dbType, nil
	}
	return "", fmt.Errorf("unsupported dbType %q (expected sqlite, memory or postgres)", s)
}

func (dbType IDBType) String() string {
	return string(dbType)
}
