package constants

import (
	"os"
	"strconv"
)

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func GetPort() int {
	return getInt("FRETDEX_PORT", 8080)
}

func GetMaxFret() int {
	return getInt("FRETDEX_MAX_FRET", DefaultFrets)
}

// GetCatalogPath is "" when no instrument catalog file is configured.
func GetCatalogPath() string {
	return os.Getenv("FRETDEX_CATALOG_PATH")
}

func GetDynamoEndpoint() string {
	return os.Getenv("FRETDEX_DYNAMO_ENDPOINT")
}

func GetDynamoTable() string {
	table := os.Getenv("FRETDEX_DYNAMO_TABLE")
	if table != "" {
		return table
	}
	return "fretdex-instruments"
}

func GetDynamoRegion() string {
	region := os.Getenv("FRETDEX_DYNAMO_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

const DefaultFrets = 20

const DefaultInstrument = "Guitar (Standard)"

// NOTE: patterns shorter than this are discarded
const MinPatternLength = 5

const MaxPatternLength = 7

// how long the catalog watcher waits for writes to settle
const CatalogDebounceMillis = 250

// Upper bounds on a board. Voicing searches grow with the cube of the
// matching positions, so requests beyond these are rejected.
const (
	MaxFrets    = 30
	MaxStrings  = 12
	MaxGridRows = 16
	MaxGridCols = 32
)
