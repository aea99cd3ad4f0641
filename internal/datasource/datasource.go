// Package datasource loads bar series from parquet and CSV files through DuckDB.
package datasource

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
)

// Format is a supported bar file format.
type Format string

const (
	FormatParquet Format = "parquet"
	FormatCSV     Format = "csv"
)

// FormatFromPath infers the file format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FormatParquet, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", errors.Newf(errors.ErrCodeUnsupportedFormat, "unsupported bar file %q: expected .parquet or .csv", path)
	}
}

// Query selects bars from a data source. The zero value selects everything.
type Query struct {
	// Symbol restricts the result to one symbol
	Symbol optional.Option[string]
	// Start is the inclusive lower time bound
	Start optional.Option[time.Time]
	// End is the inclusive upper time bound
	End optional.Option[time.Time]
	// Limit keeps only the most recent Limit bars when positive
	Limit int
}

type DataSource interface {
	// Initialize points the data source at a parquet or CSV file of bars.
	// The file must carry the columns time, symbol, open, high, low, close and volume.
	Initialize(path string) error
	// ReadBars returns the bars matching q, oldest first.
	ReadBars(q Query) ([]types.PriceBar, error)
	// Count returns the number of bars matching q, ignoring q.Limit.
	Count(q Query) (int, error)
	// Symbols returns the distinct symbols in the data, sorted.
	Symbols() ([]string, error)
	// Close closes the data source and releases any resources
	Close() error
}
