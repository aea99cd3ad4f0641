package datasource

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-signal/internal/logger"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
	"go.uber.org/zap"
)

const barsView = "bars"

var barColumns = []string{"time", "symbol", "open", "high", "low", "close", "volume"}

type DuckDBDataSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDataSource opens a DuckDB database at path (":memory:" for an in-memory one).
// This is distinct from Initialize(), which attaches a bar file to the database.
func NewDataSource(path string, log *logger.Logger) (DataSource, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb", err)
	}

	return &DuckDBDataSource{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Initialize implements DataSource.
func (d *DuckDBDataSource) Initialize(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	d.logger.Debug("Initializing DuckDB data source", zap.String("path", path), zap.String("format", string(format)))

	_, err = d.db.Exec(`DROP VIEW IF EXISTS ` + barsView)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to drop existing view", err)
	}

	reader := "read_parquet"
	if format == FormatCSV {
		reader = "read_csv_auto"
	}

	// squirrel has no CREATE VIEW; columns are cast so CSV inference cannot change their types
	query := fmt.Sprintf(`
		CREATE VIEW %s AS
		SELECT
			CAST(time AS TIMESTAMP) AS time,
			CAST(symbol AS VARCHAR) AS symbol,
			CAST(open AS DOUBLE) AS open,
			CAST(high AS DOUBLE) AS high,
			CAST(low AS DOUBLE) AS low,
			CAST(close AS DOUBLE) AS close,
			CAST(volume AS DOUBLE) AS volume
		FROM %s('%s');
	`, barsView, reader, escapeLiteral(path))

	_, err = d.db.Exec(query)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to load bars from %s", path)
	}

	return nil
}

// ReadBars implements DataSource.
func (d *DuckDBDataSource) ReadBars(q Query) ([]types.PriceBar, error) {
	builder := d.filter(d.sq.Select(barColumns...).From(barsView), q)

	if q.Limit > 0 {
		builder = builder.OrderBy("time DESC").Limit(uint64(q.Limit))
	} else {
		builder = builder.OrderBy("time ASC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	d.logger.Debug("Reading bars", zap.String("query", query), zap.Int("limit", q.Limit))

	stmt, err := d.db.Prepare(query)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to prepare query", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query bars", err)
	}
	defer rows.Close()

	result := make([]types.PriceBar, 0, max(q.Limit, 0))

	for rows.Next() {
		var bar types.PriceBar

		err := rows.Scan(&bar.Time, &bar.Symbol, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan row", err)
		}

		result = append(result, bar)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating rows", err)
	}

	if q.Limit > 0 {
		// most recent first from the query, callers expect oldest first
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	return result, nil
}

// Count implements DataSource.
func (d *DuckDBDataSource) Count(q Query) (int, error) {
	query, args, err := d.filter(d.sq.Select("COUNT(*)").From(barsView), q).ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	var count int

	if err := d.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to count bars", err)
	}

	return count, nil
}

// Symbols implements DataSource.
func (d *DuckDBDataSource) Symbols() ([]string, error) {
	query, args, err := d.sq.Select("DISTINCT symbol").From(barsView).OrderBy("symbol").ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to get symbols", err)
	}
	defer rows.Close()

	var symbols []string

	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan symbol", err)
		}

		symbols = append(symbols, symbol)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating symbols", err)
	}

	return symbols, nil
}

// Close implements DataSource.
func (d *DuckDBDataSource) Close() error {
	if d.db != nil {
		return d.db.Close()
	}

	return nil
}

func (d *DuckDBDataSource) filter(builder squirrel.SelectBuilder, q Query) squirrel.SelectBuilder {
	if q.Symbol.IsSome() {
		builder = builder.Where(squirrel.Eq{"symbol": q.Symbol.Unwrap()})
	}

	if q.Start.IsSome() {
		builder = builder.Where(squirrel.GtOrEq{"time": q.Start.Unwrap().UTC()})
	}

	if q.End.IsSome() {
		builder = builder.Where(squirrel.LtOrEq{"time": q.End.Unwrap().UTC()})
	}

	return builder
}

func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
