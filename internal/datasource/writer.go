package datasource

import (
	"database/sql"
	"fmt"

	"github.com/rxtech-lab/argo-signal/internal/logger"
	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/rxtech-lab/argo-signal/pkg/errors"
	"go.uber.org/zap"
)

// BarWriter stages bars in an in-memory DuckDB table and exports them to a
// parquet or CSV file on Finalize.
type BarWriter struct {
	db         *sql.DB
	tx         *sql.Tx
	stmt       *sql.Stmt
	outputPath string
	format     Format
	logger     *logger.Logger
}

// NewBarWriter creates a writer for outputPath. The format follows the file extension.
func NewBarWriter(outputPath string, log *logger.Logger) (*BarWriter, error) {
	format, err := FormatFromPath(outputPath)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &BarWriter{
		outputPath: outputPath,
		format:     format,
		logger:     log,
	}, nil
}

// Initialize opens the staging database and prepares the insert statement.
func (w *BarWriter) Initialize() (err error) {
	w.db, err = sql.Open("duckdb", ":memory:")
	if err != nil {
		return errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb", err)
	}

	_, err = w.db.Exec(`
		CREATE TABLE IF NOT EXISTS bars (
			time TIMESTAMP,
			symbol TEXT,
			open DOUBLE,
			high DOUBLE,
			low DOUBLE,
			close DOUBLE,
			volume DOUBLE
		)
	`)
	if err != nil {
		w.db.Close()

		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to create table", err)
	}

	w.tx, err = w.db.Begin()
	if err != nil {
		w.db.Close()

		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to begin transaction", err)
	}

	w.stmt, err = w.tx.Prepare(`
		INSERT INTO bars (time, symbol, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		w.tx.Rollback()
		w.db.Close()

		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to prepare statement", err)
	}

	return nil
}

// Write stages one bar.
func (w *BarWriter) Write(bar types.PriceBar) error {
	if w.stmt == nil {
		return errors.New(errors.ErrCodeDataSourceUnavailable, "writer not initialized")
	}

	_, err := w.stmt.Exec(bar.Time.UTC(), bar.Symbol, bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to insert bar", err)
	}

	return nil
}

// Finalize commits the staged bars and exports them to the output file.
func (w *BarWriter) Finalize() (string, error) {
	if w.tx == nil {
		return "", errors.New(errors.ErrCodeDataSourceUnavailable, "writer not initialized")
	}

	if err := w.tx.Commit(); err != nil {
		w.tx.Rollback()

		return "", errors.Wrap(errors.ErrCodeQueryFailed, "failed to commit transaction", err)
	}

	w.tx = nil

	options := "FORMAT PARQUET"
	if w.format == FormatCSV {
		options = "FORMAT CSV, HEADER"
	}

	_, err := w.db.Exec(fmt.Sprintf(`COPY (SELECT * FROM bars ORDER BY time) TO '%s' (%s)`, escapeLiteral(w.outputPath), options))
	if err != nil {
		return "", errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to export bars to %s", w.outputPath)
	}

	w.logger.Info("Exported bars", zap.String("path", w.outputPath), zap.String("format", string(w.format)))

	return w.outputPath, nil
}

// Close releases the statement, transaction and database.
func (w *BarWriter) Close() error {
	var closeErr error

	if w.stmt != nil {
		if err := w.stmt.Close(); err != nil {
			closeErr = errors.Wrap(errors.ErrCodeUnknown, "failed to close statement", err)
		}

		w.stmt = nil
	}

	if w.tx != nil {
		if err := w.tx.Rollback(); err != nil {
			w.logger.Warn("Failed to rollback transaction during close", zap.Error(err))
		}

		w.tx = nil
	}

	if w.db != nil {
		if err := w.db.Close(); err != nil && closeErr == nil {
			closeErr = errors.Wrap(errors.ErrCodeUnknown, "failed to close db connection", err)
		}

		w.db = nil
	}

	return closeErr
}

// WriteBars writes bars to outputPath in one go.
func WriteBars(outputPath string, bars []types.PriceBar, log *logger.Logger) error {
	w, err := NewBarWriter(outputPath, log)
	if err != nil {
		return err
	}

	if err := w.Initialize(); err != nil {
		return err
	}
	defer w.Close()

	for _, bar := range bars {
		if err := w.Write(bar); err != nil {
			return err
		}
	}

	_, err = w.Finalize()

	return err
}
