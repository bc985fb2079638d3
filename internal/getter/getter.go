// Package getter downloads meter readings from the ION database into
// per-meter CSV files.
package getter

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"ionexport/internal/config"
	"ionexport/internal/credentials"
	"ionexport/internal/database"
	"ionexport/internal/ionsql"
	"ionexport/internal/meter"
	"ionexport/internal/timeutil"
)

// reading is one (timestamp, value) row from the data log. Value is
// nullable in the ION schema.
type reading struct {
	TimestampUTC time.Time
	Value        sql.NullFloat64
}

// RunBatch downloads readings for every configured meter whose timestamps
// lie within [start, end). Dates use the form YYYY-MM-DDTHH:MM:SS with 24
// hour time. A non-nil index restricts the run to the meter at that
// zero-based position in the list; an index past the end of the list
// downloads nothing.
func RunBatch(logger *zap.Logger, root, start, end string, index *int) error {
	sDate, sOK := timeutil.ParseDate(start)
	eDate, eOK := timeutil.ParseDate(end)

	switch {
	case !sOK || !eOK:
		return ErrInvalidDates
	case start >= end:
		// Raw string comparison; for this fixed-width date form it
		// coincides with chronological order.
		return ErrStartAfterEnd
	case !config.ExistsDir(root):
		return ErrRootNotFound
	case index != nil && !IsValidIndex(*index):
		return ErrInvalidIndex
	}

	paths, err := config.Resolve(root)
	if err != nil {
		return err
	}
	creds, err := credentials.Read(paths.Credentials)
	if err != nil {
		return err
	}
	dsn, err := creds.ConnString()
	if err != nil {
		return err
	}

	logger.Info("getter start", zap.Time("at", time.Now().UTC()))

	sess, err := database.Open(creds.Driver, dsn)
	if err != nil {
		return err
	}
	defer sess.Close()

	meters, err := meter.ReadList(paths.MeterList)
	if err != nil {
		return err
	}

	exportMeters(logger, sess, meters, paths.Downloads, sDate, eDate, index)

	logger.Info("getter end", zap.Time("at", time.Now().UTC()))
	return nil
}

// exportMeters runs the per-meter query loop. Failures are isolated per
// meter: a bad query or an empty result logs and moves on to the next one.
func exportMeters(logger *zap.Logger, sess *database.Session, meters []meter.Meter, downloads string, start, end time.Time, index *int) {
	query := sess.Rebind(ionsql.ReadingsQuery())
	startStr := timeutil.DestTimestamp(start)
	endStr := timeutil.DestTimestamp(end)

	for i, m := range meters {
		if index != nil && *index != i {
			continue
		}
		mlog := logger.With(zap.String("meter", m.IONName), zap.Int("qid", m.QuantityID))

		readings, err := fetchReadings(sess, query, m, startStr, endStr)
		if err != nil {
			mlog.Error("problem with query to get meter data", zap.Error(err))
			continue
		}
		if len(readings) == 0 {
			mlog.Warn("no data found for meter")
			continue
		}

		name := fmt.Sprintf("%sT%sT%s.csv", m.DestID, startStr, endStr)
		path := filepath.Join(downloads, name)
		mlog.Info("writing meter data", zap.String("file", path), zap.Int("rows", len(readings)))
		if err := writeFile(path, m, readings); err != nil {
			mlog.Error("writing meter data failed", zap.Error(err))
		}
	}
}

func fetchReadings(sess *database.Session, query string, m meter.Meter, start, end string) ([]reading, error) {
	rows, err := sess.DB.Queryx(query, m.IONName, m.QuantityID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []reading
	for rows.Next() {
		var r reading
		// Scan positionally: drivers disagree on result column casing
		// (postgres folds unquoted names to lowercase).
		if err := rows.Scan(&r.TimestampUTC, &r.Value); err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}
	return readings, rows.Err()
}

// writeFile writes the header record followed by one record per reading.
func writeFile(path string, m meter.Meter, readings []reading) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Write([]string{m.DestID, m.DestName})
	for _, r := range readings {
		w.Write([]string{timeutil.DestTimestamp(r.TimestampUTC), formatValue(r.Value)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// formatValue serializes a reading value; NULL becomes the empty string.
func formatValue(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}
