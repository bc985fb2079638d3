package getter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	qt "github.com/frankban/quicktest"
	"go.uber.org/zap/zaptest"

	"ionexport/internal/ionsql"
)

const twoMeters = `BLDG90.MTR1,96,1001,Building 90 Main
BLDG74.MTR2,102,1002,Building 74 Annex
`

var dsnSeq int64

// newTestRoot builds a root directory whose credentials point at a
// sqlmock-backed database.
func newTestRoot(c *qt.C, meterLines string) (root string, mock sqlmock.Sqlmock, downloads string) {
	dsn := fmt.Sprintf("getter_mock_dsn_%d", atomic.AddInt64(&dsnSeq, 1))
	_, mock, err := sqlmock.NewWithDSN(dsn, sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	c.Assert(err, qt.IsNil)

	root = c.TempDir()
	creds := fmt.Sprintf(`{"driver": "sqlmock", "dsn": %q}`, dsn)
	c.Assert(os.WriteFile(filepath.Join(root, "creds.json"), []byte(creds), 0o644), qt.IsNil)
	c.Assert(os.WriteFile(filepath.Join(root, "meters.csv"), []byte(meterLines), 0o644), qt.IsNil)
	downloads = filepath.Join(root, "downloads")
	c.Assert(os.Mkdir(downloads, 0o755), qt.IsNil)
	return root, mock, downloads
}

func readingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"TimestampUTC", "Value"})
}

func TestRunBatchValidation(t *testing.T) {
	c := qt.New(t)
	root := c.TempDir()
	badIdx := -2

	tests := []struct {
		testName   string
		root       string
		start, end string
		index      *int
		expectErr  error
	}{{
		testName:  "malformed-start",
		root:      root,
		start:     "not-a-date",
		end:       "2023-01-01T00:00:00",
		expectErr: ErrInvalidDates,
	}, {
		testName:  "malformed-end",
		root:      root,
		start:     "2023-01-01T00:00:00",
		end:       "2023-01-01",
		expectErr: ErrInvalidDates,
	}, {
		testName:  "start-after-end",
		root:      root,
		start:     "2023-02-01T00:00:00",
		end:       "2023-01-01T00:00:00",
		expectErr: ErrStartAfterEnd,
	}, {
		testName:  "start-equals-end",
		root:      root,
		start:     "2023-01-01T00:00:00",
		end:       "2023-01-01T00:00:00",
		expectErr: ErrStartAfterEnd,
	}, {
		testName:  "missing-root",
		root:      filepath.Join(root, "nope"),
		start:     "2023-01-01T00:00:00",
		end:       "2023-02-01T00:00:00",
		expectErr: ErrRootNotFound,
	}, {
		testName:  "negative-index",
		root:      root,
		start:     "2023-01-01T00:00:00",
		end:       "2023-02-01T00:00:00",
		index:     &badIdx,
		expectErr: ErrInvalidIndex,
	}}
	for _, test := range tests {
		c.Run(test.testName, func(c *qt.C) {
			err := RunBatch(zaptest.NewLogger(c), test.root, test.start, test.end, test.index)
			c.Assert(err, qt.ErrorIs, test.expectErr)
		})
	}
}

func TestRunBatchWritesFiles(t *testing.T) {
	c := qt.New(t)
	root, mock, downloads := newTestRoot(c, twoMeters)

	query := ionsql.ReadingsQuery()
	startStr, endStr := "2023-01-01 00:00:00", "2023-01-02 00:00:00"

	rows := readingRows().
		AddRow(time.Date(2023, 1, 1, 0, 15, 0, 0, time.UTC), 42.5).
		AddRow(time.Date(2023, 1, 1, 0, 30, 0, 0, time.UTC), nil)
	mock.ExpectQuery(query).
		WithArgs("BLDG90.MTR1", 96, startStr, endStr).
		WillReturnRows(rows)
	mock.ExpectQuery(query).
		WithArgs("BLDG74.MTR2", 102, startStr, endStr).
		WillReturnRows(readingRows())

	err := RunBatch(zaptest.NewLogger(c), root, "2023-01-01T00:00:00", "2023-01-02T00:00:00", nil)
	c.Assert(err, qt.IsNil)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)

	entries, err := os.ReadDir(downloads)
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 1)

	name := fmt.Sprintf("1001T%sT%s.csv", startStr, endStr)
	data, err := os.ReadFile(filepath.Join(downloads, name))
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, "1001,Building 90 Main\n2023-01-01 00:15:00,42.5\n2023-01-01 00:30:00,\n")
}

// Postgres folds the query's unquoted column names to lowercase; the scan
// must not depend on how the driver cases result columns.
func TestRunBatchLowercaseResultColumns(t *testing.T) {
	c := qt.New(t)
	root, mock, downloads := newTestRoot(c, "BLDG90.MTR1,96,1001,Building 90 Main\n")

	startStr, endStr := "2023-01-01 00:00:00", "2023-01-02 00:00:00"
	rows := sqlmock.NewRows([]string{"timestamputc", "value"}).
		AddRow(time.Date(2023, 1, 1, 0, 15, 0, 0, time.UTC), 42.5)
	mock.ExpectQuery(ionsql.ReadingsQuery()).
		WithArgs("BLDG90.MTR1", 96, startStr, endStr).
		WillReturnRows(rows)

	err := RunBatch(zaptest.NewLogger(c), root, "2023-01-01T00:00:00", "2023-01-02T00:00:00", nil)
	c.Assert(err, qt.IsNil)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)

	data, err := os.ReadFile(filepath.Join(downloads, fmt.Sprintf("1001T%sT%s.csv", startStr, endStr)))
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, "1001,Building 90 Main\n2023-01-01 00:15:00,42.5\n")
}

func TestRunBatchMeterErrorIsolation(t *testing.T) {
	c := qt.New(t)
	root, mock, downloads := newTestRoot(c, twoMeters)

	query := ionsql.ReadingsQuery()
	startStr, endStr := "2023-01-01 00:00:00", "2023-01-02 00:00:00"

	mock.ExpectQuery(query).
		WithArgs("BLDG90.MTR1", 96, startStr, endStr).
		WillReturnError(errors.New("table is having a bad day"))
	mock.ExpectQuery(query).
		WithArgs("BLDG74.MTR2", 102, startStr, endStr).
		WillReturnRows(readingRows().AddRow(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC), 7.25))

	err := RunBatch(zaptest.NewLogger(c), root, "2023-01-01T00:00:00", "2023-01-02T00:00:00", nil)
	c.Assert(err, qt.IsNil)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)

	entries, err := os.ReadDir(downloads)
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 1)
	c.Assert(entries[0].Name(), qt.Equals, fmt.Sprintf("1002T%sT%s.csv", startStr, endStr))
}

func TestRunBatchIndexFilter(t *testing.T) {
	c := qt.New(t)
	root, mock, _ := newTestRoot(c, twoMeters)

	startStr, endStr := "2023-01-01 00:00:00", "2023-01-02 00:00:00"
	mock.ExpectQuery(ionsql.ReadingsQuery()).
		WithArgs("BLDG74.MTR2", 102, startStr, endStr).
		WillReturnRows(readingRows())

	idx := 1
	err := RunBatch(zaptest.NewLogger(c), root, "2023-01-01T00:00:00", "2023-01-02T00:00:00", &idx)
	c.Assert(err, qt.IsNil)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}

func TestRunBatchIndexPastEnd(t *testing.T) {
	c := qt.New(t)
	root, mock, downloads := newTestRoot(c, twoMeters)

	idx := 5
	err := RunBatch(zaptest.NewLogger(c), root, "2023-01-01T00:00:00", "2023-01-02T00:00:00", &idx)
	c.Assert(err, qt.IsNil)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)

	entries, err := os.ReadDir(downloads)
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 0)
}
