package ionsql_test

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/xwb1989/sqlparser"

	"ionexport/internal/ionsql"
)

func TestReadingsQueryParses(t *testing.T) {
	c := qt.New(t)
	stmt, err := sqlparser.Parse(ionsql.ReadingsQuery())
	c.Assert(err, qt.IsNil)
	sel, ok := stmt.(*sqlparser.Select)
	c.Assert(ok, qt.IsTrue)
	c.Assert(sel.SelectExprs, qt.HasLen, 2)
}

func TestReadingsQueryBinding(t *testing.T) {
	c := qt.New(t)
	q := ionsql.ReadingsQuery()
	// Four positional parameters: name, qid, start, end.
	c.Assert(strings.Count(q, "?"), qt.Equals, 4)
	// Half-open window: start inclusive, end exclusive.
	c.Assert(strings.Contains(q, "TimestampUTC >= ?"), qt.IsTrue)
	c.Assert(strings.Contains(q, "TimestampUTC < ?"), qt.IsTrue)
}
