// Package seed creates an ION-like schema and fills it with fake readings
// so exports can be exercised without a live ION server. Dev use only; the
// DDL targets postgres.
package seed

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/icrowley/fake"
	"go.uber.org/zap"

	"ionexport/internal/database"
	"ionexport/internal/meter"
)

const schema = `create table if not exists Source (
	ID serial not null primary key,
	Name varchar(128) not null unique
  ) ;

  create table if not exists DataLog2 (
	ID serial not null primary key,
	SourceID integer not null references Source (ID),
	QuantityID integer not null,
	TimestampUTC timestamp not null,
	Value double precision
  ) ;`

const (
	insertSource  = `insert into Source (Name) values ($1) returning ID`
	insertReading = `insert into DataLog2 (SourceID, QuantityID, TimestampUTC, Value) values ($1, $2, $3, $4)`
)

// step matches the ION logging granularity.
const step = 15 * time.Minute

// ION quantity ids commonly configured for 7350 meters.
var quantities = []int{96, 102, 129}

// GenerateMeterList writes an n-meter list with fake names to path and
// returns the generated meters.
func GenerateMeterList(path string, n int) ([]meter.Meter, error) {
	meters := make([]meter.Meter, 0, n)
	for i := 0; i < n; i++ {
		meters = append(meters, meter.Meter{
			IONName:    fmt.Sprintf("%s.%s%d", strings.ToUpper(fake.Word()), strings.ToUpper(fake.Word()), i+1),
			QuantityID: quantities[rand.Intn(len(quantities))],
			DestID:     fake.DigitsN(6),
			DestName:   fake.ProductName(),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("seed: meter list: %w", err)
	}
	w := csv.NewWriter(f)
	for _, m := range meters {
		w.Write([]string{m.IONName, strconv.Itoa(m.QuantityID), m.DestID, m.DestName})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, fmt.Errorf("seed: meter list: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("seed: meter list: %w", err)
	}
	return meters, nil
}

// Populate creates the tables and inserts days worth of readings for every
// meter, one sample per logging step.
func Populate(logger *zap.Logger, sess *database.Session, meters []meter.Meter, days int) error {
	if _, err := sess.DB.Exec(schema); err != nil {
		return fmt.Errorf("seed: create schema: %w", err)
	}

	insert, err := sess.DB.Preparex(insertReading)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer insert.Close()

	end := time.Now().UTC().Truncate(step)
	start := end.AddDate(0, 0, -days)

	for _, m := range meters {
		var sourceID int
		if err := sess.DB.Get(&sourceID, insertSource, m.IONName); err != nil {
			return fmt.Errorf("seed: source %s: %w", m.IONName, err)
		}
		base := 100 + rand.Float64()*400
		n := 0
		for ts := start; ts.Before(end); ts = ts.Add(step) {
			if _, err := insert.Exec(sourceID, m.QuantityID, ts, base+rand.Float64()*10); err != nil {
				return fmt.Errorf("seed: reading for %s: %w", m.IONName, err)
			}
			n++
		}
		logger.Info("seeded meter",
			zap.String("meter", m.IONName),
			zap.Int("qid", m.QuantityID),
			zap.Int("rows", n))
	}
	return nil
}
