// Package meter loads the configured meter list.
package meter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Meter is one configured measurement point: where it lives in the ION
// database and how the destination system identifies it.
type Meter struct {
	IONName    string
	QuantityID int
	DestID     string
	DestName   string
}

// ReadList loads the meter list at path. Each record is
//
//	ion_name,quantity_id,dest_id,dest_name
//
// Lines starting with # are skipped. Order in the file is preserved.
func ReadList(path string) ([]Meter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meter list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 4
	r.Comment = '#'
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("meter list %s: %w", path, err)
	}

	meters := make([]Meter, 0, len(records))
	for _, rec := range records {
		qid, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("meter list %s: bad quantity id %q for meter %s", path, rec[1], rec[0])
		}
		meters = append(meters, Meter{
			IONName:    rec[0],
			QuantityID: qid,
			DestID:     rec[2],
			DestName:   rec[3],
		})
	}
	return meters, nil
}
