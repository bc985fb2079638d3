// Package ionsql holds the SQL issued against the ION database.
package ionsql

// ReadingsQuery returns the statement retrieving (TimestampUTC, Value) pairs
// for one meter. It carries four ?-style placeholders, bound in this order:
// source name (string), quantity id (integer), window start and window end
// (destination-formatted timestamps). The timestamp range is half-open:
// start inclusive, end exclusive. Callers rebind the placeholders to the
// active driver's style before executing.
func ReadingsQuery() string {
	return `SELECT d.TimestampUTC, d.Value
 FROM DataLog2 d
 INNER JOIN Source s ON s.ID = d.SourceID
 WHERE s.Name = ?
 AND d.QuantityID = ?
 AND d.TimestampUTC >= ?
 AND d.TimestampUTC < ?`
}
