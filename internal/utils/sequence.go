package utils

import "fmt"

// FormatSequenceNumber renders a per-company counter value as a human-facing
// document number, e.g. ("INV", 7) becomes "INV-007". Values beyond three
// digits widen naturally: ("PO", 1234) becomes "PO-1234".
func FormatSequenceNumber(prefix string, value int64) string {
	return fmt.Sprintf("%s-%03d", prefix, value)
}
