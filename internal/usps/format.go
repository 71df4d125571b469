package usps

import (
	"fmt"
	"io"
)

// summaryIndent aligns the secondary line under the street column
const summaryIndent = "           "

// WriteSummary prints the one or two line human summary of r
func WriteSummary(w io.Writer, r Result) error {
	if _, err := fmt.Fprintf(w, "%s  |  %s  |  %s, %s\n", r.Zip9(), r.Street1, r.City, r.State); err != nil {
		return err
	}
	if r.Street2 != "" {
		if _, err := fmt.Fprintf(w, "%s%s\n", summaryIndent, r.Street2); err != nil {
			return err
		}
	}
	return nil
}

// WriteRaw prints one key=value line per field of r
func WriteRaw(w io.Writer, r Result) error {
	fields := []struct {
		key   string
		value string
	}{
		{"street1", r.Street1},
		{"street2", r.Street2},
		{"city", r.City},
		{"state", r.State},
		{"zip5", r.Zip5},
		{"zip4", r.Zip4},
	}

	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s=%s\n", f.key, f.value); err != nil {
			return err
		}
	}
	return nil
}
