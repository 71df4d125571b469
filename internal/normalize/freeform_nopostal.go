//go:build !libpostal

package normalize

import (
	"io"

	"github.com/usps-zip4/internal/usps"
)

// ParseFreeform needs libpostal; this build was made without the libpostal
// tag, so any non-blank input is refused.
func ParseFreeform(_ io.Writer, _ bool, raw string) (usps.Address, error) {
	if IsBlank(raw) {
		return usps.Address{}, nil
	}
	return usps.Address{}, ErrFreeformUnavailable
}
