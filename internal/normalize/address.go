package normalize

import (
	"errors"
	"regexp"
	"strings"

	"github.com/usps-zip4/internal/usps"
)

// ErrFreeformUnavailable is returned by ParseFreeform in builds without libpostal
var ErrFreeformUnavailable = errors.New("--address needs a build with libpostal (go build -tags libpostal)")

var reWhitespace = regexp.MustCompile(`\s+`)

// Field trims s and collapses runs of whitespace to a single space
func Field(s string) string {
	return reWhitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}

// State returns a cleaned, upper-cased state code
func State(s string) string {
	return strings.ToUpper(Field(s))
}

// IsBlank reports whether s holds nothing but whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Address cleans every field of addr
func Address(addr usps.Address) usps.Address {
	return usps.Address{
		Street:  Field(addr.Street),
		Street2: Field(addr.Street2),
		City:    Field(addr.City),
		State:   State(addr.State),
	}
}

// Merge fills the blank fields of primary from fallback
func Merge(primary, fallback usps.Address) usps.Address {
	pick := func(a, b string) string {
		if IsBlank(a) {
			return b
		}
		return a
	}
	return usps.Address{
		Street:  pick(primary.Street, fallback.Street),
		Street2: pick(primary.Street2, fallback.Street2),
		City:    pick(primary.City, fallback.City),
		State:   pick(primary.State, fallback.State),
	}
}
