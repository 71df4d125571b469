//go:build libpostal

package normalize

import (
	"io"
	"strings"

	postal "github.com/openvenues/gopostal/parser"

	"github.com/usps-zip4/internal/debug"
	"github.com/usps-zip4/internal/usps"
)

// libpostal labels that make up the secondary/unit line, in output order
var secondaryLabels = []string{"unit", "level", "staircase", "entrance"}

// ParseFreeform splits a single-line US address into lookup fields using
// libpostal. Fields libpostal cannot find are left blank.
func ParseFreeform(w io.Writer, localDebug bool, raw string) (usps.Address, error) {
	if IsBlank(raw) {
		return usps.Address{}, nil
	}
	defer debug.Timing(w, localDebug, "libpostal parse")()

	components := postal.ParseAddress(raw)
	for _, c := range components {
		debug.Output(w, localDebug, "libpostal %s=%q", c.Label, c.Value)
	}
	return FromComponents(components), nil
}

// FromComponents maps libpostal components onto the lookup fields
func FromComponents(components []postal.ParsedComponent) usps.Address {
	extracted := make(map[string]string)
	for _, comp := range components {
		if _, seen := extracted[comp.Label]; seen {
			extracted[comp.Label] += " " + comp.Value
			continue
		}
		extracted[comp.Label] = comp.Value
	}

	street := joinNonBlank(extracted["house_number"], extracted["road"])
	if street == "" {
		street = extracted["po_box"]
	}

	var secondary []string
	for _, label := range secondaryLabels {
		secondary = append(secondary, extracted[label])
	}

	city := extracted["city"]
	if city == "" {
		city = extracted["suburb"]
	}
	if city == "" {
		city = extracted["city_district"]
	}

	return Address(usps.Address{
		Street:  strings.ToUpper(street),
		Street2: strings.ToUpper(joinNonBlank(secondary...)),
		City:    strings.ToUpper(city),
		State:   extracted["state"],
	})
}

func joinNonBlank(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if !IsBlank(p) {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, " ")
}
