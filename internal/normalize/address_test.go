package normalize

import (
	"testing"

	"github.com/usps-zip4/internal/usps"
)

func TestAddress(t *testing.T) {
	tests := []struct {
		name  string
		input usps.Address
		want  usps.Address
	}{
		{
			name:  "already clean",
			input: usps.Address{Street: "123 Main St", City: "Anytown", State: "CA"},
			want:  usps.Address{Street: "123 Main St", City: "Anytown", State: "CA"},
		},
		{
			name:  "surrounding and repeated whitespace",
			input: usps.Address{Street: "  123   Main\tSt ", Street2: " Apt  5B", City: " Any town ", State: " ca "},
			want:  usps.Address{Street: "123 Main St", Street2: "Apt 5B", City: "Any town", State: "CA"},
		},
		{
			name:  "blank secondary stays blank",
			input: usps.Address{Street: "1 Elm", Street2: "   ", City: "X", State: "ny"},
			want:  usps.Address{Street: "1 Elm", City: "X", State: "NY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Address(tt.input); got != tt.want {
				t.Errorf("Address() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	primary := usps.Address{Street: "500 Oak Ave", City: " "}
	fallback := usps.Address{Street: "IGNORED", Street2: "STE 200", City: "SPRINGFIELD", State: "IL"}

	got := Merge(primary, fallback)
	want := usps.Address{Street: "500 Oak Ave", Street2: "STE 200", City: "SPRINGFIELD", State: "IL"}
	if got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}
}
