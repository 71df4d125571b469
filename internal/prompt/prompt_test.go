package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/usps-zip4/internal/usps"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name       string
		given      usps.Address
		input      string
		want       usps.Address
		wantPrompt string
	}{
		{
			name:       "everything prompted",
			input:      "123 Main St\n\nAnytown\nCA\n",
			want:       usps.Address{Street: "123 Main St", City: "Anytown", State: "CA"},
			wantPrompt: LabelStreet + LabelStreet2 + LabelCity + LabelState,
		},
		{
			name:       "only missing fields prompted",
			given:      usps.Address{Street: "123 Main St", City: "Anytown"},
			input:      "  Apt 5B \nca\n",
			want:       usps.Address{Street: "123 Main St", Street2: "Apt 5B", City: "Anytown", State: "ca"},
			wantPrompt: LabelStreet2 + LabelState,
		},
		{
			name:       "nothing prompted",
			given:      usps.Address{Street: "1 A", Street2: "B", City: "C", State: "D"},
			want:       usps.Address{Street: "1 A", Street2: "B", City: "C", State: "D"},
			wantPrompt: "",
		},
		{
			name:       "input ends early",
			input:      "9 Elm",
			want:       usps.Address{Street: "9 Elm"},
			wantPrompt: LabelStreet + LabelStreet2 + LabelCity + LabelState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := New(strings.NewReader(tt.input), &out).Fill(tt.given)
			if err != nil {
				t.Fatalf("Fill() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Fill() = %+v, want %+v", got, tt.want)
			}
			if out.String() != tt.wantPrompt {
				t.Errorf("prompts = %q, want %q", out.String(), tt.wantPrompt)
			}
		})
	}
}
