package usps

import (
	"bytes"
	"testing"
)

func TestZip9(t *testing.T) {
	tests := []struct {
		zip5, zip4, want string
	}{
		{"94105", "1234", "94105-1234"},
		{"00501", "0001", "00501-0001"},
	}
	for _, tt := range tests {
		r := Result{Zip5: tt.zip5, Zip4: tt.zip4}
		if got := r.Zip9(); got != tt.want {
			t.Errorf("Zip9(%s, %s) = %q, want %q", tt.zip5, tt.zip4, got, tt.want)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "single line",
			result: Result{Street1: "123 Main St", City: "Anytown", State: "CA", Zip5: "94105", Zip4: "1234"},
			want:   "94105-1234  |  123 Main St  |  Anytown, CA\n",
		},
		{
			name:   "with secondary line",
			result: Result{Street1: "500 OAK AVE", Street2: "STE 200", City: "SPRINGFIELD", State: "IL", Zip5: "62701", Zip4: "0001"},
			want:   "62701-0001  |  500 OAK AVE  |  SPRINGFIELD, IL\n           STE 200\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteSummary(&buf, tt.result); err != nil {
				t.Fatalf("WriteSummary() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteSummary() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteRaw(t *testing.T) {
	var buf bytes.Buffer
	r := Result{Street1: "123 MAIN ST", City: "ANYTOWN", State: "CA", Zip5: "94105", Zip4: "1234"}
	if err := WriteRaw(&buf, r); err != nil {
		t.Fatalf("WriteRaw() error = %v", err)
	}

	want := "street1=123 MAIN ST\nstreet2=\ncity=ANYTOWN\nstate=CA\nzip5=94105\nzip4=1234\n"
	if buf.String() != want {
		t.Errorf("WriteRaw() = %q, want %q", buf.String(), want)
	}
}
