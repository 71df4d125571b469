package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/usps-zip4/internal/usps"
)

// Labels shown when a field was not given on the command line
const (
	LabelStreet  = "Street (line 1): "
	LabelStreet2 = "Street (line 2 / Apt/Ste) [optional]: "
	LabelCity    = "City: "
	LabelState   = "State (2-letter): "
)

// Prompter reads answers line by line from in, writing labels to out
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter over in and out
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints label and returns the trimmed answer. End of input yields
// whatever was typed before it, possibly "".
func (p *Prompter) Ask(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Fill asks for each blank field of addr, in street, street2, city, state
// order.
func (p *Prompter) Fill(addr usps.Address) (usps.Address, error) {
	fields := []struct {
		value *string
		label string
	}{
		{&addr.Street, LabelStreet},
		{&addr.Street2, LabelStreet2},
		{&addr.City, LabelCity},
		{&addr.State, LabelState},
	}

	for _, f := range fields {
		if strings.TrimSpace(*f.value) != "" {
			continue
		}
		answer, err := p.Ask(f.label)
		if err != nil {
			return addr, err
		}
		*f.value = answer
	}
	return addr, nil
}
