package usps

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// node is a generic element tree; the response shape differs between
// success, nested errors and a bare <Error> document. Text holds only the
// character data before the first child element.
type node struct {
	Name     xml.Name
	Text     string
	Children []*node
}

// is reports whether n is the un-namespaced element name
func (n *node) is(name string) bool {
	return n.Name.Space == "" && n.Name.Local == name
}

// child returns the first direct child named name
func (n *node) child(name string) *node {
	for _, c := range n.Children {
		if c.is(name) {
			return c
		}
	}
	return nil
}

// descendant returns the first element below n named name, in document order
func (n *node) descendant(name string) *node {
	for _, c := range n.Children {
		if c.is(name) {
			return c
		}
		if found := c.descendant(name); found != nil {
			return found
		}
	}
	return nil
}

// text returns the trimmed text of the named child, or "" when absent
func (n *node) text(name string) string {
	if c := n.child(name); c != nil {
		return strings.TrimSpace(c.Text)
	}
	return ""
}

// Response is the outcome of parsing one ZipCodeLookup body. Exactly one of
// Result and Err is set.
type Response struct {
	Result *Result
	Err    *Error
}

// ParseResponse classifies a response body in a single pass over the tree
func ParseResponse(body string) Response {
	body = strings.TrimPrefix(body, byteOrderMark)

	root, err := parseDocument(body)
	if err != nil {
		return Response{Err: &Error{
			Kind:    KindParse,
			Message: "USPS returned non-XML response (use --debug to inspect raw body)",
			Err:     err,
		}}
	}

	errNode := root.descendant("Error")
	if root.is("Error") {
		errNode = root
	}
	if errNode != nil {
		return Response{Err: serviceError(
			errNode.text("Number"),
			errNode.text("Description"),
			errNode.text("Source"),
		)}
	}

	addr := root.descendant("Address")
	if addr == nil {
		return Response{Err: newError(KindMissingAddress, "Unexpected USPS response: missing Address element (use --debug)")}
	}

	zip5 := addr.text("Zip5")
	zip4 := addr.text("Zip4")
	if zip5 == "" || zip4 == "" {
		return Response{Err: newError(KindIncomplete, "No ZIP+4 returned (address may be incomplete/invalid)")}
	}

	return Response{Result: &Result{
		Street1: addr.text("Address2"),
		Street2: addr.text("Address1"),
		City:    addr.text("City"),
		State:   addr.text("State"),
		Zip5:    zip5,
		Zip4:    zip4,
	}}
}

const byteOrderMark = "\uFEFF"

var errTrailingContent = errors.New("unexpected content outside the root element")

// parseDocument builds the tree for exactly one root element; stray text or
// a second element before or after it is an error.
func parseDocument(body string) (*node, error) {
	d := xml.NewDecoder(strings.NewReader(body))
	// The body has already been decoded to UTF-8.
	d.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }

	var root *node
	var stack []*node
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{Name: t.Name}
			if len(stack) == 0 {
				if root != nil {
					return nil, errTrailingContent
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errTrailingContent
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, errTrailingContent
				}
				continue
			}
			if current := stack[len(stack)-1]; len(current.Children) == 0 {
				current.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("no root element")
	}
	if len(stack) != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}
