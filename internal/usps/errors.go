package usps

import (
	"errors"
	"fmt"
)

// Kind classifies a lookup failure
type Kind int

const (
	KindConfig Kind = iota + 1
	KindTransport
	KindParse
	KindService
	KindMissingAddress
	KindIncomplete
)

// AuthFailureCode is the Web Tools error number returned for a USERID that
// is unknown or not yet enabled for production
const AuthFailureCode = "80040B1A"

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	case KindService:
		return "service"
	case KindMissingAddress:
		return "missing_address"
	case KindIncomplete:
		return "incomplete"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the single error type returned by a lookup
type Error struct {
	Kind    Kind
	Message string

	// Set for KindService
	Code        string
	Description string
	Source      string

	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a lookup error of the given kind
func IsKind(err error, kind Kind) bool {
	var uerr *Error
	if errors.As(err, &uerr) {
		return uerr.Kind == kind
	}
	return false
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func serviceError(code, description, source string) *Error {
	e := &Error{
		Kind:        KindService,
		Code:        code,
		Description: description,
		Source:      source,
	}
	if code == AuthFailureCode {
		e.Message = "USPS authorization failure (" + AuthFailureCode + "). This often means your Web Tools USERID " +
			"has not been activated for production yet, or your environment variables are " +
			"not set as expected."
	} else {
		e.Message = fmt.Sprintf("USPS error %s: %s", code, description)
	}
	return e
}
