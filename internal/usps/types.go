package usps

import (
	"fmt"
	"io"
	"time"
)

// DefaultEndpoint is the production Web Tools URL
const DefaultEndpoint = "https://production.shippingapis.com/ShippingAPI.dll"

// DefaultTimeout bounds the single HTTP round trip
const DefaultTimeout = 20 * time.Second

// Config holds the credentials and endpoint for the Web Tools API
type Config struct {
	UserID   string
	Password string
	Endpoint string
	Timeout  time.Duration

	// Debug echoes the raw response body to DebugWriter (stderr when nil)
	Debug       bool
	DebugWriter io.Writer
}

// Address is the lookup input. Street2 is the secondary/unit line.
type Address struct {
	Street  string
	Street2 string
	City    string
	State   string
}

// Result is the normalized address returned by ZipCodeLookup
type Result struct {
	Street1 string
	Street2 string
	City    string
	State   string
	Zip5    string
	Zip4    string
}

// Zip9 returns the ZIP+4 code as "12345-6789"
func (r Result) Zip9() string {
	return r.Zip5 + "-" + r.Zip4
}

func (a Address) String() string {
	return fmt.Sprintf("Street: %s, Street2: %s, City: %s, State: %s",
		a.Street, a.Street2, a.City, a.State)
}
