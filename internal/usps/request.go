package usps

import (
	"encoding/xml"
	"fmt"
	"net/url"
)

// APIName is the Web Tools API this client calls
const APIName = "ZipCodeLookup"

type lookupRequest struct {
	XMLName  xml.Name       `xml:"ZipCodeLookupRequest"`
	UserID   string         `xml:"USERID,attr"`
	Password string         `xml:"PASSWORD,attr,omitempty"`
	Address  requestAddress `xml:"Address"`
}

// USPS carries the secondary/unit line in Address1 and the street line in
// Address2.
type requestAddress struct {
	ID       string `xml:"ID,attr"`
	Address1 string `xml:"Address1"`
	Address2 string `xml:"Address2"`
	City     string `xml:"City"`
	State    string `xml:"State"`
}

// BuildRequest encodes addr as a ZipCodeLookupRequest document
func BuildRequest(userID, password string, addr Address) (string, error) {
	req := lookupRequest{
		UserID:   userID,
		Password: password,
		Address: requestAddress{
			ID:       "0",
			Address1: addr.Street2,
			Address2: addr.Street,
			City:     addr.City,
			State:    addr.State,
		},
	}

	data, err := xml.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}
	return string(data), nil
}

// RequestURL returns the GET URL carrying the request XML as a query parameter
func RequestURL(endpoint, requestXML string) string {
	query := url.Values{}
	query.Set("API", APIName)
	query.Set("XML", requestXML)
	return endpoint + "?" + query.Encode()
}
