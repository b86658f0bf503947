package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxAddresses is the number of saved addresses a customer may keep.
const MaxAddresses = 4

// ErrInvalidAddress is wrapped by every ValidationError.
var ErrInvalidAddress = errors.New("invalid address")

// ShippingAddress is a saved delivery address. The server owns it; ID is assigned on create.
type ShippingAddress struct {
	ID         int64    `json:"id,omitempty"`
	Street     string   `json:"street"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	PostalCode string   `json:"postal_code,omitempty"`
	Country    string   `json:"country"`
	Label      string   `json:"label,omitempty"`
	IsDefault  bool     `json:"is_default"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// ValidationError lists the offending fields of an address.
type ValidationError struct {
	// Fields maps the JSON field name to a human readable message.
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidAddress, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidAddress
}

// MissingFields returns the required fields that are blank, in a stable order.
func (a *ShippingAddress) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"country", a.Country},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// HasRequiredFields reports whether every required field is populated.
func (a *ShippingAddress) HasRequiredFields() bool {
	return a != nil && len(a.MissingFields()) == 0
}

// Validate checks presence and format. It returns nil or a *ValidationError.
func (a *ShippingAddress) Validate() error {
	fields := map[string]string{}

	for _, name := range a.MissingFields() {
		fields[name] = "is required"
	}

	if a.PostalCode != "" && !isDigits(a.PostalCode) {
		fields["postal_code"] = "must contain digits only"
	}

	if (a.Latitude == nil) != (a.Longitude == nil) {
		fields["latitude"] = "latitude and longitude must be given together"
	}
	if a.Latitude != nil && (*a.Latitude < -90 || *a.Latitude > 90) {
		fields["latitude"] = "must be between -90 and 90"
	}
	if a.Longitude != nil && (*a.Longitude < -180 || *a.Longitude > 180) {
		fields["longitude"] = "must be between -180 and 180"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
