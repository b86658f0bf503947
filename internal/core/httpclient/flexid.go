package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexID decodes identifiers the storefront API sends either as JSON numbers or strings.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", string(b))
	}
	*f = FlexID(n.String())
	return nil
}

// String returns the id as a string.
func (f FlexID) String() string {
	return string(f)
}
