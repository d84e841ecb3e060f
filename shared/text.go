package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is form input that may arrive as a JSON string or as a bare JSON number.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
	case len(data) > 0 && data[0] == '"':
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("invalid text value: %w", err)
		}

		*t = Text(value)
	default:
		*t = Text(data)
	}

	return nil
}

func (t Text) String() string {
	return string(t)
}
