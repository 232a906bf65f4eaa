package models

import (
	"encoding/json"
	"time"
)

// Timestamp layouts accepted when decoding raw records. Jira emits the
// millisecond offset form; exports and fixtures commonly use the others.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON decodes an issue with tolerant timestamp handling:
// missing, null, or unparsable created/updated values become nil rather
// than failing the batch.
func (is *Issue) UnmarshalJSON(data []byte) error {
	type alias Issue
	aux := struct {
		*alias
		Created json.RawMessage `json:"created,omitempty"`
		Updated json.RawMessage `json:"updated,omitempty"`
	}{alias: (*alias)(is)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	is.Created = parseTimestamp(aux.Created)
	is.Updated = parseTimestamp(aux.Updated)
	return nil
}

func parseTimestamp(raw json.RawMessage) *time.Time {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return &ts
		}
	}
	return nil
}
