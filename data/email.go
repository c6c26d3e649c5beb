package data

import "encoding/json"

// Email is a user's email address on file with their institution.
type Email struct {
	// Whether the user has chosen this as their primary email.
	Primary bool
	// The designated type for this email, e.g. "personal".
	Type string
	// The actual email address.
	Email string
}

type emailWire struct {
	Primary *bool   `json:"primary"`
	Type    *string `json:"type"`
	Data    *string `json:"data"`
}

func (e *Email) UnmarshalJSON(b []byte) error {
	var w emailWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	switch {
	case w.Primary == nil:
		return missingField("primary")
	case w.Type == nil:
		return missingField("type")
	case w.Data == nil:
		return missingField("data")
	}

	e.Primary = *w.Primary
	e.Type = *w.Type
	e.Email = *w.Data
	return nil
}
