package data

import "encoding/json"

// PhoneNumber is a user's phone number on file with their institution.
type PhoneNumber struct {
	// Whether the user has chosen this as their primary phone number.
	Primary bool
	// The type of the phone number, e.g. "home".
	Type string
	// The actual phone number.
	PhoneNumber string
}

type phoneNumberWire struct {
	Primary *bool   `json:"primary"`
	Type    *string `json:"type"`
	Data    *string `json:"data"`
}

func (p *PhoneNumber) UnmarshalJSON(b []byte) error {
	var w phoneNumberWire
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

	p.Primary = *w.Primary
	p.Type = *w.Type
	p.PhoneNumber = *w.Data
	return nil
}
