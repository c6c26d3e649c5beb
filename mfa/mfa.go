// Package mfa models the multi-factor authentication challenges the
// remote service can issue and the answers a caller sends back.
package mfa

import (
	"encoding/json"
	"fmt"

	"github.com/finbound/tartan/data"
)

// Challenge is one pending additional-verification step the remote
// service requires before granting data access. Callers type-switch over
// the concrete variants.
type Challenge interface {
	isChallenge()
}

// Code means a verification code has been sent to one of the user's
// registered devices.
type Code struct {
	// Human-readable delivery notice, e.g. "Code sent to xxx-xxx-5309".
	Message string
}

// Device is one registered delivery target for a code challenge.
type Device struct {
	// Masked address of the device, e.g. "t..t@plaid.com".
	Mask string `json:"mask"`
	// The device kind, e.g. "email" or "phone".
	Type string `json:"type"`
}

// DeviceList asks the user to pick which device a code should be sent to.
// Order matches the wire payload.
type DeviceList struct {
	Devices []Device
}

// Questions asks the user to answer security questions.
type Questions struct {
	Questions []string
}

// Selection is one multiple-choice security question.
type Selection struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

// Selections asks the user to answer multiple-choice questions.
type Selections struct {
	Selections []Selection
}

func (Code) isChallenge()       {}
func (DeviceList) isChallenge() {}
func (Questions) isChallenge()  {}
func (Selections) isChallenge() {}

// UnsupportedChallengeTypeError is returned when the remote service sends
// an MFA discriminator this version does not understand.
type UnsupportedChallengeTypeError struct {
	Type string
}

func (e *UnsupportedChallengeTypeError) Error() string {
	return fmt.Sprintf("unsupported mfa challenge type %q", e.Type)
}

type challengeWire struct {
	Type *string         `json:"type"`
	MFA  json.RawMessage `json:"mfa"`
}

// DecodeChallenge interprets the challenge portion of a response body,
// branching on the "type" discriminator. An unknown discriminator is a
// hard error, never a silent fallback.
func DecodeChallenge(body []byte) (Challenge, error) {
	var w challengeWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, err
	}
	if w.Type == nil {
		return nil, &data.DecodeError{Path: "type", Reason: "missing required field"}
	}

	switch *w.Type {
	case "device":
		var m struct {
			Message string `json:"message"`
		}
		if len(w.MFA) > 0 {
			if err := json.Unmarshal(w.MFA, &m); err != nil {
				return nil, &data.DecodeError{Path: "mfa", Reason: "malformed device challenge"}
			}
		}
		return Code{Message: m.Message}, nil
	case "list":
		var devices []Device
		if err := json.Unmarshal(w.MFA, &devices); err != nil {
			return nil, &data.DecodeError{Path: "mfa", Reason: "malformed device list"}
		}
		return DeviceList{Devices: devices}, nil
	case "questions":
		var questions []struct {
			Question string `json:"question"`
		}
		if err := json.Unmarshal(w.MFA, &questions); err != nil {
			return nil, &data.DecodeError{Path: "mfa", Reason: "malformed question list"}
		}
		qs := make([]string, len(questions))
		for i, q := range questions {
			qs[i] = q.Question
		}
		return Questions{Questions: qs}, nil
	case "selections":
		var selections []Selection
		if err := json.Unmarshal(w.MFA, &selections); err != nil {
			return nil, &data.DecodeError{Path: "mfa", Reason: "malformed selection list"}
		}
		return Selections{Selections: selections}, nil
	default:
		return nil, &UnsupportedChallengeTypeError{Type: *w.Type}
	}
}
