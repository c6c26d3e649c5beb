package mfa

import "encoding/json"

// Response answers a previously issued Challenge. The variant must
// structurally match the challenge kind it answers; the remote service,
// not this library, enforces that.
//
// A Response marshals directly into the "mfa" field of a step request: a
// JSON string for code answers, a JSON array otherwise.
type Response interface {
	json.Marshaler
	isResponse()
}

// CodeResponse answers a Code challenge with the code the user received.
type CodeResponse string

// QuestionsResponse answers a Questions challenge, one answer per
// question, in order.
type QuestionsResponse []string

// SelectionsResponse answers a Selections challenge, one chosen answer
// per selection, in order.
type SelectionsResponse []string

func (CodeResponse) isResponse()       {}
func (QuestionsResponse) isResponse()  {}
func (SelectionsResponse) isResponse() {}

func (r CodeResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r QuestionsResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(r))
}

func (r SelectionsResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(r))
}
