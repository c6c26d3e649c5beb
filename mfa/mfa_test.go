package mfa_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbound/tartan/mfa"
)

func TestDecodeCodeChallenge(t *testing.T) {
	challenge, err := mfa.DecodeChallenge([]byte(`
		{"access_token":"test","type":"device","mfa":{"message":"Code sent to xxx-xxx-5309"}}
	`))
	require.NoError(t, err)

	code, ok := challenge.(mfa.Code)
	require.True(t, ok)
	assert.Equal(t, "Code sent to xxx-xxx-5309", code.Message)
}

func TestDecodeDeviceListChallengePreservesOrder(t *testing.T) {
	challenge, err := mfa.DecodeChallenge([]byte(`
		{"access_token":"test","type":"list","mfa":[
			{"mask":"t..t@plaid.com","type":"email"},
			{"mask":"xxx-xxx-5309","type":"phone"}
		]}
	`))
	require.NoError(t, err)

	list, ok := challenge.(mfa.DeviceList)
	require.True(t, ok)
	require.Len(t, list.Devices, 2)
	assert.Equal(t, mfa.Device{Mask: "t..t@plaid.com", Type: "email"}, list.Devices[0])
	assert.Equal(t, mfa.Device{Mask: "xxx-xxx-5309", Type: "phone"}, list.Devices[1])
}

func TestDecodeQuestionsChallenge(t *testing.T) {
	challenge, err := mfa.DecodeChallenge([]byte(`
		{"access_token":"test","type":"questions","mfa":[
			{"question":"What was the name of your first pet?"},
			{"question":"What city were you born in?"}
		]}
	`))
	require.NoError(t, err)

	questions, ok := challenge.(mfa.Questions)
	require.True(t, ok)
	assert.Equal(t, []string{
		"What was the name of your first pet?",
		"What city were you born in?",
	}, questions.Questions)
}

func TestDecodeSelectionsChallenge(t *testing.T) {
	challenge, err := mfa.DecodeChallenge([]byte(`
		{"access_token":"test","type":"selections","mfa":[
			{"question":"Which state have you lived in?","answers":["CA","NY","Neither"]}
		]}
	`))
	require.NoError(t, err)

	selections, ok := challenge.(mfa.Selections)
	require.True(t, ok)
	require.Len(t, selections.Selections, 1)
	assert.Equal(t, "Which state have you lived in?", selections.Selections[0].Question)
	assert.Equal(t, []string{"CA", "NY", "Neither"}, selections.Selections[0].Answers)
}

func TestDecodeUnsupportedChallengeType(t *testing.T) {
	_, err := mfa.DecodeChallenge([]byte(`
		{"access_token":"test","type":"retina-scan","mfa":{}}
	`))
	require.Error(t, err)

	var unsupported *mfa.UnsupportedChallengeTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "retina-scan", unsupported.Type)
}

func TestResponseMarshaling(t *testing.T) {
	tests := []struct {
		name     string
		response mfa.Response
		want     string
	}{
		{name: "code is a string", response: mfa.CodeResponse("1234"), want: `"1234"`},
		{name: "questions are an array", response: mfa.QuestionsResponse{"tolstoy", "vronsky"}, want: `["tolstoy","vronsky"]`},
		{name: "selections are an array", response: mfa.SelectionsResponse{"CA", "Neither"}, want: `["CA","Neither"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.response)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
