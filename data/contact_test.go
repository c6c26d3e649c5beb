package data_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbound/tartan/data"
)

func TestDecodeEmail(t *testing.T) {
	var email data.Email
	err := json.Unmarshal([]byte(`
		{ "primary": true,
		  "type": "personal",
		  "data": "kelly.walters30@example.com" }
	`), &email)
	require.NoError(t, err)

	assert.True(t, email.Primary)
	assert.Equal(t, "personal", email.Type)
	assert.Equal(t, "kelly.walters30@example.com", email.Email)
}

func TestDecodeEmailMissingData(t *testing.T) {
	var email data.Email
	err := json.Unmarshal([]byte(`{ "primary": true, "type": "personal" }`), &email)
	require.Error(t, err)

	var decodeErr *data.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "data", decodeErr.Path)
}

func TestDecodePhoneNumber(t *testing.T) {
	var phone data.PhoneNumber
	err := json.Unmarshal([]byte(`
		{
			"primary": true,
			"type": "home",
			"data": "4673956022"
		}
	`), &phone)
	require.NoError(t, err)

	assert.True(t, phone.Primary)
	assert.Equal(t, "home", phone.Type)
	assert.Equal(t, "4673956022", phone.PhoneNumber)
}

func TestDecodePhoneNumberMissingPrimary(t *testing.T) {
	var phone data.PhoneNumber
	err := json.Unmarshal([]byte(`{ "type": "home", "data": "4673956022" }`), &phone)
	require.Error(t, err)

	var decodeErr *data.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "primary", decodeErr.Path)
}
