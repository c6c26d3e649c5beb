package data_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbound/tartan/data"
)

func TestDecodeWholesomeAccount(t *testing.T) {
	var acc data.Account
	err := json.Unmarshal([]byte(`
		{
			"_id": "YzzrzBrO9OSzo6BXwAvVuL5dmMKMqkhOoEqeo",
			"_item": "aWWVW4VqGqIdaP495QyOSVLN1nzjLwhXaPDJJ",
			"_user": "bkkVkMVwQwfYmBMy9jzqHQob9O1KwpFaEyLOE",
			"balance": {
				"available": 7205.23,
				"current": 7255.23
			},
			"institution_type": "fake_institution",
			"meta": {
				"name": "Plaid Credit Card",
				"number": "3002"
			},
			"type": "depository",
			"subtype": "checking",
			"numbers": {
				"routing": "021000021",
				"account": "9900009606",
				"wireRouting": "021000022"
			}
		}
	`), &acc)
	require.NoError(t, err)

	assert.Equal(t, "YzzrzBrO9OSzo6BXwAvVuL5dmMKMqkhOoEqeo", acc.ID)
	assert.Equal(t, "aWWVW4VqGqIdaP495QyOSVLN1nzjLwhXaPDJJ", acc.ItemID)
	assert.Equal(t, 7255.23, acc.CurrentBalance)
	require.NotNil(t, acc.AvailableBalance)
	assert.Equal(t, 7205.23, *acc.AvailableBalance)
	assert.Equal(t, "fake_institution", acc.Institution)
	assert.Equal(t, "depository", acc.Type)
	require.NotNil(t, acc.Subtype)
	assert.Equal(t, "checking", *acc.Subtype)
	require.NotNil(t, acc.AccountNumber)
	assert.Equal(t, "9900009606", *acc.AccountNumber)
	require.NotNil(t, acc.RoutingNumber)
	assert.Equal(t, "021000021", *acc.RoutingNumber)
	require.NotNil(t, acc.WireRoutingNumber)
	assert.Equal(t, "021000022", *acc.WireRoutingNumber)
	require.NotNil(t, acc.Meta)
	require.NotNil(t, acc.Meta.Name)
	assert.Equal(t, "Plaid Credit Card", *acc.Meta.Name)
}

func TestDecodeAccountWithMissingValues(t *testing.T) {
	var acc data.Account
	err := json.Unmarshal([]byte(`
		{
			"_id": "YzzrzBrO9OSzo6BXwAvVuL5dmMKMqkhOoEqeo",
			"_item": "aWWVW4VqGqIdaP495QyOSVLN1nzjLwhXaPDJJ",
			"_user": "bkkVkMVwQwfYmBMy9jzqHQob9O1KwpFaEyLOE",
			"balance": { "current": 7255.23 },
			"institution_type": "fake_institution",
			"meta": {},
			"type": "depository"
		}
	`), &acc)
	require.NoError(t, err)

	assert.Equal(t, 7255.23, acc.CurrentBalance)
	assert.Nil(t, acc.AvailableBalance)
	assert.Nil(t, acc.Subtype)
	assert.Nil(t, acc.AccountNumber)
	assert.Nil(t, acc.RoutingNumber)
	assert.Nil(t, acc.WireRoutingNumber)
}

func TestDecodeAccountMissingCurrentBalance(t *testing.T) {
	var acc data.Account
	err := json.Unmarshal([]byte(`
		{
			"_id": "id",
			"_item": "item",
			"balance": { "available": 10.00 },
			"institution_type": "fake_institution",
			"type": "depository"
		}
	`), &acc)
	require.Error(t, err)

	var decodeErr *data.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "balance.current", decodeErr.Path)
}

func TestDecodeAccountMissingID(t *testing.T) {
	var acc data.Account
	err := json.Unmarshal([]byte(`
		{
			"balance": { "current": 1.0 },
			"institution_type": "fake_institution",
			"type": "depository"
		}
	`), &acc)

	var decodeErr *data.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "_id", decodeErr.Path)
}
