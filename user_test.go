package tartan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbound/tartan/mfa"
	"github.com/finbound/tartan/product"
)

func TestNextStatusMFAChallenge(t *testing.T) {
	challenge := mfa.Code{Message: "Code sent"}

	status := NextStatus(MFA{User: User{AccessToken: "test"}, Challenge: challenge})

	challenged, ok := status.(StatusMFAChallenged)
	require.True(t, ok)
	assert.Equal(t, challenge, challenged.Challenge)
}

func TestNextStatusAuthenticated(t *testing.T) {
	connectData := product.ConnectData{}

	status := NextStatus(Authenticated{User: User{AccessToken: "test"}, Data: connectData})

	authenticated, ok := status.(StatusAuthenticated)
	require.True(t, ok)
	assert.Equal(t, connectData, authenticated.Data)
}

func TestNextStatusDataFetchCountsAsAuthenticated(t *testing.T) {
	status := NextStatus(ProductData{Data: product.BalanceData{}})

	_, ok := status.(StatusAuthenticated)
	assert.True(t, ok)
}

func TestNextStatusProductNotEnabled(t *testing.T) {
	status := NextStatus(ProductNotEnabled{Product: product.Income})

	notEnabled, ok := status.(StatusProductNotEnabled)
	require.True(t, ok)
	assert.Equal(t, "Income", notEnabled.Product.Name())
}

func TestNextStatusUnknownForNilResponse(t *testing.T) {
	_, ok := NextStatus(nil).(StatusUnknown)
	assert.True(t, ok)
}
