package product

import (
	"encoding/json"

	"github.com/finbound/tartan/data"
)

// Auth verifies that the user owns their account, returning account and
// routing numbers suitable for authorizing ACH transactions.
var Auth Product = auth{}

type auth struct{}

// AuthData is the payload returned by the Auth product. Its accounts
// include account, routing and wire routing numbers.
type AuthData struct {
	Accounts []data.Account `json:"accounts"`
}

func (AuthData) isProductData() {}

func (auth) Name() string { return "Auth" }

func (auth) Endpoint(op Operation) string {
	switch op {
	case StepMFA:
		return "/auth/step"
	case FetchData:
		return "/auth/get"
	case Upgrade:
		return "/upgrade?upgrade_to=auth"
	default:
		return "/auth"
	}
}

func (auth) DecodeData(body []byte) (Data, error) {
	var d AuthData
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, err
	}
	return d, nil
}
