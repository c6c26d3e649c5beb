package product

import (
	"encoding/json"

	"github.com/finbound/tartan/data"
)

// Connect retrieves account balances and transaction history.
var Connect Product = connect{}

type connect struct{}

// ConnectData is the payload returned by the Connect product.
type ConnectData struct {
	// Accounts associated with the user.
	Accounts []data.Account `json:"accounts"`
	// Transactions associated with those accounts.
	Transactions []data.Transaction `json:"transactions"`
}

func (ConnectData) isProductData() {}

func (connect) Name() string { return "Connect" }

func (connect) Endpoint(op Operation) string {
	switch op {
	case StepMFA:
		return "/connect/step"
	case FetchData:
		return "/connect/get"
	case Upgrade:
		return "/upgrade?upgrade_to=connect"
	default:
		return "/connect"
	}
}

func (connect) DecodeData(body []byte) (Data, error) {
	var d ConnectData
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, err
	}
	return d, nil
}
