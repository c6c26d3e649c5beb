package product

import (
	"encoding/json"

	"github.com/finbound/tartan/data"
)

// Balance reports the live balances of a user's accounts.
var Balance Product = balance{}

type balance struct{}

// BalanceData is the payload returned by the Balance product.
type BalanceData struct {
	Accounts []data.Account `json:"accounts"`
}

func (BalanceData) isProductData() {}

func (balance) Name() string { return "Balance" }

func (balance) Endpoint(op Operation) string {
	switch op {
	case StepMFA:
		return "/balance/step"
	case FetchData:
		return "/balance/get"
	case Upgrade:
		return "/upgrade?upgrade_to=balance"
	default:
		return "/balance"
	}
}

func (balance) DecodeData(body []byte) (Data, error) {
	var d BalanceData
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, err
	}
	return d, nil
}
