package product

import (
	"encoding/json"

	"github.com/finbound/tartan/data"
)

// Info retrieves the account holder information on file with the
// institution: names, emails, phone numbers and addresses.
var Info Product = info{}

type info struct{}

// InfoData is the payload returned by the Info product.
type InfoData struct {
	Accounts []data.Account `json:"accounts"`
	Info     InfoDetails    `json:"info"`
}

// InfoDetails holds the account holder information itself.
type InfoDetails struct {
	Emails       []data.Email       `json:"emails"`
	Addresses    []InfoAddress      `json:"addresses"`
	PhoneNumbers []data.PhoneNumber `json:"phone_numbers"`
}

// InfoAddress is an address entry in an Info response: the address parts
// nested under "data" plus a primary flag.
type InfoAddress struct {
	Primary bool         `json:"primary"`
	Address data.Address `json:"data"`
}

func (InfoData) isProductData() {}

func (info) Name() string { return "Info" }

func (info) Endpoint(op Operation) string {
	switch op {
	case StepMFA:
		return "/info/step"
	case FetchData:
		return "/info/get"
	case Upgrade:
		return "/upgrade?upgrade_to=info"
	default:
		return "/info"
	}
}

func (info) DecodeData(body []byte) (Data, error) {
	var d InfoData
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, err
	}
	return d, nil
}
