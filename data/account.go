package data

import "encoding/json"

// Account represents one account associated with a given user.
type Account struct {
	// The unique id of the account.
	ID UID
	// An id unique to the accounts of a particular access token.
	ItemID UID
	// The total amount of funds in the account.
	CurrentBalance Amount
	// The current balance less any outstanding holds or debits that have
	// not yet posted. Not always reported by the institution.
	AvailableBalance *Amount
	// The financial institution associated with the account.
	Institution Institution
	// The classification of this account, e.g. "depository".
	Type string
	// A more detailed classification. Not always available.
	Subtype *string
	// The user's bank account number. Only returned by the Auth product.
	AccountNumber *string
	// The user's routing number. Only returned by the Auth product.
	RoutingNumber *string
	// The user's wire routing number. Only returned by the Auth product.
	WireRoutingNumber *string
	// Meta-data associated with this account.
	Meta *AccountMeta
}

// AccountMeta carries any meta-data associated with the account.
type AccountMeta struct {
	// Name of the account, e.g. "Plaid Credit Card".
	Name *string `json:"name"`
	// Number associated with the name.
	Number *string `json:"number"`
	// Any limit associated with the account, if it is a credit card.
	Limit *Amount `json:"limit"`
}

type accountWire struct {
	ID      *string `json:"_id"`
	ItemID  *string `json:"_item"`
	Balance *struct {
		Current   *float64 `json:"current"`
		Available *float64 `json:"available"`
	} `json:"balance"`
	Institution *string `json:"institution_type"`
	Type        *string `json:"type"`
	Subtype     *string `json:"subtype"`
	Numbers     *struct {
		Account     *string `json:"account"`
		Routing     *string `json:"routing"`
		WireRouting *string `json:"wireRouting"`
	} `json:"numbers"`
	Meta *AccountMeta `json:"meta"`
}

// UnmarshalJSON flattens the nested "balance" and "numbers" wire objects
// into the Account fields.
func (a *Account) UnmarshalJSON(b []byte) error {
	var w accountWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	switch {
	case w.ID == nil:
		return missingField("_id")
	case w.ItemID == nil:
		return missingField("_item")
	case w.Balance == nil:
		return missingField("balance")
	case w.Balance.Current == nil:
		return missingField("balance.current")
	case w.Institution == nil:
		return missingField("institution_type")
	case w.Type == nil:
		return missingField("type")
	}

	a.ID = *w.ID
	a.ItemID = *w.ItemID
	a.CurrentBalance = *w.Balance.Current
	a.AvailableBalance = w.Balance.Available
	a.Institution = *w.Institution
	a.Type = *w.Type
	a.Subtype = w.Subtype
	a.Meta = w.Meta
	if w.Numbers != nil {
		a.AccountNumber = w.Numbers.Account
		a.RoutingNumber = w.Numbers.Routing
		a.WireRoutingNumber = w.Numbers.WireRouting
	}
	return nil
}
