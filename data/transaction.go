package data

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Transaction represents a single transaction associated with an Account.
type Transaction struct {
	// The unique identifier of this transaction.
	ID UID
	// The id of the associated Account.
	AccountID UID
	// Dollar value of the transaction. Positive means money moving out of
	// the account, negative means money moving in.
	Amount Amount
	// The category this transaction belongs to.
	CategoryID CategoryID
	// The context in which the transaction occurred.
	Context Context
	// A hierarchical, ordered list of the categories this transaction
	// belongs to.
	Categories []string
	// When true the transaction is cleared and immutable. When false it is
	// posted and subject to change.
	Pending bool
	// The date on which the transaction took place, in ISO 8601 format.
	Date Date
	// Transaction meta-data.
	Meta *TransactionMeta
}

// TransactionMeta carries meta-data associated with a transaction.
type TransactionMeta struct {
	// The location in which the transaction most likely occurred.
	Location Address `json:"location"`
}

// Context is the setting in which a transaction took place.
type Context int

const (
	// ContextUnresolved means the context could not be determined.
	ContextUnresolved Context = iota
	// ContextPlace is a physical location.
	ContextPlace
	// ContextDigital is an online transaction.
	ContextDigital
	// ContextSpecial covers institution-level transactions such as fees.
	ContextSpecial
)

func (c Context) String() string {
	switch c {
	case ContextPlace:
		return "place"
	case ContextDigital:
		return "digital"
	case ContextSpecial:
		return "special"
	default:
		return "unresolved"
	}
}

type transactionWire struct {
	ID         *string         `json:"_id"`
	AccountID  *string         `json:"_account"`
	Amount     *float64        `json:"amount"`
	CategoryID json.RawMessage `json:"category_id"`
	Type       *struct {
		Primary string `json:"primary"`
	} `json:"type"`
	Categories []string         `json:"category"`
	Pending    *bool            `json:"pending"`
	Date       *string          `json:"date"`
	Meta       *TransactionMeta `json:"meta"`
}

// UnmarshalJSON decodes the wire shape, parsing the string-encoded
// category id into its numeric form and resolving the context from the
// "type" object's "primary" field.
func (t *Transaction) UnmarshalJSON(b []byte) error {
	var w transactionWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	switch {
	case w.ID == nil:
		return missingField("_id")
	case w.AccountID == nil:
		return missingField("_account")
	case w.Amount == nil:
		return missingField("amount")
	case len(w.CategoryID) == 0:
		return missingField("category_id")
	case w.Type == nil:
		return missingField("type")
	case w.Pending == nil:
		return missingField("pending")
	case w.Date == nil:
		return missingField("date")
	}

	// Category ids arrive as numeric strings, e.g. "13005000". A bare
	// number is tolerated as well; anything unparseable is a decode error.
	raw := bytes.Trim(w.CategoryID, `"`)
	category, err := strconv.ParseUint(string(raw), 10, 32)
	if err != nil {
		return &DecodeError{Path: "category_id", Reason: "not a numeric string"}
	}

	t.ID = *w.ID
	t.AccountID = *w.AccountID
	t.Amount = *w.Amount
	t.CategoryID = CategoryID(category)
	t.Context = contextFromWire(w.Type.Primary)
	t.Categories = w.Categories
	t.Pending = *w.Pending
	t.Date = *w.Date
	t.Meta = w.Meta
	return nil
}

func contextFromWire(primary string) Context {
	switch primary {
	case "place":
		return ContextPlace
	case "digital":
		return ContextDigital
	case "special":
		return ContextSpecial
	default:
		return ContextUnresolved
	}
}
