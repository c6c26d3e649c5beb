package product

import (
	"encoding/json"

	"github.com/finbound/tartan/data"
)

// Income reports the income streams detected from a user's transaction
// history, along with yearly aggregates.
var Income Product = income{}

type income struct{}

// IncomeData is the payload returned by the Income product.
type IncomeData struct {
	Accounts []data.Account `json:"accounts"`
	Income   IncomeDetails  `json:"income"`
}

// IncomeDetails holds the detected income streams and aggregate figures.
type IncomeDetails struct {
	IncomeStreams []IncomeStream `json:"income_streams"`
	// Sum of the user's income over the past 365 days.
	LastYearIncome data.Amount `json:"last_year_income"`
	// LastYearIncome interpolated to its pre-tax value, assuming a filing
	// status of single with zero dependents.
	LastYearIncomeBeforeTax data.Amount `json:"last_year_income_before_tax"`
	// Income extrapolated over a year from currently active streams.
	ProjectedYearlyIncome data.Amount `json:"projected_yearly_income"`
	// ProjectedYearlyIncome interpolated to its pre-tax value.
	ProjectedYearlyIncomeBeforeTax data.Amount `json:"projected_yearly_income_before_tax"`
	// Max number of income streams present at the same time over the past
	// 365 days.
	MaxNumberOfOverlappingIncomeStreams uint64 `json:"max_number_of_overlapping_income_streams"`
	// Total number of distinct income streams over the past 365 days.
	NumberOfIncomeStreams uint64 `json:"number_of_income_streams"`
}

// IncomeStream is one recurring source of income detected from the
// user's transactions.
type IncomeStream struct {
	MonthlyIncome data.Amount `json:"monthly_income"`
	// The service's confidence in this estimate, between 0 and 1.
	Confidence float64 `json:"confidence"`
	// How many days this stream has been observed for.
	Days uint64 `json:"days"`
	Name string `json:"name"`
}

func (IncomeData) isProductData() {}

func (income) Name() string { return "Income" }

func (income) Endpoint(op Operation) string {
	switch op {
	case StepMFA:
		return "/income/step"
	case FetchData:
		return "/income/get"
	case Upgrade:
		return "/upgrade?upgrade_to=income"
	default:
		return "/income"
	}
}

func (income) DecodeData(body []byte) (Data, error) {
	var d IncomeData
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, err
	}
	return d, nil
}
