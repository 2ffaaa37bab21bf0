package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job is a unit of billable work under a contract. Once Paid flips to true
// the price and payment date are immutable; the transition happens exactly
// once, inside the settlement transaction.
type Job struct {
	ID          string
	ContractID  string
	Description string
	Price       decimal.Decimal
	Paid        bool
	PaymentDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// ContractorID is the paying target, resolved by the payable-job query
	// so the settlement engine does not need a second contract read.
	ContractorID string
}
