package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfileType is a closed enum: every profile is either a client or a contractor.
type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

// Profile is an account on the platform holding a balance.
// Balance is mutated only through guarded conditional updates in the
// settlement and deposit paths; it never goes below zero in a committed state.
type Profile struct {
	ID         string
	Type       ProfileType
	FirstName  string
	LastName   string
	Profession string
	Balance    decimal.Decimal
	AvatarURL  string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Profile) IsClient() bool     { return p.Type == ProfileTypeClient }
func (p *Profile) IsContractor() bool { return p.Type == ProfileTypeContractor }
