package entity

import "time"

// ContractStatus lifecycle: new -> in_progress -> terminated.
type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract links exactly one client profile and one contractor profile.
// The core only ever reads status and the two profile references.
type Contract struct {
	ID           string
	ClientID     string
	ContractorID string
	Terms        string
	Status       ContractStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PartyID resolves the contract's profile reference for a role. Role is a
// closed enum, so this is an explicit two-case branch rather than any kind
// of dynamic field selection.
func (c *Contract) PartyID(t ProfileType) string {
	if t == ProfileTypeClient {
		return c.ClientID
	}
	return c.ContractorID
}
