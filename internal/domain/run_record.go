package domain

// Run statuses recorded in the optimization ledger. Each run is written once
// at begin and finished exactly once with one of these.
const (
	RunStatusSuccess = "SUCCESS"
	RunStatusError   = "ERROR"
)
