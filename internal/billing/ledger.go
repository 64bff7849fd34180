package billing

import (
	"context"
	"log"
)

// CreditLedger records purchased credits against a user account.
// No durable balance store exists yet; the contract is here so the
// webhook can hand off grants once the account service grows one.
type CreditLedger interface {
	Credit(ctx context.Context, userID string, credits int) error
}

// LogLedger acknowledges grants in the logs only.
type LogLedger struct{}

func (LogLedger) Credit(ctx context.Context, userID string, credits int) error {
	log.Printf("CREDITS_GRANTED user=%s credits=%d", userID, credits)
	return nil
}
