// Package payment delegates charges to the external payment provider.
package payment

import "context"

// StatusSucceeded is the provider status of a confirmed charge.
const StatusSucceeded = "succeeded"

// Intent is the provider-side record of a pending or completed charge.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
}

// Provider creates and inspects payment intents. Amounts are in minor
// currency units.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}
