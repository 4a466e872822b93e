package gateway

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

type IntentRequest struct {
	// Amount in minor units (cents).
	Amount   int64
	Currency string
	Metadata map[string]string
}

type Intent struct {
	ID           string
	ClientSecret string
}

// WebhookEvent is the subset of a gateway notification the platform reacts to.
type WebhookEvent struct {
	ID             string
	Type           string
	IntentID       string
	FailureMessage string
	Metadata       map[string]string
}
