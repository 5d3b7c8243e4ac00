package models

type IdempotencyState string

const (
	IdempotencyInFlight  IdempotencyState = "in_flight"
	IdempotencyCompleted IdempotencyState = "completed"
)

// IdempotentResponse is the replayable outcome of a request carrying an Idempotency-Key.
type IdempotentResponse struct {
	State      IdempotencyState `json:"state"`
	StatusCode int              `json:"status_code,omitempty"`
	Body       []byte           `json:"body,omitempty"`
}
