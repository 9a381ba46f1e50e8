package inventory

// The inventory API wraps every payload in an envelope exposing a data field:
// an array for list endpoints, a single object for item endpoints.

type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

type itemEnvelope[T any] struct {
	Data T `json:"data"`
}
