package coinpaprika

import "fmt"

// UpstreamError is a non-success HTTP status from the provider. The gateway
// never retries it; the caller decides.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("coinpaprika: upstream status %d", e.Status)
}

// BadRequestError is a caller mistake detected before any upstream call.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}
