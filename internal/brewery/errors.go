package brewery

import "fmt"

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("brewery api transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a response outside the 2xx range.
type APIError struct {
	Status int
}

func (e *APIError) Error() string { return fmt.Sprintf("API error: %d", e.Status) }

// ParseError means the body was not a JSON array of breweries.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("brewery api parse: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }
