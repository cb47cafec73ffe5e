package entities

import "errors"

// Order lives for the duration of a single compute request: it is built
// from the inbound body and discarded once the response is written.
type Order struct {
	OrderID         int
	ProductID       int
	Quantity        int
	Subtotal        float64
	ShippingAddress string
	ShippingZip     string
	Total           float64
}

var (
	// ErrRateServiceUnreachable covers connect, DNS, TLS and timeout
	// failures before any response is received.
	ErrRateServiceUnreachable = errors.New("cannot connect to sales tax rate service")

	// ErrRateServiceUnreadable means the connection succeeded but the
	// response body could not be read in full.
	ErrRateServiceUnreadable = errors.New("cannot read response from sales tax rate service")

	// ErrNoRateForZip means the rate service answered with something
	// that does not parse as a decimal rate.
	ErrNoRateForZip = errors.New("no sales tax rate for zip code")
)
