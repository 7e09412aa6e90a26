package interfaces

import "context"

// TempConverter defines operations for the remote SOAP temperature
// conversion service
type TempConverter interface {
	// FahrenheitToCelsius invokes the remote FahrenheitToCelsius operation
	// and returns the converted value as reported by the service
	FahrenheitToCelsius(ctx context.Context, value string) (string, error)

	// CelsiusToFahrenheit invokes the remote CelsiusToFahrenheit operation
	CelsiusToFahrenheit(ctx context.Context, value string) (string, error)

	// Ping performs a lightweight reachability check against the service
	// description endpoint without issuing a conversion call
	Ping(ctx context.Context) error
}
