package interfaces

import (
	"context"

	"github.com/m-mizutani/tempbridge/pkg/domain/model"
)

// ConvertUseCase defines the conversion gateway operations
type ConvertUseCase interface {
	// ConvertFahrenheitToCelsius converts a single Fahrenheit value
	ConvertFahrenheitToCelsius(ctx context.Context, value string) (*model.ConversionResult, error)

	// ConvertCelsiusToFahrenheit converts a single Celsius value
	ConvertCelsiusToFahrenheit(ctx context.Context, value string) (*model.ConversionResult, error)

	// ConvertBatch converts a sequence of values from the given unit,
	// preserving input order. Individual item failures are recorded in the
	// result instead of aborting the batch.
	ConvertBatch(ctx context.Context, values []string, from model.Unit) (*model.BatchResult, error)

	// CheckHealth reports reachability of the remote service. It never
	// returns an error; unavailability is data, not a fault.
	CheckHealth(ctx context.Context) *model.HealthStatus
}
