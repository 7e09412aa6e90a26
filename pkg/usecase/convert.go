package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tempbridge/pkg/domain/interfaces"
	"github.com/m-mizutani/tempbridge/pkg/domain/model"
	"github.com/m-mizutani/tempbridge/pkg/domain/types"
)

type convertUseCase struct {
	converter interfaces.TempConverter
}

// NewConvert creates a new instance of ConvertUseCase backed by the given
// remote converter
func NewConvert(converter interfaces.TempConverter) *convertUseCase {
	return &convertUseCase{
		converter: converter,
	}
}

// ConvertFahrenheitToCelsius converts a single Fahrenheit value
func (uc *convertUseCase) ConvertFahrenheitToCelsius(ctx context.Context, value string) (*model.ConversionResult, error) {
	return uc.convert(ctx, value, model.UnitFahrenheit)
}

// ConvertCelsiusToFahrenheit converts a single Celsius value
func (uc *convertUseCase) ConvertCelsiusToFahrenheit(ctx context.Context, value string) (*model.ConversionResult, error) {
	return uc.convert(ctx, value, model.UnitCelsius)
}

func (uc *convertUseCase) convert(ctx context.Context, value string, from model.Unit) (*model.ConversionResult, error) {
	if value == "" {
		return nil, goerr.New("temperature value is required",
			goerr.T(types.ErrTagBadInput))
	}

	converted, err := uc.invoke(ctx, value, from)
	if err != nil {
		return nil, err
	}

	return &model.ConversionResult{
		Original:  value,
		Converted: converted,
		FromUnit:  from,
		ToUnit:    from.Opposite(),
	}, nil
}

func (uc *convertUseCase) invoke(ctx context.Context, value string, from model.Unit) (string, error) {
	if from == model.UnitCelsius {
		return uc.converter.CelsiusToFahrenheit(ctx, value)
	}
	return uc.converter.FahrenheitToCelsius(ctx, value)
}

// ConvertBatch converts values sequentially in input order. A failed item
// becomes an error marker line and increments the error counter; it never
// aborts the rest of the batch.
func (uc *convertUseCase) ConvertBatch(ctx context.Context, values []string, from model.Unit) (*model.BatchResult, error) {
	if !from.IsValid() {
		return nil, goerr.New("from_unit must be 'celsius' or 'fahrenheit'",
			goerr.V("from_unit", string(from)),
			goerr.T(types.ErrTagBadInput))
	}
	if len(values) == 0 {
		return nil, goerr.New("no temperatures provided",
			goerr.T(types.ErrTagBadInput))
	}

	logger := ctxlog.From(ctx)

	result := &model.BatchResult{
		Results: make([]string, 0, len(values)),
	}

	for _, value := range values {
		converted, err := uc.invoke(ctx, value, from)
		if err != nil {
			logger.Warn("batch item conversion failed",
				"value", value,
				"from_unit", from,
				"error", err,
			)
			result.Results = append(result.Results,
				fmt.Sprintf("Error converting %s: %s", value, err.Error()))
			result.TotalErrors++
			continue
		}

		result.Results = append(result.Results,
			fmt.Sprintf("%s%s = %s%s", value, from.Symbol(), converted, from.Opposite().Symbol()))
		result.TotalConverted++
	}

	return result, nil
}

// CheckHealth probes the remote service description endpoint. Unreachability
// is reported as data; this operation never fails.
func (uc *convertUseCase) CheckHealth(ctx context.Context) *model.HealthStatus {
	available := true
	if err := uc.converter.Ping(ctx); err != nil {
		ctxlog.From(ctx).Warn("SOAP service health check failed", "error", err)
		available = false
	}

	status := "healthy"
	if !available {
		status = "degraded"
	}

	return &model.HealthStatus{
		Status:               status,
		SOAPServiceAvailable: available,
		Version:              types.Version,
	}
}
