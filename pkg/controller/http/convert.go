package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tempbridge/pkg/domain/interfaces"
	"github.com/m-mizutani/tempbridge/pkg/domain/model"
	"github.com/m-mizutani/tempbridge/pkg/domain/types"
)

// ConvertHandler handles temperature conversion requests
type ConvertHandler struct {
	convertUC interfaces.ConvertUseCase
	validate  *validator.Validate
}

// NewConvertHandler creates a new ConvertHandler
func NewConvertHandler(convertUC interfaces.ConvertUseCase) *ConvertHandler {
	return &ConvertHandler{
		convertUC: convertUC,
		validate:  validator.New(),
	}
}

// HandleFahrenheitToCelsius processes Fahrenheit to Celsius requests
func (h *ConvertHandler) HandleFahrenheitToCelsius(w http.ResponseWriter, r *http.Request) {
	h.handleSingle(w, r, h.convertUC.ConvertFahrenheitToCelsius)
}

// HandleCelsiusToFahrenheit processes Celsius to Fahrenheit requests
func (h *ConvertHandler) HandleCelsiusToFahrenheit(w http.ResponseWriter, r *http.Request) {
	h.handleSingle(w, r, h.convertUC.ConvertCelsiusToFahrenheit)
}

type convertFunc func(ctx context.Context, value string) (*model.ConversionResult, error)

func (h *ConvertHandler) handleSingle(w http.ResponseWriter, r *http.Request, convert convertFunc) {
	ctx := r.Context()

	req, err := h.parseConversionRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := convert(ctx, req.Temperature)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// parseConversionRequest accepts either a JSON body (POST) or a
// `temperature` query parameter (GET)
func (h *ConvertHandler) parseConversionRequest(r *http.Request) (*model.ConversionRequest, error) {
	var req model.ConversionRequest

	if r.Method == http.MethodGet {
		req.Temperature = r.URL.Query().Get("temperature")
	} else {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, goerr.Wrap(err, "invalid JSON request body",
				goerr.T(types.ErrTagBadInput))
		}
	}

	if err := h.validate.Struct(&req); err != nil {
		return nil, goerr.Wrap(err, "temperature is required",
			goerr.T(types.ErrTagBadInput))
	}

	return &req, nil
}

// HandleBatch processes batch conversion requests
func (h *ConvertHandler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.BatchRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, goerr.Wrap(err, "invalid JSON request body",
			goerr.T(types.ErrTagBadInput)))
		return
	}

	// Unit literals are case-insensitive on the wire
	req.FromUnit = string(model.ParseUnit(req.FromUnit))

	if err := h.validate.Struct(&req); err != nil {
		writeError(ctx, w, goerr.Wrap(err, "invalid batch request",
			goerr.T(types.ErrTagBadInput)))
		return
	}

	result, err := h.convertUC.ConvertBatch(ctx, req.Temperatures, model.ParseUnit(req.FromUnit))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
