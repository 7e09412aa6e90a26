package model

// ConversionRequest is the body of a single conversion request. The value is
// kept as a string; numeric validation is the remote service's job.
type ConversionRequest struct {
	Temperature string `json:"temperature" validate:"required"`
}

// ConversionResult is the outcome of a single conversion
type ConversionResult struct {
	Original  string `json:"original"`
	Converted string `json:"converted"`
	FromUnit  Unit   `json:"from_unit"`
	ToUnit    Unit   `json:"to_unit"`
}

// BatchRequest is the body of a batch conversion request
type BatchRequest struct {
	Temperatures []string `json:"temperatures" validate:"required,min=1"`
	FromUnit     string   `json:"from_unit" validate:"required,oneof=celsius fahrenheit"`
}

// BatchResult holds per-item outcome lines in input order. Failed items are
// recorded as error marker lines; the batch itself never fails because of
// one item. TotalConverted + TotalErrors always equals the input length.
type BatchResult struct {
	Results        []string `json:"results"`
	TotalConverted int      `json:"total_converted"`
	TotalErrors    int      `json:"total_errors"`
}
