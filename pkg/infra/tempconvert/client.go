package tempconvert

import (
	"context"
	"encoding/xml"
	"net/http"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tempbridge/pkg/domain/interfaces"
	"github.com/m-mizutani/tempbridge/pkg/domain/types"
	"github.com/tiaguinho/gosoap"
)

// DefaultWSDL is the description endpoint of the W3Schools temperature
// conversion service
const DefaultWSDL = "https://www.w3schools.com/xml/tempconvert.asmx?WSDL"

// errorSentinel is what the remote service answers for non-numeric input.
// It is not a SOAP fault, so it must be caught by value.
const errorSentinel = "Error"

type client struct {
	wsdlURL    string
	httpClient *http.Client

	// gosoap mutates client state per call and fetches the WSDL at
	// construction, so the handle is built lazily and guarded by mu for
	// the whole call.
	mu   sync.Mutex
	soap *gosoap.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithWSDL overrides the WSDL endpoint URL
func WithWSDL(url string) Option {
	return func(c *client) {
		c.wsdlURL = url
	}
}

// WithTimeout bounds each outbound HTTP exchange, WSDL fetch included
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a SOAP client for the remote temperature conversion
// service. The WSDL is not fetched until the first conversion call, so
// construction succeeds even while the remote service is down.
func NewClient(opts ...Option) interfaces.TempConverter {
	c := &client{
		wsdlURL: DefaultWSDL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type fahrenheitToCelsiusResponse struct {
	XMLName xml.Name `xml:"FahrenheitToCelsiusResponse"`
	Result  string   `xml:"FahrenheitToCelsiusResult"`
}

type celsiusToFahrenheitResponse struct {
	XMLName xml.Name `xml:"CelsiusToFahrenheitResponse"`
	Result  string   `xml:"CelsiusToFahrenheitResult"`
}

// FahrenheitToCelsius invokes the remote FahrenheitToCelsius operation
func (c *client) FahrenheitToCelsius(ctx context.Context, value string) (string, error) {
	var resp fahrenheitToCelsiusResponse
	if err := c.call(ctx, "FahrenheitToCelsius", gosoap.Params{"Fahrenheit": value}, &resp); err != nil {
		return "", err
	}

	return validateResult(resp.Result, value)
}

// CelsiusToFahrenheit invokes the remote CelsiusToFahrenheit operation
func (c *client) CelsiusToFahrenheit(ctx context.Context, value string) (string, error) {
	var resp celsiusToFahrenheitResponse
	if err := c.call(ctx, "CelsiusToFahrenheit", gosoap.Params{"Celsius": value}, &resp); err != nil {
		return "", err
	}

	return validateResult(resp.Result, value)
}

// Ping checks reachability of the service description endpoint. No
// conversion operation is invoked.
func (c *client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.wsdlURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create reachability request",
			goerr.T(types.ErrTagUnavailable))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "temperature conversion service is unreachable",
			goerr.T(types.ErrTagUnavailable))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return goerr.New("temperature conversion service returned an error status",
			goerr.V("status", resp.StatusCode),
			goerr.T(types.ErrTagUnavailable))
	}

	return nil
}

// call performs a single SOAP operation and unmarshals the response body
// into out. The mutex spans the whole exchange because gosoap clients are
// not safe for concurrent calls.
func (c *client) call(ctx context.Context, operation string, params gosoap.Params, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "request cancelled before SOAP call",
			goerr.T(types.ErrTagUnavailable))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	soap, err := c.ensureClient()
	if err != nil {
		return err
	}

	res, err := soap.Call(operation, params)
	if err != nil {
		return goerr.Wrap(err, "SOAP call failed",
			goerr.V("operation", operation),
			goerr.T(types.ErrTagUnavailable))
	}

	if err := res.Unmarshal(out); err != nil {
		// Faults and malformed envelopes land here: the service answered,
		// but the conversion did not happen.
		return goerr.Wrap(err, "failed to decode SOAP response",
			goerr.V("operation", operation),
			goerr.T(types.ErrTagConversion))
	}

	return nil
}

// ensureClient initializes the gosoap handle on first use. Initialization
// fetches and parses the WSDL; a failure is retried on the next call.
// Caller must hold mu.
func (c *client) ensureClient() (*gosoap.Client, error) {
	if c.soap != nil {
		return c.soap, nil
	}

	soap, err := gosoap.SoapClient(c.wsdlURL, c.httpClient)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize SOAP client",
			goerr.V("wsdl", c.wsdlURL),
			goerr.T(types.ErrTagUnavailable))
	}

	c.soap = soap
	return soap, nil
}

func validateResult(result, original string) (string, error) {
	if result == "" || result == errorSentinel {
		return "", goerr.New("remote service could not convert the value",
			goerr.V("value", original),
			goerr.T(types.ErrTagConversion))
	}

	return result, nil
}
