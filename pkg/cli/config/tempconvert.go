package config

import (
	"time"

	"github.com/m-mizutani/tempbridge/pkg/infra/tempconvert"
	"github.com/urfave/cli/v3"
)

// TempConvert holds configuration for the remote SOAP conversion service
type TempConvert struct {
	WSDL    string
	Timeout time.Duration
}

// Flags returns CLI flags for remote service configuration
func (c *TempConvert) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tempconvert-wsdl",
			Usage:       "WSDL URL of the temperature conversion service",
			Value:       tempconvert.DefaultWSDL,
			Destination: &c.WSDL,
			Sources:     cli.EnvVars("TEMPBRIDGE_TEMPCONVERT_WSDL"),
		},
		&cli.DurationFlag{
			Name:        "tempconvert-timeout",
			Usage:       "Timeout for each outbound SOAP exchange",
			Value:       10 * time.Second,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("TEMPBRIDGE_TEMPCONVERT_TIMEOUT"),
		},
	}
}
