package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures of the conversion gateway. The HTTP
// controller maps them to status codes.
var (
	// ErrTagBadInput marks malformed or missing request fields (400)
	ErrTagBadInput = goerr.NewTag("bad_input")

	// ErrTagUnavailable marks an unreachable remote service or a failed
	// client initialization (503)
	ErrTagUnavailable = goerr.NewTag("service_unavailable")

	// ErrTagConversion marks a remote call that executed but returned a
	// fault or an unusable result (500)
	ErrTagConversion = goerr.NewTag("conversion_failure")
)
