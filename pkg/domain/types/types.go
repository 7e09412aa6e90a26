package types

// Version is the API version reported by the root and health endpoints.
// Overridden at build time via -ldflags.
var Version = "1.0.0"
