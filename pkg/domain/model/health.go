package model

// HealthStatus represents the health check status. Reachability of the
// remote SOAP service is recomputed on every call, never cached.
type HealthStatus struct {
	Status               string `json:"status"`
	SOAPServiceAvailable bool   `json:"soap_service_available"`
	Version              string `json:"version"`
}
