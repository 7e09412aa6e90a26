package model

import "strings"

// Unit represents a temperature unit accepted by the gateway
type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitFahrenheit Unit = "fahrenheit"
)

// ParseUnit normalizes a unit literal from a request
func ParseUnit(s string) Unit {
	return Unit(strings.ToLower(strings.TrimSpace(s)))
}

// IsValid checks if the unit is one of the two recognized literals
func (u Unit) IsValid() bool {
	return u == UnitCelsius || u == UnitFahrenheit
}

// Opposite returns the conversion target for the unit
func (u Unit) Opposite() Unit {
	if u == UnitCelsius {
		return UnitFahrenheit
	}
	return UnitCelsius
}

// Symbol returns the display symbol used in batch result lines
func (u Unit) Symbol() string {
	if u == UnitCelsius {
		return "°C"
	}
	return "°F"
}
