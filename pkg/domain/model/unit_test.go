package model_test

import (
	"testing"

	"github.com/m-mizutani/tempbridge/pkg/domain/model"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Unit
		valid bool
	}{
		{
			name:  "Lowercase celsius",
			input: "celsius",
			want:  model.UnitCelsius,
			valid: true,
		},
		{
			name:  "Uppercase fahrenheit",
			input: "FAHRENHEIT",
			want:  model.UnitFahrenheit,
			valid: true,
		},
		{
			name:  "Whitespace around unit",
			input: " celsius ",
			want:  model.UnitCelsius,
			valid: true,
		},
		{
			name:  "Unknown unit",
			input: "kelvin",
			want:  model.Unit("kelvin"),
			valid: false,
		},
		{
			name:  "Empty string",
			input: "",
			want:  model.Unit(""),
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ParseUnit(tt.input)
			if got != tt.want {
				t.Errorf("ParseUnit() = %v, want %v", got, tt.want)
			}
			if got.IsValid() != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got.IsValid(), tt.valid)
			}
		})
	}
}

func TestUnit_Opposite(t *testing.T) {
	if got := model.UnitCelsius.Opposite(); got != model.UnitFahrenheit {
		t.Errorf("Opposite() = %v, want %v", got, model.UnitFahrenheit)
	}
	if got := model.UnitFahrenheit.Opposite(); got != model.UnitCelsius {
		t.Errorf("Opposite() = %v, want %v", got, model.UnitCelsius)
	}
}

func TestUnit_Symbol(t *testing.T) {
	if got := model.UnitCelsius.Symbol(); got != "°C" {
		t.Errorf("Symbol() = %v, want °C", got)
	}
	if got := model.UnitFahrenheit.Symbol(); got != "°F" {
		t.Errorf("Symbol() = %v, want °F", got)
	}
}
