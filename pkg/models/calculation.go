package models

import (
	"time"
)

// Calculation is a persisted temperature-corrected adsorption energy
type Calculation struct {
	ID          string     `json:"id"`
	Sources     Sources    `json:"sources"`
	E0K         float64    `json:"e0k"`
	Temperature float64    `json:"temperature"`
	Linear      bool       `json:"linear"`
	Modes       ModeCounts `json:"modes"`
	Result      Result     `json:"result"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Result holds the corrected energy and each intermediate correction in eV
type Result struct {
	VibFinal      float64 `json:"vib_final" doc:"Vibrational correction of the final state in eV"`
	VibIsolated   float64 `json:"vib_isolated" doc:"Vibrational correction of the isolated molecule in eV"`
	VibSurface    float64 `json:"vib_surface" doc:"Vibrational correction of the clean surface in eV"`
	Rotational    float64 `json:"rotational" doc:"Rotational correction in eV"`
	Translational float64 `json:"translational" doc:"Translational correction in eV"`
	Corrected     float64 `json:"corrected" doc:"Corrected adsorption energy in eV"`
}
