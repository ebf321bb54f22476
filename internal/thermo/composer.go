package thermo

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Input holds everything needed to correct a 0 K adsorption energy
type Input struct {
	E0K         float64   // adsorption energy at 0 K in eV
	Temperature float64   // K
	Final       []float64 // surface + adsorbate frequencies in cm^-1
	Isolated    []float64 // isolated molecule frequencies in cm^-1
	Surface     []float64 // clean surface frequencies in cm^-1
	Linear      bool
}

// Breakdown is the corrected energy together with every intermediate correction
type Breakdown struct {
	Temperature   float64
	VibFinal      float64
	VibIsolated   float64
	VibSurface    float64
	Rotational    float64
	Translational float64
	Corrected     float64
}

// Compose computes all corrections for in using GasConstant.
// Rotational and translational terms are applied once, at the input temperature.
func Compose(in Input) Breakdown {
	b := Breakdown{
		Temperature:   in.Temperature,
		VibFinal:      Vibrational(in.Final, in.Temperature, GasConstant),
		VibIsolated:   Vibrational(in.Isolated, in.Temperature, GasConstant),
		VibSurface:    Vibrational(in.Surface, in.Temperature, GasConstant),
		Rotational:    Rotational(in.Temperature, in.Linear, GasConstant),
		Translational: Translational(in.Temperature, GasConstant),
	}
	b.Corrected = in.E0K + b.VibFinal - (b.VibIsolated + b.VibSurface + b.Translational + b.Rotational)
	return b
}

// CorrectAdsorptionEnergy composes in, writes the intermediate corrections to w
// and returns the corrected energy in eV.
func CorrectAdsorptionEnergy(w io.Writer, in Input) (float64, error) {
	b := Compose(in)
	if err := b.WriteTrace(w); err != nil {
		return 0, err
	}
	return b.Corrected, nil
}

// WriteTrace writes one line per intermediate correction, 3 decimals each
func (b Breakdown) WriteTrace(w io.Writer) error {
	t := FormatKelvin(b.Temperature)
	lines := []string{
		fmt.Sprintf("Calculated Vibrational Correction for Final State: %.3f eV", b.VibFinal),
		fmt.Sprintf("Calculated Vibrational Correction for Isolated Molecule: %.3f eV", b.VibIsolated),
		fmt.Sprintf("Calculated Vibrational Correction for Surface: %.3f eV", b.VibSurface),
		fmt.Sprintf("Calculated Rotational Correction at %s K: %.3f eV", t, b.Rotational),
		fmt.Sprintf("Calculated Translational Correction at %s K: %.3f eV", t, b.Translational),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write correction trace: %w", err)
		}
	}
	return nil
}

// FormatKelvin renders a temperature with the shortest digits that round-trip.
// Whole numbers keep one decimal (300 -> "300.0"), and exponents below -4 or
// from 16 up switch to exponent form (1e+16, 1e-05).
func FormatKelvin(t float64) string {
	switch {
	case math.IsNaN(t):
		return "nan"
	case math.IsInf(t, 1):
		return "inf"
	case math.IsInf(t, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(t, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return e
	}

	s := strconv.FormatFloat(t, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
