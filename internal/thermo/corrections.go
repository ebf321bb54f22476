package thermo

import "math"

// Vibrational returns the vibrational correction in eV for frequencies given in cm^-1.
// Each mode contributes a zero-point term and a thermal occupation term, both scaled
// by r/Boltzmann. The temperature must be positive and no frequency may be zero,
// otherwise the result is Inf or NaN.
func Vibrational(frequencies []float64, temperature, r float64) float64 {
	energy := 0.0
	for _, freq := range frequencies {
		hv := Planck * (freq * SpeedOfLight)
		energy += r*(hv/(2*Boltzmann)) + (r/Boltzmann)*hv/(math.Exp(hv/(Boltzmann*temperature))-1)
	}
	return energy
}

// Rotational returns R*T for linear molecules and 1.5*R*T otherwise
func Rotational(temperature float64, linear bool, r float64) float64 {
	if linear {
		return r * temperature
	}
	return 1.5 * r * temperature
}

// Translational returns 1.5*R*T
func Translational(temperature, r float64) float64 {
	return 1.5 * r * temperature
}
