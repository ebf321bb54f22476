package thermo

// Physical constants used by the correction formulas
const (
	Planck       = 4.135667696e-15     // eV·s
	SpeedOfLight = 2.99792458e10       // cm/s
	Boltzmann    = 8.617333262145e-5   // eV/K
	GasConstant  = 8.31446261815324e-5 // eV/K
)
