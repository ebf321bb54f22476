package frequency

import "gonum.org/v1/gonum/floats"

// Summary describes a frequency list without repeating it
type Summary struct {
	Count int     `json:"count" doc:"Number of vibrational modes"`
	Min   float64 `json:"min" doc:"Lowest frequency in cm^-1"`
	Max   float64 `json:"max" doc:"Highest frequency in cm^-1"`
}

// Summarize returns the count and range of frequencies. Min and Max are zero for an empty list.
func Summarize(frequencies []float64) Summary {
	if len(frequencies) == 0 {
		return Summary{}
	}
	return Summary{
		Count: len(frequencies),
		Min:   floats.Min(frequencies),
		Max:   floats.Max(frequencies),
	}
}
