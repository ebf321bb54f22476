package processing

import (
	"context"
	"fmt"
	"time"

	"github.com/RMahshie/adscorr/internal/frequency"
	"github.com/RMahshie/adscorr/internal/repository"
	"github.com/RMahshie/adscorr/internal/thermo"
	"github.com/RMahshie/adscorr/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LoadError reports a frequency source that could not be read or parsed
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load frequencies from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FrequencyLoader resolves a frequency reference to a frequency list
type FrequencyLoader interface {
	Load(ctx context.Context, ref string) ([]float64, error)
}

// Request describes one correction
type Request struct {
	Sources     models.Sources
	E0K         float64
	Temperature float64
	Linear      bool
}

type CorrectionService interface {
	Correct(ctx context.Context, req Request) (*models.Calculation, error)
}

type correctionService struct {
	loader     FrequencyLoader
	repository repository.CalculationRepository
	now        func() time.Time
}

// NewCorrectionService creates the service. repo may be nil to skip persistence.
func NewCorrectionService(loader FrequencyLoader, repo repository.CalculationRepository) CorrectionService {
	return &correctionService{
		loader:     loader,
		repository: repo,
		now:        time.Now,
	}
}

func (s *correctionService) Correct(ctx context.Context, req Request) (*models.Calculation, error) {
	if !(req.Temperature > 0) {
		return nil, fmt.Errorf("%w: got %g", thermo.ErrNonPositiveTemperature, req.Temperature)
	}

	// Step 1: Load the three frequency sets in input order
	refs := []string{req.Sources.Final, req.Sources.Isolated, req.Sources.Surface}
	sets := make([][]float64, len(refs))
	for i, ref := range refs {
		freqs, err := s.loader.Load(ctx, ref)
		if err != nil {
			return nil, &LoadError{Source: ref, Err: err}
		}
		summary := frequency.Summarize(freqs)
		log.Debug().
			Str("source", ref).
			Int("modes", summary.Count).
			Float64("min_cm1", summary.Min).
			Float64("max_cm1", summary.Max).
			Msg("Frequencies loaded")
		sets[i] = freqs
	}

	// Step 2: Compose corrections
	in := thermo.Input{
		E0K:         req.E0K,
		Temperature: req.Temperature,
		Final:       sets[0],
		Isolated:    sets[1],
		Surface:     sets[2],
		Linear:      req.Linear,
	}
	if err := thermo.Validate(in); err != nil {
		return nil, err
	}
	b := thermo.Compose(in)

	calc := &models.Calculation{
		Sources:     req.Sources,
		E0K:         req.E0K,
		Temperature: req.Temperature,
		Linear:      req.Linear,
		Modes: models.ModeCounts{
			Final:    len(sets[0]),
			Isolated: len(sets[1]),
			Surface:  len(sets[2]),
		},
		Result:    resultFromBreakdown(b),
		CreatedAt: s.now(),
	}

	log.Info().
		Float64("e0k", req.E0K).
		Float64("temperature", req.Temperature).
		Float64("corrected", b.Corrected).
		Msg("Adsorption energy corrected")

	// Step 3: Store the calculation when persistence is configured
	if s.repository == nil {
		return calc, nil
	}
	calc.ID = uuid.New().String()
	if err := s.repository.Create(ctx, calc); err != nil {
		return nil, fmt.Errorf("failed to store calculation: %w", err)
	}

	return calc, nil
}

// resultFromBreakdown copies a thermo breakdown into its API representation
func resultFromBreakdown(b thermo.Breakdown) models.Result {
	return models.Result{
		VibFinal:      b.VibFinal,
		VibIsolated:   b.VibIsolated,
		VibSurface:    b.VibSurface,
		Rotational:    b.Rotational,
		Translational: b.Translational,
		Corrected:     b.Corrected,
	}
}
