package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/RMahshie/adscorr/internal/frequency"
	"github.com/RMahshie/adscorr/internal/processing"
	"github.com/RMahshie/adscorr/internal/repository"
	"github.com/RMahshie/adscorr/internal/storage"
	"github.com/RMahshie/adscorr/internal/thermo"
	"github.com/RMahshie/adscorr/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	uploadExpiry     = 15 * time.Minute
	defaultListLimit = 20
)

// CorrectionHandler handles correction-related HTTP requests
type CorrectionHandler struct {
	repo          repository.CalculationRepository
	s3Service     storage.S3Service
	correctionSvc processing.CorrectionService
}

// NewCorrectionHandler creates a new correction handler. repo and s3Service may be nil
// when persistence or object storage is not configured.
func NewCorrectionHandler(repo repository.CalculationRepository, s3Service storage.S3Service, correctionSvc processing.CorrectionService) *CorrectionHandler {
	return &CorrectionHandler{
		repo:          repo,
		s3Service:     s3Service,
		correctionSvc: correctionSvc,
	}
}

// CreateCorrection computes a temperature-corrected adsorption energy
func (h *CorrectionHandler) CreateCorrection(ctx context.Context, req *models.CreateCorrectionRequest) (*models.CreateCorrectionResponse, error) {
	log.Info().
		Float64("e0k", req.Body.E0K).
		Float64("temperature", req.Body.Temperature).
		Bool("linear", req.Body.Linear).
		Msg("Correction request received")

	calc, err := h.correctionSvc.Correct(ctx, processing.Request{
		Sources:     req.Body.Sources,
		E0K:         req.Body.E0K,
		Temperature: req.Body.Temperature,
		Linear:      req.Body.Linear,
	})
	if err != nil {
		var loadErr *processing.LoadError
		switch {
		case errors.Is(err, thermo.ErrNonPositiveTemperature), errors.Is(err, thermo.ErrZeroFrequency):
			return nil, huma.Error400BadRequest(err.Error())
		case errors.As(err, &loadErr):
			// The cause may carry host or storage details, so it is logged and not returned
			log.Warn().Err(err).Str("source", loadErr.Source).Msg("Frequency source could not be loaded")
			return nil, huma.Error422UnprocessableEntity(fmt.Sprintf("Could not load frequencies from %s", loadErr.Source))
		default:
			log.Error().Err(err).Msg("Correction failed")
			return nil, huma.Error500InternalServerError("Failed to compute correction")
		}
	}

	return &models.CreateCorrectionResponse{
		Body: models.CorrectionResponseBody{
			ID:          calc.ID,
			Temperature: calc.Temperature,
			Modes:       calc.Modes,
			Result:      calc.Result,
			CreatedAt:   calc.CreatedAt,
		},
	}, nil
}

// GetCorrection returns a stored calculation
func (h *CorrectionHandler) GetCorrection(ctx context.Context, req *models.GetCorrectionRequest) (*models.GetCorrectionResponse, error) {
	if h.repo == nil {
		return nil, huma.Error501NotImplemented("Persistence is not configured")
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid calculation ID", err)
	}

	calc, err := h.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, huma.Error404NotFound("Calculation not found", err)
	}
	if err != nil {
		log.Error().Err(err).Str("id", req.ID).Msg("Failed to load calculation")
		return nil, huma.Error500InternalServerError("Failed to load calculation")
	}

	return &models.GetCorrectionResponse{Body: calc}, nil
}

// ListCorrections returns the most recent stored calculations, newest first
func (h *CorrectionHandler) ListCorrections(ctx context.Context, req *models.ListCorrectionsRequest) (*models.ListCorrectionsResponse, error) {
	if h.repo == nil {
		return nil, huma.Error501NotImplemented("Persistence is not configured")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	calcs, err := h.repo.List(ctx, limit)
	if err != nil {
		log.Error().Err(err).Int("limit", limit).Msg("Failed to list calculations")
		return nil, huma.Error500InternalServerError("Failed to list calculations")
	}
	if calcs == nil {
		calcs = []*models.Calculation{}
	}

	return &models.ListCorrectionsResponse{Body: calcs}, nil
}

// CreateFrequencyFile returns an upload URL and the source reference for a new frequency file
func (h *CorrectionHandler) CreateFrequencyFile(ctx context.Context, req *models.CreateFrequencyFileRequest) (*models.CreateFrequencyFileResponse, error) {
	if h.s3Service == nil {
		return nil, huma.Error501NotImplemented("Object storage is not configured")
	}

	key := fmt.Sprintf("frequencies/%s/%s", uuid.New(), path.Base(req.Body.Name))
	uploadURL, err := h.s3Service.GenerateUploadURL(ctx, key, req.Body.ContentType)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to presign frequency file upload")
		return nil, huma.Error500InternalServerError("Failed to prepare upload")
	}
	log.Info().Str("key", key).Msg("Frequency file upload URL generated")

	return &models.CreateFrequencyFileResponse{
		Body: models.CreateFrequencyFileResponseBody{
			Source:    frequency.S3Prefix + key,
			UploadURL: uploadURL,
			ExpiresIn: int(uploadExpiry.Seconds()),
		},
	}, nil
}
