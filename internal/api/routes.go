package api

import (
	"net/http"

	"github.com/RMahshie/adscorr/internal/api/handlers"
	"github.com/RMahshie/adscorr/internal/processing"
	"github.com/RMahshie/adscorr/internal/repository"
	"github.com/RMahshie/adscorr/internal/storage"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, calcRepo repository.CalculationRepository, s3Service storage.S3Service, correctionSvc processing.CorrectionService) {
	correctionHandler := handlers.NewCorrectionHandler(calcRepo, s3Service, correctionSvc)

	huma.Register(api, huma.Operation{
		OperationID: "createCorrection",
		Method:      http.MethodPost,
		Path:        "/api/corrections",
		Summary:     "Correct an adsorption energy",
		Description: "Computes the finite-temperature adsorption energy from a 0 K energy and three frequency sets",
		Tags:        []string{"Corrections"},
	}, correctionHandler.CreateCorrection)

	huma.Register(api, huma.Operation{
		OperationID: "listCorrections",
		Method:      http.MethodGet,
		Path:        "/api/corrections",
		Summary:     "List stored corrections",
		Description: "Returns the most recent stored corrections, newest first",
		Tags:        []string{"Corrections"},
	}, correctionHandler.ListCorrections)

	huma.Register(api, huma.Operation{
		OperationID: "getCorrection",
		Method:      http.MethodGet,
		Path:        "/api/corrections/{id}",
		Summary:     "Get a stored correction",
		Description: "Returns a previously computed correction with its inputs",
		Tags:        []string{"Corrections"},
	}, correctionHandler.GetCorrection)

	huma.Register(api, huma.Operation{
		OperationID: "createFrequencyFile",
		Method:      http.MethodPost,
		Path:        "/api/frequency-files",
		Summary:     "Upload a frequency file",
		Description: "Returns a pre-signed upload URL and the s3:// source to reference the file by",
		Tags:        []string{"Frequency files"},
	}, correctionHandler.CreateFrequencyFile)
}
