package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CorrectionRequestBody describes one correction to compute
type CorrectionRequestBody struct {
	Sources
	E0K         float64 `json:"e0k" required:"true" doc:"Adsorption energy at 0 K in eV"`
	Temperature float64 `json:"temperature" exclusiveMinimum:"0" required:"true" doc:"Temperature in Kelvin"`
	Linear      bool    `json:"linear" required:"false" doc:"Whether the adsorbing molecule is linear"`
}

// CreateCorrectionRequest represents a request to compute a corrected adsorption energy
type CreateCorrectionRequest struct {
	Body CorrectionRequestBody
}

// CorrectionResponseBody is the body of a correction response
type CorrectionResponseBody struct {
	ID          string     `json:"id,omitempty" doc:"Calculation identifier, empty when persistence is disabled"`
	Temperature float64    `json:"temperature" doc:"Temperature in Kelvin"`
	Modes       ModeCounts `json:"modes" doc:"Accepted frequency count per source"`
	Result      Result     `json:"result"`
	CreatedAt   time.Time  `json:"created_at" doc:"Calculation timestamp"`
}

// CreateCorrectionResponse represents the computed correction
type CreateCorrectionResponse struct {
	Body CorrectionResponseBody
}

// GetCorrectionRequest represents a request for a stored calculation
type GetCorrectionRequest struct {
	ID string `path:"id" doc:"Calculation ID"`
}

// GetCorrectionResponse represents a stored calculation
type GetCorrectionResponse struct {
	Body *Calculation
}

// ListCorrectionsRequest represents a request for recent stored calculations
type ListCorrectionsRequest struct {
	Limit int `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum number of calculations to return"`
}

// ListCorrectionsResponse represents recent stored calculations, newest first
type ListCorrectionsResponse struct {
	Body []*Calculation
}

// CreateFrequencyFileRequest represents a request to upload a frequency file
type CreateFrequencyFileRequest struct {
	Body struct {
		Name        string `json:"name" minLength:"1" maxLength:"200" required:"true" doc:"File name, used as the last key segment"`
		ContentType string `json:"content_type" enum:"text/plain,application/octet-stream" required:"true" doc:"Upload content type"`
	}
}

// CreateFrequencyFileResponseBody is the body of the upload response
type CreateFrequencyFileResponseBody struct {
	Source    string `json:"source" doc:"Reference to pass as a frequency source"`
	UploadURL string `json:"upload_url" doc:"Pre-signed S3 URL for file upload"`
	ExpiresIn int    `json:"expires_in" doc:"URL expiration time in seconds"`
}

// CreateFrequencyFileResponse represents the response from creating an upload
type CreateFrequencyFileResponse struct {
	Body CreateFrequencyFileResponseBody
}
