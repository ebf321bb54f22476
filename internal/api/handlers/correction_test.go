package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/RMahshie/adscorr/internal/processing"
	"github.com/RMahshie/adscorr/internal/thermo"
	"github.com/RMahshie/adscorr/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCalculationRepository implements repository.CalculationRepository for testing
type MockCalculationRepository struct {
	mock.Mock
}

func (m *MockCalculationRepository) Create(ctx context.Context, calc *models.Calculation) error {
	args := m.Called(ctx, calc)
	return args.Error(0)
}

func (m *MockCalculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Calculation, error) {
	args := m.Called(ctx, id)
	calc, _ := args.Get(0).(*models.Calculation)
	return calc, args.Error(1)
}

func (m *MockCalculationRepository) List(ctx context.Context, limit int) ([]*models.Calculation, error) {
	args := m.Called(ctx, limit)
	calcs, _ := args.Get(0).([]*models.Calculation)
	return calcs, args.Error(1)
}

// MockS3Service implements storage.S3Service for testing
type MockS3Service struct {
	mock.Mock
}

func (m *MockS3Service) GenerateUploadURL(ctx context.Context, key string, contentType string) (string, error) {
	args := m.Called(ctx, key, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockS3Service) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// MockCorrectionService implements processing.CorrectionService for testing
type MockCorrectionService struct {
	mock.Mock
}

func (m *MockCorrectionService) Correct(ctx context.Context, req processing.Request) (*models.Calculation, error) {
	args := m.Called(ctx, req)
	calc, _ := args.Get(0).(*models.Calculation)
	return calc, args.Error(1)
}

func correctionRequest() *models.CreateCorrectionRequest {
	return &models.CreateCorrectionRequest{
		Body: models.CorrectionRequestBody{
			Sources: models.Sources{
				Final:    "s3://frequencies/final.dat",
				Isolated: "s3://frequencies/co.dat",
				Surface:  "s3://frequencies/pt111.dat",
			},
			E0K:         -1.2,
			Temperature: 298.15,
			Linear:      true,
		},
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se), "expected a huma status error, got %v", err)
	return se.GetStatus()
}

func TestCreateCorrection(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "computed", wantStatus: 200},
		{name: "invalid temperature", serviceErr: fmt.Errorf("%w: got 0", thermo.ErrNonPositiveTemperature), wantStatus: 400},
		{name: "zero frequency", serviceErr: thermo.ErrZeroFrequency, wantStatus: 400},
		{name: "unloadable source", serviceErr: &processing.LoadError{Source: "s3://frequencies/final.dat", Err: assert.AnError}, wantStatus: 422},
		{name: "storage failure", serviceErr: assert.AnError, wantStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCorrectionService{}
			req := correctionRequest()

			expected := processing.Request{
				Sources:     req.Body.Sources,
				E0K:         req.Body.E0K,
				Temperature: req.Body.Temperature,
				Linear:      req.Body.Linear,
			}
			if tt.serviceErr != nil {
				svc.On("Correct", mock.Anything, expected).Return(nil, tt.serviceErr)
			} else {
				svc.On("Correct", mock.Anything, expected).Return(&models.Calculation{
					ID:          "c0ffee00-0000-0000-0000-000000000000",
					Temperature: 298.15,
					Modes:       models.ModeCounts{Final: 12, Isolated: 1, Surface: 9},
					Result:      models.Result{Corrected: -1.1},
					CreatedAt:   time.Now(),
				}, nil)
			}

			handler := NewCorrectionHandler(nil, nil, svc)
			resp, err := handler.CreateCorrection(context.Background(), req)

			if tt.wantStatus == 200 {
				require.NoError(t, err)
				assert.Equal(t, -1.1, resp.Body.Result.Corrected)
				assert.Equal(t, 12, resp.Body.Modes.Final)
				assert.NotEmpty(t, resp.Body.ID)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestGetCorrection(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		id         string
		mockSetup  func(*MockCalculationRepository)
		wantStatus int
	}{
		{
			name: "found",
			id:   id.String(),
			mockSetup: func(m *MockCalculationRepository) {
				m.On("GetByID", mock.Anything, id).Return(&models.Calculation{ID: id.String()}, nil)
			},
			wantStatus: 200,
		},
		{
			name:       "invalid id",
			id:         "not-a-uuid",
			mockSetup:  func(m *MockCalculationRepository) {},
			wantStatus: 400,
		},
		{
			name: "not found",
			id:   id.String(),
			mockSetup: func(m *MockCalculationRepository) {
				m.On("GetByID", mock.Anything, id).Return(nil, sql.ErrNoRows)
			},
			wantStatus: 404,
		},
		{
			name: "database failure",
			id:   id.String(),
			mockSetup: func(m *MockCalculationRepository) {
				m.On("GetByID", mock.Anything, id).Return(nil, assert.AnError)
			},
			wantStatus: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockCalculationRepository{}
			tt.mockSetup(repo)

			handler := NewCorrectionHandler(repo, nil, &MockCorrectionService{})
			resp, err := handler.GetCorrection(context.Background(), &models.GetCorrectionRequest{ID: tt.id})

			if tt.wantStatus == 200 {
				require.NoError(t, err)
				assert.Equal(t, id.String(), resp.Body.ID)
			} else {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCreateCorrection_LoadErrorHidesCause(t *testing.T) {
	svc := &MockCorrectionService{}
	cause := fmt.Errorf("open /root/.ssh/id_rsa: no such file or directory")
	svc.On("Correct", mock.Anything, mock.Anything).Return(nil, &processing.LoadError{Source: "s3://frequencies/final.dat", Err: cause})

	_, err := NewCorrectionHandler(nil, nil, svc).CreateCorrection(context.Background(), correctionRequest())
	require.Error(t, err)
	assert.Equal(t, 422, statusOf(t, err))

	var model *huma.ErrorModel
	require.True(t, errors.As(err, &model))
	assert.Empty(t, model.Errors)
	assert.NotContains(t, model.Detail, "id_rsa")
}

func TestListCorrections(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		wantLimit  int
		result     []*models.Calculation
		repoErr    error
		wantStatus int
		wantCount  int
	}{
		{
			name:       "returns stored calculations",
			limit:      2,
			wantLimit:  2,
			result:     []*models.Calculation{{ID: "b"}, {ID: "a"}},
			wantStatus: 200,
			wantCount:  2,
		},
		{
			name:       "empty store gives empty list",
			limit:      5,
			wantLimit:  5,
			wantStatus: 200,
			wantCount:  0,
		},
		{
			name:       "unset limit uses default",
			wantLimit:  20,
			result:     []*models.Calculation{{ID: "a"}},
			wantStatus: 200,
			wantCount:  1,
		},
		{
			name:       "database failure",
			limit:      5,
			wantLimit:  5,
			repoErr:    assert.AnError,
			wantStatus: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockCalculationRepository{}
			repo.On("List", mock.Anything, tt.wantLimit).Return(tt.result, tt.repoErr)

			handler := NewCorrectionHandler(repo, nil, &MockCorrectionService{})
			resp, err := handler.ListCorrections(context.Background(), &models.ListCorrectionsRequest{Limit: tt.limit})

			if tt.wantStatus == 200 {
				require.NoError(t, err)
				assert.NotNil(t, resp.Body)
				assert.Len(t, resp.Body, tt.wantCount)
			} else {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestListCorrections_WithoutPersistence(t *testing.T) {
	handler := NewCorrectionHandler(nil, nil, &MockCorrectionService{})
	_, err := handler.ListCorrections(context.Background(), &models.ListCorrectionsRequest{Limit: 10})
	assert.Equal(t, 501, statusOf(t, err))
}

func TestGetCorrection_WithoutPersistence(t *testing.T) {
	handler := NewCorrectionHandler(nil, nil, &MockCorrectionService{})
	_, err := handler.GetCorrection(context.Background(), &models.GetCorrectionRequest{ID: uuid.NewString()})
	assert.Equal(t, 501, statusOf(t, err))
}

func TestCreateFrequencyFile(t *testing.T) {
	s3 := &MockS3Service{}
	s3.On("GenerateUploadURL", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "frequencies/") && strings.HasSuffix(key, "/co.dat")
	}), "text/plain").Return("https://example.com/upload", nil)

	req := &models.CreateFrequencyFileRequest{}
	req.Body.Name = "../../co.dat"
	req.Body.ContentType = "text/plain"

	handler := NewCorrectionHandler(nil, s3, &MockCorrectionService{})
	resp, err := handler.CreateFrequencyFile(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Body.Source, "s3://frequencies/"))
	assert.Equal(t, "https://example.com/upload", resp.Body.UploadURL)
	assert.Equal(t, 900, resp.Body.ExpiresIn)
	s3.AssertExpectations(t)
}

func TestCreateFrequencyFile_Errors(t *testing.T) {
	req := &models.CreateFrequencyFileRequest{}
	req.Body.Name = "co.dat"
	req.Body.ContentType = "text/plain"

	_, err := NewCorrectionHandler(nil, nil, &MockCorrectionService{}).CreateFrequencyFile(context.Background(), req)
	assert.Equal(t, 501, statusOf(t, err))

	s3 := &MockS3Service{}
	s3.On("GenerateUploadURL", mock.Anything, mock.Anything, "text/plain").Return("", assert.AnError)
	_, err = NewCorrectionHandler(nil, s3, &MockCorrectionService{}).CreateFrequencyFile(context.Background(), req)
	assert.Equal(t, 500, statusOf(t, err))
	assert.NotContains(t, err.Error(), assert.AnError.Error())
}
