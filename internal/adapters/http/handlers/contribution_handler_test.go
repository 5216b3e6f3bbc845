package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/config"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/services"
)

type contributionRepoMock struct {
	mock.Mock
}

func (m *contributionRepoMock) Create(ctx context.Context, contribution *models.SocietyContribution) error {
	args := m.Called(ctx, contribution)
	return args.Error(0)
}

func (m *contributionRepoMock) GetByID(ctx context.Context, id uint) (*models.SocietyContribution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SocietyContribution), args.Error(1)
}

func (m *contributionRepoMock) Update(ctx context.Context, contribution *models.SocietyContribution) error {
	args := m.Called(ctx, contribution)
	return args.Error(0)
}

func (m *contributionRepoMock) ListBySociety(ctx context.Context, societyID uint, monthYear string, offset, limit int) ([]*models.SocietyContribution, int64, error) {
	args := m.Called(ctx, societyID, monthYear, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.SocietyContribution), args.Get(1).(int64), args.Error(2)
}

func (m *contributionRepoMock) ListByMonth(ctx context.Context, societyID uint, monthYear string) ([]*models.SocietyContribution, error) {
	args := m.Called(ctx, societyID, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SocietyContribution), args.Error(1)
}

func newReceiptApp(repo *contributionRepoMock, uploadsDir string) *fiber.App {
	cfg := &config.Config{
		Uploads: config.UploadsConfig{Dir: uploadsDir, MaxSizeMB: 5},
	}
	svc := services.NewContributionService(repo, nil)
	h := NewContributionHandler(svc, cfg)

	app := fiber.New()
	app.Post("/contributions/:id/receipt", h.UploadReceipt)
	return app
}

func multipartReceipt(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("receipt", "receipt.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not-really-a-png"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadReceiptUnknownContributionWritesNothing(t *testing.T) {
	uploadsDir := t.TempDir()
	repo := new(contributionRepoMock)
	repo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound).Once()

	app := newReceiptApp(repo, uploadsDir)

	body, contentType := multipartReceipt(t)
	req := httptest.NewRequest("POST", "/contributions/404/receipt", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	entries, err := os.ReadDir(uploadsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	repo.AssertExpectations(t)
}

func TestUploadReceiptStoresFileAndAttaches(t *testing.T) {
	uploadsDir := t.TempDir()
	repo := new(contributionRepoMock)
	repo.On("GetByID", mock.Anything, uint(7)).Return(&models.SocietyContribution{
		ID:     7,
		Status: models.ContributionStatusPending,
	}, nil).Twice()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.SocietyContribution) bool {
		return c.ID == 7 && c.ReceiptFile != ""
	})).Return(nil).Once()

	app := newReceiptApp(repo, uploadsDir)

	body, contentType := multipartReceipt(t)
	req := httptest.NewRequest("POST", "/contributions/7/receipt", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	entries, err := os.ReadDir(uploadsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	repo.AssertExpectations(t)
}
