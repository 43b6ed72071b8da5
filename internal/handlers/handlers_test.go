package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"freelancehub_backend/internal/handlers"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("development")
	os.Exit(m.Run())
}

// newTestRouter builds a minimal router around a single handler. The db
// handle is nil on purpose: the stub services below never touch it, but
// DBMiddleware still has to run so BaseHandler.GetDB finds its key.
func newTestRouter(register func(r *gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.DBMiddleware(nil))
	register(r.Group(""))
	return r
}

func newBase() *handlers.BaseHandler {
	return handlers.NewBaseHandler(validator.New())
}

func sendJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, w.Body.String()
}

// sendRawJSON posts a literal body, for malformed-payload cases that
// json.Marshal could never produce.
func sendRawJSON(t *testing.T, r *gin.Engine, method, path, raw string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, w.Body.String()
}

func decodeBody(t *testing.T, body string) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

// --- Hand-written service stubs. Function fields keep each test's
// behavior next to its assertions. ---

type stubUserService struct {
	getUserIDByEmail func(email string) (string, error)
}

func (s *stubUserService) GetUserIDByEmail(_ context.Context, _ *gorm.DB, email string) (string, error) {
	return s.getUserIDByEmail(email)
}

type stubProfileService struct {
	create func(req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	get    func(userID string) (*dto.ProfileResponse, []dto.PortfolioItemResponse, error)
	update func(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, []dto.PortfolioItemResponse, error)
}

func (s *stubProfileService) CreateProfile(_ context.Context, _ *gorm.DB, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	return s.create(req)
}

func (s *stubProfileService) GetProfile(_ context.Context, _ *gorm.DB, userID string) (*dto.ProfileResponse, []dto.PortfolioItemResponse, error) {
	return s.get(userID)
}

func (s *stubProfileService) UpdateProfile(_ context.Context, _ *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, []dto.PortfolioItemResponse, error) {
	return s.update(userID, req)
}

type stubPortfolioService struct {
	add        func(userID string, req *dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	list       func(userID string) ([]dto.PortfolioItemResponse, error)
	update     func(userID, itemID string, req *dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	deleteItem func(userID, itemID string) error
}

func (s *stubPortfolioService) AddItem(_ context.Context, _ *gorm.DB, userID string, req *dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	return s.add(userID, req)
}

func (s *stubPortfolioService) ListItems(_ context.Context, _ *gorm.DB, userID string) ([]dto.PortfolioItemResponse, error) {
	return s.list(userID)
}

func (s *stubPortfolioService) UpdateItem(_ context.Context, _ *gorm.DB, userID, itemID string, req *dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	return s.update(userID, itemID, req)
}

func (s *stubPortfolioService) DeleteItem(_ context.Context, _ *gorm.DB, userID, itemID string) error {
	return s.deleteItem(userID, itemID)
}

type stubSkillsService struct {
	all     func() ([]string, error)
	user    func(userID string) ([]string, error)
	replace func(userID string, newSkills []string) ([]string, error)
	add     func(userID, skill string) ([]string, bool, error)
	remove  func(userID, skill string) ([]string, error)
}

func (s *stubSkillsService) GetAllSkills(_ context.Context, _ *gorm.DB) ([]string, error) {
	return s.all()
}

func (s *stubSkillsService) GetUserSkills(_ context.Context, _ *gorm.DB, userID string) ([]string, error) {
	return s.user(userID)
}

func (s *stubSkillsService) ReplaceSkills(_ context.Context, _ *gorm.DB, userID string, newSkills []string) ([]string, error) {
	return s.replace(userID, newSkills)
}

func (s *stubSkillsService) AddSkill(_ context.Context, _ *gorm.DB, userID, skill string) ([]string, bool, error) {
	return s.add(userID, skill)
}

func (s *stubSkillsService) RemoveSkill(_ context.Context, _ *gorm.DB, userID, skill string) ([]string, error) {
	return s.remove(userID, skill)
}
