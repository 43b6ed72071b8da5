package services

import (
	"testing"

	"freelancehub_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB returns a gorm handle over sqlmock. Repositories are stubbed
// at the interface, so only transaction begin/commit/rollback statements
// ever reach the mock connection — which is exactly what these tests pin
// down: which check-then-write sequences commit and which never write.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

// --- Hand-written repository stubs, function fields per call. ---

type stubProfileRepo struct {
	create        func(profile *models.Profile) error
	findByUserID  func(userID string) (*models.Profile, error)
	updateColumns func(userID string, updates map[string]interface{}) error
	listRawSkills func() ([]string, error)
}

func (r *stubProfileRepo) Create(_ *gorm.DB, profile *models.Profile) error {
	return r.create(profile)
}

func (r *stubProfileRepo) FindByUserID(_ *gorm.DB, userID string) (*models.Profile, error) {
	return r.findByUserID(userID)
}

func (r *stubProfileRepo) UpdateColumns(_ *gorm.DB, userID string, updates map[string]interface{}) error {
	return r.updateColumns(userID, updates)
}

func (r *stubProfileRepo) ListRawSkills(_ *gorm.DB) ([]string, error) {
	return r.listRawSkills()
}

type stubUserRepo struct {
	findByEmail func(email string) (*models.User, error)
	findByID    func(id string) (*models.User, error)
}

func (r *stubUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	return r.findByEmail(email)
}

func (r *stubUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	return r.findByID(id)
}

type stubPortfolioRepo struct {
	create               func(item *models.PortfolioItem) error
	listByProfileID      func(profileID string) ([]models.PortfolioItem, error)
	findByIDAndProfileID func(itemID, profileID string) (*models.PortfolioItem, error)
	updateColumns        func(itemID string, updates map[string]interface{}) error
	deleteItem           func(itemID string) error
}

func (r *stubPortfolioRepo) Create(_ *gorm.DB, item *models.PortfolioItem) error {
	return r.create(item)
}

func (r *stubPortfolioRepo) ListByProfileID(_ *gorm.DB, profileID string) ([]models.PortfolioItem, error) {
	return r.listByProfileID(profileID)
}

func (r *stubPortfolioRepo) FindByIDAndProfileID(_ *gorm.DB, itemID, profileID string) (*models.PortfolioItem, error) {
	return r.findByIDAndProfileID(itemID, profileID)
}

func (r *stubPortfolioRepo) UpdateColumns(_ *gorm.DB, itemID string, updates map[string]interface{}) error {
	return r.updateColumns(itemID, updates)
}

func (r *stubPortfolioRepo) Delete(_ *gorm.DB, itemID string) error {
	return r.deleteItem(itemID)
}
