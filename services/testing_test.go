package services

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shipment-proof-service/models"
)

// newTestDB opens a private in-memory database with the full schema, so
// unique indexes and transactions behave like the real store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Shipment{},
		&models.ProofVideo{},
		&models.ShareLink{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestShipment(t *testing.T, db *gorm.DB, organizationID string, status models.ShipmentStatus) *models.Shipment {
	t.Helper()

	shipment := &models.Shipment{
		ID:             uuid.NewString(),
		AWB:            "AWB-" + uuid.NewString()[:8],
		OrganizationID: organizationID,
		CreatedByID:    uuid.NewString(),
		Status:         status,
	}
	if err := db.Create(shipment).Error; err != nil {
		t.Fatalf("failed to create test shipment: %v", err)
	}
	return shipment
}

func newTestVideo(t *testing.T, db *gorm.DB, shipmentID string) *models.ProofVideo {
	t.Helper()

	video := &models.ProofVideo{
		ID:         uuid.NewString(),
		ShipmentID: shipmentID,
		VideoURL:   "/media/" + uuid.NewString() + ".mp4",
		UploadedBy: uuid.NewString(),
	}
	if err := db.Create(video).Error; err != nil {
		t.Fatalf("failed to create test video: %v", err)
	}
	return video
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
