package sharelinks

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shipment-proof-service/models"
	"shipment-proof-service/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Organization{},
		&models.Shipment{},
		&models.ProofVideo{},
		&models.ShareLink{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestExecuteRemovesExpiredLinks(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewShareLinkService(zap.NewNop(), db)
	worker := NewWorker(zap.NewNop(), svc, "@hourly")

	shipment := &models.Shipment{
		ID: uuid.NewString(), AWB: "AWB1", OrganizationID: uuid.NewString(),
		CreatedByID: uuid.NewString(), Status: models.StatusSealed,
	}
	if err := db.Create(shipment).Error; err != nil {
		t.Fatal(err)
	}
	video := &models.ProofVideo{
		ID: uuid.NewString(), ShipmentID: shipment.ID,
		VideoURL: "/media/a.mp4", UploadedBy: uuid.NewString(),
	}
	if err := db.Create(video).Error; err != nil {
		t.Fatal(err)
	}

	expired := &models.ShareLink{
		ID: uuid.NewString(), Token: uuid.NewString(), ProofVideoID: video.ID,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	live := &models.ShareLink{
		ID: uuid.NewString(), Token: uuid.NewString(), ProofVideoID: video.ID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	if err := db.Create(expired).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(live).Error; err != nil {
		t.Fatal(err)
	}

	worker.Execute()

	var count int64
	db.Model(&models.ShareLink{}).Count(&count)
	if count != 1 {
		t.Errorf("links remaining = %d, want 1", count)
	}
}

func TestScheduleAndReady(t *testing.T) {
	worker := NewWorker(zap.NewNop(), nil, "*/15 * * * *")

	if worker.Schedule() != "*/15 * * * *" {
		t.Errorf("Schedule() = %s", worker.Schedule())
	}
	if !worker.Ready(time.Now()) {
		t.Error("fresh worker should be ready")
	}
	worker.busy = true
	if worker.Ready(time.Now()) {
		t.Error("busy worker should not be ready")
	}
}
