package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"shipment-proof-service/core"
	"shipment-proof-service/models"
)

func TestCreateShipment(t *testing.T) {
	db := newTestDB(t)
	svc := NewLifecycleService(testLogger(), db)
	orgA := uuid.NewString()
	orgB := uuid.NewString()

	shipment, err := svc.CreateShipment(orgA, uuid.NewString(), "AWB1")
	if err != nil {
		t.Fatalf("CreateShipment failed: %v", err)
	}
	if shipment.Status != models.StatusCreated {
		t.Errorf("new shipment status = %s, want CREATED", shipment.Status)
	}

	// Same AWB in the same organization violates the composite uniqueness.
	if _, err := svc.CreateShipment(orgA, uuid.NewString(), "AWB1"); !core.IsKind(err, core.KindConflict) {
		t.Errorf("duplicate AWB in same org: got %v, want Conflict", err)
	}

	// The same AWB is fine in a different organization.
	if _, err := svc.CreateShipment(orgB, uuid.NewString(), "AWB1"); err != nil {
		t.Errorf("same AWB in other org should succeed, got %v", err)
	}

	if _, err := svc.CreateShipment(orgA, uuid.NewString(), ""); !core.IsKind(err, core.KindInvalidArgument) {
		t.Errorf("empty AWB: got %v, want InvalidArgument", err)
	}
}

func TestRequestTransitionTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewLifecycleService(testLogger(), db)
	org := uuid.NewString()

	statuses := []models.ShipmentStatus{
		models.StatusCreated, models.StatusRecording, models.StatusProcessing,
		models.StatusSealed, models.StatusFailed,
	}

	// Transitions succeed exactly when the requested status equals the
	// current one (idempotent no-op) or appears in its allowed-next set.
	for _, from := range statuses {
		for _, to := range statuses {
			shipment := newTestShipment(t, db, org, from)
			_, err := svc.RequestTransition(org, shipment.ID, to)

			wantOK := from == to || from.CanTransitionTo(to)
			if wantOK && err != nil {
				t.Errorf("%s -> %s: unexpected error %v", from, to, err)
			}
			if !wantOK && !core.IsKind(err, core.KindInvalidTransition) {
				t.Errorf("%s -> %s: got %v, want InvalidTransition", from, to, err)
			}
		}
	}
}

func TestRequestTransitionScenario(t *testing.T) {
	db := newTestDB(t)
	svc := NewLifecycleService(testLogger(), db)
	org := uuid.NewString()

	shipment, err := svc.CreateShipment(org, uuid.NewString(), "AWB1")
	if err != nil {
		t.Fatalf("CreateShipment failed: %v", err)
	}

	if _, err := svc.RequestTransition(org, shipment.ID, models.StatusRecording); err != nil {
		t.Fatalf("CREATED -> RECORDING failed: %v", err)
	}

	// Skipping PROCESSING is forbidden; the error carries the legal moves.
	_, err = svc.RequestTransition(org, shipment.ID, models.StatusSealed)
	if !core.IsKind(err, core.KindInvalidTransition) {
		t.Fatalf("RECORDING -> SEALED: got %v, want InvalidTransition", err)
	}
	var domainErr *core.Error
	if !errors.As(err, &domainErr) {
		t.Fatal("expected a domain error")
	}
	allowed, _ := domainErr.Details["allowedStatuses"].([]string)
	if len(allowed) != 2 || allowed[0] != "PROCESSING" || allowed[1] != "FAILED" {
		t.Errorf("allowedStatuses = %v, want [PROCESSING FAILED]", allowed)
	}

	if _, err := svc.RequestTransition(org, shipment.ID, models.StatusProcessing); err != nil {
		t.Fatalf("RECORDING -> PROCESSING failed: %v", err)
	}
}

func TestRequestTransitionIdempotentOnTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := NewLifecycleService(testLogger(), db)
	org := uuid.NewString()

	sealed := newTestShipment(t, db, org, models.StatusSealed)
	if _, err := svc.RequestTransition(org, sealed.ID, models.StatusSealed); err != nil {
		t.Errorf("SEALED -> SEALED should be a no-op, got %v", err)
	}

	failed := newTestShipment(t, db, org, models.StatusFailed)
	if _, err := svc.RequestTransition(org, failed.ID, models.StatusFailed); err != nil {
		t.Errorf("FAILED -> FAILED should be a no-op, got %v", err)
	}
}

func TestRequestTransitionUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewLifecycleService(testLogger(), db)
	org := uuid.NewString()
	shipment := newTestShipment(t, db, org, models.StatusCreated)

	if _, err := svc.RequestTransition(org, shipment.ID, "DELIVERED"); !core.IsKind(err, core.KindInvalidArgument) {
		t.Errorf("unknown status: got %v, want InvalidArgument", err)
	}
}

func TestRequestTransitionWrongOrganization(t *testing.T) {
	db := newTestDB(t)
	svc := NewLifecycleService(testLogger(), db)
	shipment := newTestShipment(t, db, uuid.NewString(), models.StatusCreated)

	_, err := svc.RequestTransition(uuid.NewString(), shipment.ID, models.StatusRecording)
	if !core.IsKind(err, core.KindNotFound) {
		t.Errorf("other org's shipment: got %v, want NotFound", err)
	}
}

func TestUpdateShipmentImmutableWhenTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := NewLifecycleService(testLogger(), db)
	org := uuid.NewString()

	for _, status := range []models.ShipmentStatus{models.StatusSealed, models.StatusFailed} {
		shipment := newTestShipment(t, db, org, status)
		_, err := svc.UpdateShipment(org, shipment.ID, "AWB-NEW")
		if !core.IsKind(err, core.KindImmutableEntity) {
			t.Errorf("update of %s shipment: got %v, want ImmutableEntity", status, err)
		}

		var stored models.Shipment
		if err := db.First(&stored, "id = ?", shipment.ID).Error; err != nil {
			t.Fatalf("failed to reload shipment: %v", err)
		}
		if stored.AWB != shipment.AWB {
			t.Errorf("terminal shipment AWB changed from %s to %s", shipment.AWB, stored.AWB)
		}
	}
}

func TestUpdateShipmentWhileActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewLifecycleService(testLogger(), db)
	org := uuid.NewString()
	shipment := newTestShipment(t, db, org, models.StatusRecording)

	updated, err := svc.UpdateShipment(org, shipment.ID, "AWB-NEW")
	if err != nil {
		t.Fatalf("UpdateShipment failed: %v", err)
	}
	if updated.AWB != "AWB-NEW" {
		t.Errorf("AWB = %s, want AWB-NEW", updated.AWB)
	}
}

// SealInTx must reject a seal based on a stale read: the shipment moved to
// FAILED after it was loaded.
func TestSealInTxRejectsStaleStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewLifecycleService(testLogger(), db)
	org := uuid.NewString()
	shipment := newTestShipment(t, db, org, models.StatusProcessing)

	observed, err := svc.GetShipment(org, shipment.ID)
	if err != nil {
		t.Fatalf("GetShipment failed: %v", err)
	}

	if err := db.Model(&models.Shipment{}).Where("id = ?", shipment.ID).
		Update("status", models.StatusFailed).Error; err != nil {
		t.Fatalf("failed to fail shipment behind the read: %v", err)
	}

	err = svc.SealInTx(db, observed)
	if !core.IsKind(err, core.KindConflict) {
		t.Errorf("stale seal: got %v, want Conflict", err)
	}
}
