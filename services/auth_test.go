package services

import (
	"testing"

	"shipment-proof-service/core"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(testLogger(), db, "test-secret", 24)

	user, err := svc.Register("Acme Logistics", "ops@acme.test", "s3cure-pass")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.OrganizationID == "" {
		t.Error("registered user should belong to an organization")
	}
	if user.PasswordHash == "s3cure-pass" {
		t.Error("password must not be stored in the clear")
	}

	token, err := svc.Login("ops@acme.test", "s3cure-pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != user.ID || claims.OrganizationID != user.OrganizationID {
		t.Errorf("claims = %s/%s, want %s/%s",
			claims.UserID, claims.OrganizationID, user.ID, user.OrganizationID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(testLogger(), db, "test-secret", 24)

	if _, err := svc.Register("Acme Logistics", "ops@acme.test", "s3cure-pass"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.Login("ops@acme.test", "wrong"); !core.IsKind(err, core.KindInvalidArgument) {
		t.Errorf("wrong password: got %v, want InvalidArgument", err)
	}
	if _, err := svc.Login("nobody@acme.test", "s3cure-pass"); !core.IsKind(err, core.KindInvalidArgument) {
		t.Errorf("unknown email: got %v, want InvalidArgument", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(testLogger(), db, "test-secret", 24)

	if _, err := svc.Register("Acme Logistics", "ops@acme.test", "s3cure-pass"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Register("Other Org", "ops@acme.test", "another-pass"); !core.IsKind(err, core.KindConflict) {
		t.Errorf("duplicate email: got %v, want Conflict", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(testLogger(), db, "test-secret", 24)

	if _, err := svc.Register("", "ops@acme.test", "s3cure-pass"); !core.IsKind(err, core.KindInvalidArgument) {
		t.Errorf("empty org name: got %v, want InvalidArgument", err)
	}
	if _, err := svc.Register("Acme", "ops@acme.test", "short"); !core.IsKind(err, core.KindInvalidArgument) {
		t.Errorf("short password: got %v, want InvalidArgument", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(testLogger(), db, "test-secret", 24)

	if _, err := svc.ParseToken("not-a-jwt"); err == nil {
		t.Error("garbage token should not parse")
	}

	other := NewAuthService(testLogger(), db, "other-secret", 24)
	if _, err := svc.Register("Acme", "ops@acme.test", "s3cure-pass"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	token, err := svc.Login("ops@acme.test", "s3cure-pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Error("token signed with a different secret should not parse")
	}
}
