package identity_test

import (
	"testing"

	"github.com/chalkroute/teacher_match/identity"
	"github.com/google/uuid"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"teacher", "school", "admin"} {
		role, err := identity.ParseRole(s)
		if err != nil {
			t.Errorf("ParseRole(%q) returned unexpected error: %v", s, err)
		}
		if string(role) != s {
			t.Errorf("ParseRole(%q) = %q", s, role)
		}
	}
	for _, s := range []string{"", "student", "ADMIN"} {
		if _, err := identity.ParseRole(s); err == nil {
			t.Errorf("ParseRole(%q) expected error, got nil", s)
		}
	}
}

func TestIssueAndParseToken(t *testing.T) {
	svc := identity.New("test-secret")
	userID := uuid.New()

	raw, err := svc.IssueToken(userID, identity.RoleSchool)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := svc.ParseToken(raw)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims["user_id"] != userID.String() {
		t.Errorf("user_id claim = %v, want %s", claims["user_id"], userID)
	}
	if claims["role"] != "school" {
		t.Errorf("role claim = %v, want school", claims["role"])
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	issuer := identity.New("secret-a")
	verifier := identity.New("secret-b")

	raw, err := issuer.IssueToken(uuid.New(), identity.RoleTeacher)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := verifier.ParseToken(raw); err == nil {
		t.Error("ParseToken with wrong secret expected error, got nil")
	}
}

func TestRoleChangeSubscription(t *testing.T) {
	svc := identity.New("test-secret")
	userID := uuid.New()

	var gotID uuid.UUID
	var gotRole identity.Role
	calls := 0
	svc.OnRoleChange(func(id uuid.UUID, role identity.Role) {
		gotID, gotRole = id, role
		calls++
	})

	svc.NotifyRoleChange(userID, identity.RoleAdmin)

	if calls != 1 {
		t.Fatalf("subscriber called %d times, want 1", calls)
	}
	if gotID != userID || gotRole != identity.RoleAdmin {
		t.Errorf("subscriber got (%s, %s), want (%s, admin)", gotID, gotRole, userID)
	}
}
