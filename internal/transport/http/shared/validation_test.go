package shared

import "testing"

func TestOneOfMatchesExactly(t *testing.T) {
	actions := []string{"check-in", "check-out"}

	v := NewValidator()
	v.OneOf("action", "check-in", actions, "bad action")
	v.OneOf("action", "check-out", actions, "bad action")
	if v.HasIssues() {
		t.Fatalf("exact values should pass, got %v", v.Issues())
	}

	for _, value := range []string{"checkin", "Check-In", "CHECK-OUT", " check-in", ""} {
		v := NewValidator()
		v.OneOf("action", value, actions, "bad action")
		if !v.HasIssues() {
			t.Fatalf("value %q should be rejected", value)
		}
	}
}

func TestEmailOptionalButValidated(t *testing.T) {
	v := NewValidator()
	v.Email("email", "")
	v.Email("email", "person@example.com")
	if v.HasIssues() {
		t.Fatalf("empty and valid emails should pass, got %v", v.Issues())
	}

	v = NewValidator()
	v.Email("email", "not-an-email")
	if !v.HasIssues() {
		t.Fatal("malformed email should be rejected")
	}
}

func TestRequiredTrimsWhitespace(t *testing.T) {
	v := NewValidator()
	v.Required("name", "   ", "name is required")
	if !v.HasIssues() {
		t.Fatal("whitespace-only value should fail required check")
	}
}

func TestMinLength(t *testing.T) {
	v := NewValidator()
	v.MinLength("username", "ab", 3, "too short")
	if !v.HasIssues() {
		t.Fatal("short value should fail")
	}

	v = NewValidator()
	v.MinLength("username", "abc", 3, "too short")
	if v.HasIssues() {
		t.Fatalf("value at the limit should pass, got %v", v.Issues())
	}
}

func TestIssuesSortedByField(t *testing.T) {
	v := NewValidator()
	v.Add("zeta", "late")
	v.Add("alpha", "early")

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].Field != "alpha" || issues[1].Field != "zeta" {
		t.Fatalf("issues not sorted: %v", issues)
	}
}
