package validate

import (
	"errors"
	"strings"
	"testing"
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN STAFF"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	err := New().Struct(loginForm{Email: "not-an-email", Password: "short", Role: "ROOT"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if strings.Join(verr.Fields, ",") != "email,password,role" {
		t.Fatalf("unexpected fields: %v", verr.Fields)
	}
	if !strings.Contains(err.Error(), "email must be a valid email address") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestStructAcceptsValidInput(t *testing.T) {
	t.Parallel()

	if err := New().Struct(loginForm{Email: "ops@zetratech.io", Password: "longenough"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVar(t *testing.T) {
	t.Parallel()

	v := New()
	if err := v.Var("id", "", "required"); !errors.Is(err, ErrValidation) || err.Error() != "id is required" {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Var("id", "s1", "required"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Required("   ") {
		t.Fatalf("blank string should not satisfy Required")
	}
}

func TestIDTrimsBeforeRequired(t *testing.T) {
	t.Parallel()

	v := New()
	if _, err := v.ID("id", " \t "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank id, got %v", err)
	}
	id, err := v.ID("id", "  s1 ")
	if err != nil || id != "s1" {
		t.Fatalf("expected trimmed id, got %q %v", id, err)
	}
}
