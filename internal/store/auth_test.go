package store_test

import (
	"errors"
	"testing"

	"github.com/popoutlabs/popout-store/internal/models"
	"github.com/popoutlabs/popout-store/internal/store"
)

func TestSignupValidation(t *testing.T) {
	s := openStore(t, setupTestDB(t))

	cases := []struct {
		name, email, password string
		wantField             string
	}{
		{"", "ada@x.com", "secret1", "name"},
		{"Ada", "", "secret1", "email"},
		{"Ada", "ada@x.com", "", "password"},
	}
	for _, tc := range cases {
		_, err := s.Signup(tc.name, tc.email, tc.password)
		var verr *store.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Signup(%q,%q,%q): expected ValidationError, got %v", tc.name, tc.email, tc.password, err)
		}
		if verr.Field != tc.wantField {
			t.Errorf("expected field %q, got %q", tc.wantField, verr.Field)
		}
		if !errors.Is(err, store.ErrValidation) {
			t.Error("ValidationError should match ErrValidation")
		}
	}

	if _, err := s.Signup("Ada", "ada@x.com", "short"); !errors.Is(err, store.ErrWeakCredential) {
		t.Errorf("expected ErrWeakCredential for 5-char password, got %v", err)
	}

	if _, err := s.Signup("Ada", "ada@x.com", "secret1"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if _, err := s.Signup("Other Ada", "ada@x.com", "different1"); !errors.Is(err, store.ErrDuplicateUser) {
		t.Errorf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestSignupSetsCurrentUser(t *testing.T) {
	s := openStore(t, setupTestDB(t))

	user, err := s.Signup("Ada", "ada@x.com", "secret1")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.ID == 0 {
		t.Error("signup should assign an id")
	}
	if user.JoinDate.IsZero() {
		t.Error("signup should set the join timestamp")
	}

	current, ok := s.CurrentUser()
	if !ok || current.ID != user.ID {
		t.Errorf("signup should set the current user, got %+v ok=%v", current, ok)
	}
}

func TestLoginExactMatch(t *testing.T) {
	s := openStore(t, setupTestDB(t))
	if _, err := s.Signup("Ada", "ada@x.com", "secret1"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, err := s.Login("ada@x.com", "secret1"); err != nil {
		t.Fatalf("exact-match login should succeed: %v", err)
	}

	failures := []struct{ email, password string }{
		{"ada@x.com", "secret2"},
		{"Ada@x.com", "secret1"}, // email compare is case-sensitive
		{"ada@x.com", "Secret1"}, // so is the password
		{"nobody@x.com", "secret1"},
	}
	for _, tc := range failures {
		if _, err := s.Login(tc.email, tc.password); !errors.Is(err, store.ErrInvalidCredentials) {
			t.Errorf("Login(%q,%q): expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

func TestUpdateProfile(t *testing.T) {
	s := openStore(t, setupTestDB(t))
	ada, err := s.Signup("Ada", "ada@x.com", "secret1")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if _, err := s.Signup("Grace", "grace@x.com", "secret2"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	updated, err := s.UpdateProfile(ada.ID, models.ProfileUpdate{
		Name:          "Ada Lovelace",
		AccountNumber: "0123456789",
		Bank:          "First Analytical",
		AccountName:   "A. Lovelace",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Ada Lovelace" || updated.Bank != "First Analytical" {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if updated.Email != "ada@x.com" {
		t.Errorf("empty email should leave the field unchanged, got %q", updated.Email)
	}

	if _, err := s.UpdateProfile(ada.ID, models.ProfileUpdate{Email: "grace@x.com"}); !errors.Is(err, store.ErrDuplicateUser) {
		t.Errorf("expected ErrDuplicateUser for taken email, got %v", err)
	}

	if _, err := s.UpdateProfile(999, models.ProfileUpdate{Name: "Ghost"}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}
