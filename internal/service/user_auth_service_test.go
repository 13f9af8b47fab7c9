package service

import (
	"errors"
	"testing"

	"github.com/inkwell-next/internal/config"
	"github.com/inkwell-next/internal/repository"

	"gorm.io/gorm"
)

func newUserAuthServiceForTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	db := setupBlogTestDB(t)
	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret-test-secret-test-secret!"
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 8}
	return NewUserAuthService(cfg, repository.NewUserRepository(db)), db
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _ := newUserAuthServiceForTest(t)

	cases := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{name: "bad username", username: "1nvalid", email: "a@example.com", password: "longenough", wantErr: ErrInvalidUsername},
		{name: "bad email", username: "reader", email: "not-an-email", password: "longenough", wantErr: ErrInvalidEmail},
		{name: "weak password", username: "reader", email: "a@example.com", password: "short", wantErr: ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := svc.Register(RegisterInput{Username: tc.username, Email: tc.email, Password: tc.password})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newUserAuthServiceForTest(t)

	user, token, _, err := svc.Register(RegisterInput{Username: "reader", Email: "Reader@Example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Fatalf("register should issue a token")
	}
	if user.Email != "reader@example.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}

	_, _, _, err = svc.Register(RegisterInput{Username: "reader", Email: "other@example.com", Password: "longenough"})
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("duplicate username want ErrUsernameExists got %v", err)
	}

	_, _, _, err = svc.Register(RegisterInput{Username: "reader2", Email: "reader@example.com", Password: "longenough"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("duplicate email want ErrEmailExists got %v", err)
	}
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	svc, _ := newUserAuthServiceForTest(t)
	if _, _, _, err := svc.Register(RegisterInput{Username: "reader", Email: "reader@example.com", Password: "longenough"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, _, err := svc.Login("reader", "longenough"); err != nil {
		t.Fatalf("login by username failed: %v", err)
	}
	if _, _, _, err := svc.Login("Reader@Example.com", "longenough"); err != nil {
		t.Fatalf("login by email failed: %v", err)
	}
	if _, _, _, err := svc.Login("reader", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "longenough"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown identifier want ErrInvalidCredentials got %v", err)
	}
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	svc, db := newUserAuthServiceForTest(t)
	user, _, _, err := svc.Register(RegisterInput{Username: "reader", Email: "reader@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := db.Model(user).Update("status", "disabled").Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}

	if _, _, _, err := svc.Login("reader", "longenough"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("disabled user want ErrUserDisabled got %v", err)
	}
}

func TestChangePasswordRevokesOldTokens(t *testing.T) {
	svc, db := newUserAuthServiceForTest(t)
	user, _, _, err := svc.Register(RegisterInput{Username: "reader", Email: "reader@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrongpass", "newlongenough"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("wrong old password want ErrInvalidPassword got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "longenough", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak new password want ErrWeakPassword got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "longenough", "newlongenough"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if err := db.First(user, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if user.TokenVersion == 0 {
		t.Fatalf("token version should be bumped after password change")
	}
	if user.TokenInvalidBefore == nil {
		t.Fatalf("token invalid-before should be set after password change")
	}

	if _, _, _, err := svc.Login("reader", "newlongenough"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestUpdateProfileChecksUniqueness(t *testing.T) {
	svc, _ := newUserAuthServiceForTest(t)
	if _, _, _, err := svc.Register(RegisterInput{Username: "reader", Email: "reader@example.com", Password: "longenough"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	other, _, _, err := svc.Register(RegisterInput{Username: "writer", Email: "writer@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	taken := "reader"
	if _, err := svc.UpdateProfile(other.ID, ProfileInput{Username: &taken}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("taken username want ErrUsernameExists got %v", err)
	}
	takenEmail := "reader@example.com"
	if _, err := svc.UpdateProfile(other.ID, ProfileInput{Email: &takenEmail}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("taken email want ErrEmailExists got %v", err)
	}

	newName := "Shen"
	updated, err := svc.UpdateProfile(other.ID, ProfileInput{LastName: &newName})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.LastName != "Shen" {
		t.Fatalf("last name want Shen got %s", updated.LastName)
	}
}
