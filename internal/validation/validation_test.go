package validation

import (
	"errors"
	"testing"

	"github.com/bernardoaires/ping-pong/internal/models"
)

func validSignUp() models.SignUpRequest {
	return models.SignUpRequest{
		Username:       "alice@example.com",
		Password:       "secret123",
		RepeatPassword: "secret123",
		Name:           "Alice",
		Email:          "alice@example.com",
		Age:            30,
		Sex:            "F",
	}
}

func TestSignUp(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		req := validSignUp()
		if err := SignUp(&req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("trims username and name", func(t *testing.T) {
		req := validSignUp()
		req.Username = "  alice@example.com  "
		req.Email = "alice@example.com"
		req.Name = "  Alice  "
		if err := SignUp(&req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Username != "alice@example.com" {
			t.Errorf("username not trimmed: %q", req.Username)
		}
		if req.Name != "Alice" {
			t.Errorf("name not trimmed: %q", req.Name)
		}
	})

	cases := []struct {
		name   string
		mutate func(*models.SignUpRequest)
		field  string
	}{
		{"missing username", func(r *models.SignUpRequest) { r.Username = "" }, "username"},
		{"username not an email", func(r *models.SignUpRequest) { r.Username = "not-an-email" }, "username"},
		{"missing password", func(r *models.SignUpRequest) { r.Password = "" }, "password"},
		{"password too short", func(r *models.SignUpRequest) { r.Password = "ab"; r.RepeatPassword = "ab" }, "password"},
		{"password with symbols", func(r *models.SignUpRequest) { r.Password = "bad!pass"; r.RepeatPassword = "bad!pass" }, "password"},
		{"repeat mismatch", func(r *models.SignUpRequest) { r.RepeatPassword = "other456" }, "repeatPassword"},
		{"missing email", func(r *models.SignUpRequest) { r.Email = "" }, "email"},
		{"email differs from username", func(r *models.SignUpRequest) { r.Email = "bob@example.com" }, "email"},
		{"missing name", func(r *models.SignUpRequest) { r.Name = "" }, "name"},
		{"name too short", func(r *models.SignUpRequest) { r.Name = "Al" }, "name"},
		{"name too long", func(r *models.SignUpRequest) { r.Name = "0123456789012345678901234567890" }, "name"},
		{"too young", func(r *models.SignUpRequest) { r.Age = 17 }, "age"},
		{"too old", func(r *models.SignUpRequest) { r.Age = 66 }, "age"},
		{"invalid sex", func(r *models.SignUpRequest) { r.Sex = "X" }, "sex"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignUp()
			tc.mutate(&req)
			err := SignUp(&req)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *validation.Error, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, verr.Field)
			}
			if verr.Schema != "signUp" {
				t.Errorf("expected schema signUp, got %q", verr.Schema)
			}
		})
	}
}

func TestSignIn(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		req := models.SignInRequest{Username: "alice@example.com", Password: "secret123"}
		if err := SignIn(&req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	cases := []struct {
		name  string
		req   models.SignInRequest
		field string
	}{
		{"missing username", models.SignInRequest{Password: "secret123"}, "username"},
		{"username not an email", models.SignInRequest{Username: "nope", Password: "secret123"}, "username"},
		{"missing password", models.SignInRequest{Username: "alice@example.com"}, "password"},
		{"password out of policy", models.SignInRequest{Username: "alice@example.com", Password: "a"}, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := SignIn(&tc.req)
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *validation.Error, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestRecordMatch(t *testing.T) {
	valid := models.RecordMatchRequest{
		Date:     "2024-05-01",
		WinnerID: "a",
		LoserID:  "b",
		Result:   []int{11, 7},
	}

	t.Run("valid payload", func(t *testing.T) {
		req := valid
		if err := RecordMatch(&req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	cases := []struct {
		name   string
		mutate func(*models.RecordMatchRequest)
		field  string
	}{
		{"missing date", func(r *models.RecordMatchRequest) { r.Date = "" }, "date"},
		{"bad date format", func(r *models.RecordMatchRequest) { r.Date = "01/05/2024" }, "date"},
		{"missing winner", func(r *models.RecordMatchRequest) { r.WinnerID = "" }, "winnerId"},
		{"missing loser", func(r *models.RecordMatchRequest) { r.LoserID = "" }, "loserId"},
		{"missing result", func(r *models.RecordMatchRequest) { r.Result = nil }, "result"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			req.Result = append([]int(nil), valid.Result...)
			tc.mutate(&req)
			err := RecordMatch(&req)
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *validation.Error, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}
