package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bernardoaires/ping-pong/internal/models"
)

var (
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	passwordRegex = regexp.MustCompile(`^[A-Za-z0-9]{3,30}$`)
	dateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Error reports the first rule a payload broke, naming the schema
// and the offending field. Validation is all-or-nothing: a payload
// is either fully accepted or rejected before any store access.
type Error struct {
	Schema string
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s validation failed: %s %s", e.Schema, e.Field, e.Reason)
}

func fail(schema, field, reason string) error {
	return &Error{Schema: schema, Field: field, Reason: reason}
}

// SignUp checks and canonicalizes a signup payload in place
// (username and name are trimmed).
func SignUp(req *models.SignUpRequest) error {
	const schema = "signUp"

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return fail(schema, "username", "is required")
	}
	if !emailRegex.MatchString(req.Username) {
		return fail(schema, "username", "must be a valid email")
	}
	if req.Password == "" {
		return fail(schema, "password", "is required")
	}
	if !passwordRegex.MatchString(req.Password) {
		return fail(schema, "password", "must be 3-30 alphanumeric characters")
	}
	if req.RepeatPassword != req.Password {
		return fail(schema, "repeatPassword", "must match password")
	}
	if req.Email == "" {
		return fail(schema, "email", "is required")
	}
	if req.Email != req.Username {
		return fail(schema, "email", "must equal username")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fail(schema, "name", "is required")
	}
	if len(req.Name) < 3 || len(req.Name) > 30 {
		return fail(schema, "name", "must be 3-30 characters")
	}
	if req.Age < 18 || req.Age > 65 {
		return fail(schema, "age", "must be between 18 and 65")
	}
	if req.Sex != "M" && req.Sex != "F" {
		return fail(schema, "sex", "must be M or F")
	}
	return nil
}

// SignIn checks a signin payload.
func SignIn(req *models.SignInRequest) error {
	const schema = "signIn"

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return fail(schema, "username", "is required")
	}
	if !emailRegex.MatchString(req.Username) {
		return fail(schema, "username", "must be a valid email")
	}
	if req.Password == "" {
		return fail(schema, "password", "is required")
	}
	if !passwordRegex.MatchString(req.Password) {
		return fail(schema, "password", "must be 3-30 alphanumeric characters")
	}
	return nil
}

// RecordMatch checks a match payload. The winner/loser distinctness
// rule is a business rule enforced by the recorder, not here.
func RecordMatch(req *models.RecordMatchRequest) error {
	const schema = "recordMatch"

	if req.Date == "" {
		return fail(schema, "date", "is required")
	}
	if !dateRegex.MatchString(req.Date) {
		return fail(schema, "date", "must be formatted YYYY-MM-DD")
	}
	if req.WinnerID == "" {
		return fail(schema, "winnerId", "is required")
	}
	if req.LoserID == "" {
		return fail(schema, "loserId", "is required")
	}
	if len(req.Result) == 0 {
		return fail(schema, "result", "is required")
	}
	return nil
}
