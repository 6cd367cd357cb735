package contact

import (
	"regexp"
	"strings"
)

// Status is the lifecycle of the contact form of one mount.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Fields are the three values the visitor fills in.
type Fields struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// Field names as posted by the form and forwarded to the endpoint.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// FieldError is the reason a field was rejected before submission.
type FieldError string

const (
	ErrFieldRequired     FieldError = "required"
	ErrFieldInvalidEmail FieldError = "invalid_email"
)

// FieldErrors maps field names to their validation failure.
type FieldErrors map[string]FieldError

// Normalize trims the single-line fields; the message is kept as typed.
func (f Fields) Normalize() Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

// Validate reports every field that blocks submission. An empty result means
// the form may be sent.
func Validate(f Fields) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = ErrFieldRequired
	}
	switch {
	case strings.TrimSpace(f.Email) == "":
		errs[FieldEmail] = ErrFieldRequired
	case !validEmail(f.Email):
		errs[FieldEmail] = ErrFieldInvalidEmail
	}
	if strings.TrimSpace(f.Message) == "" {
		errs[FieldMessage] = ErrFieldRequired
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// emailPattern is the valid e-mail address rule browsers apply to type=email inputs.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

func validEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}
