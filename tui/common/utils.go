package common

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/tootview/domain"
)

// SanitizeForTerminal removes escape sequences and control characters that
// remote content could use to drive the terminal. Newlines and tabs survive.
func SanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// RelativeTime formats t relative to now at minute resolution.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d/(24*time.Hour)))
	case t.Year() == now.Year():
		return t.Format("Jan 02")
	default:
		return t.Format("Jan 02, 2006")
	}
}

// DescribeError turns an API failure into a short message that tells the
// user what kind of failure it was.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}
	var (
		se *domain.ServiceError
		te *domain.TransportError
		sc *domain.SchemaError
	)
	switch {
	case domain.IsUnauthorized(err):
		return "unauthorized (401): check your access token"
	case domain.IsRateLimited(err):
		return "rate limited (429): try again later"
	case errors.As(err, &se):
		if se.Message != "" {
			return fmt.Sprintf("server error (%d): %s", se.StatusCode, se.Message)
		}
		return fmt.Sprintf("server error (%d)", se.StatusCode)
	case errors.As(err, &te):
		return "network error: " + te.Err.Error()
	case errors.As(err, &sc):
		return "unexpected response from server"
	default:
		return err.Error()
	}
}
