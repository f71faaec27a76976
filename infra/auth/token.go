package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/CrestNiraj12/tootview/domain"
)

// TokenProvider supplies an access token for API authentication.
type TokenProvider interface {
	AccessToken() (string, error)
}

// StaticToken is a token fixed at startup.
type StaticToken string

// AccessToken returns the token, or domain.ErrMissingToken when it is blank.
func (s StaticToken) AccessToken() (string, error) {
	tok := strings.TrimSpace(string(s))
	if tok == "" {
		return "", domain.ErrMissingToken
	}
	return tok, nil
}

// FileTokenProvider reads a bearer token from a file on disk.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// AccessToken reads and returns the token, trimming whitespace.
func (f *FileTokenProvider) AccessToken() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty: %w", f.path, domain.ErrMissingToken)
	}

	return token, nil
}

// Resolve reads the token once so it stays fixed for the life of the process.
func Resolve(tp TokenProvider) (StaticToken, error) {
	tok, err := tp.AccessToken()
	if err != nil {
		return "", err
	}
	return StaticToken(tok), nil
}
