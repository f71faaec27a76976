package auth

import (
	"net/http"
)

// BearerTransport is an http.RoundTripper that adds
// "Authorization: Bearer <token>" to every outgoing request.
type BearerTransport struct {
	Token StaticToken
	Base  http.RoundTripper // http.DefaultTransport when nil
}

// NewBearerTransport wraps base with bearer token injection.
func NewBearerTransport(token StaticToken, base http.RoundTripper) *BearerTransport {
	return &BearerTransport{Token: token, Base: base}
}

// RoundTrip clones the request, sets the header and delegates to Base.
// The caller's request is left untouched as the RoundTripper contract requires.
func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok, err := t.Token.AccessToken()
	if err != nil {
		if req.Body != nil {
			req.Body.Close()
		}
		return nil, err
	}

	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+tok)
	return t.base().RoundTrip(r)
}

func (t *BearerTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
