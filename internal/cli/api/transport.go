package api

import (
	"net/http"
	"strings"

	"AdminDashboard/internal/cli/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
)

// Transport: http.RoundTripper, который перед отправкой каждого запроса
// подставляет заголовки по умолчанию и Bearer-токен из Source.
// Исходный запрос не изменяется: все правки делаются на клоне.
// Если задан Host, токен уходит только на этот хост: редирект на чужой хост идёт без него.
type Transport struct {
	Base    http.RoundTripper
	Source  auth.Source
	Headers http.Header
	Host    string
	Logger  *zap.SugaredLogger
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	for k, vv := range t.Headers {
		if r.Header.Get(k) == "" {
			r.Header[k] = append([]string(nil), vv...)
		}
	}
	var tok string
	ok := false
	if t.trusted(r) {
		tok, ok = t.token()
	}
	if ok {
		r.Header.Set(headerAuthorization, "Bearer "+tok)
	}
	if r.Header.Get(headerRequestID) == "" {
		r.Header.Set(headerRequestID, uuid.NewString())
	}
	if t.Logger != nil {
		t.Logger.Debugw("api request",
			"method", r.Method,
			"url", r.URL.Redacted(),
			"request_id", r.Header.Get(headerRequestID),
			"auth", ok,
		)
	}
	return t.base().RoundTrip(r)
}

// trusted reports whether the credential may be sent to the request's host.
func (t *Transport) trusted(r *http.Request) bool {
	return t.Host == "" || strings.EqualFold(r.URL.Host, t.Host)
}

// token never panics: a broken source means "no credential".
func (t *Transport) token() (tok string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			if t.Logger != nil {
				t.Logger.Warnw("credential lookup failed", "panic", rec)
			}
			tok, ok = "", false
		}
	}()
	if t.Source == nil {
		return "", false
	}
	tok, ok = t.Source.Token()
	if tok == "" {
		return "", false
	}
	return tok, ok
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
