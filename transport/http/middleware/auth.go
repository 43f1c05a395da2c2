package middleware

import (
	"crypto/subtle"
	"net/http"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"
)

const (
	msgInvalidAPIKey      = "Invalid API key"
	msgInvalidCredentials = "Invalid API key or access token"
)

// Auth guards the admin API.
type Auth interface {
	Authenticate(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	jwt  jwt.JWT
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		jwt:  jwtService,
		otel: otel,
		cfg:  cfg,
	}
}

func (m *authImpl) validKey(request *http.Request) bool {
	if m.cfg.App.APIKey == constant.Empty {
		return false
	}

	apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

	return subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.APIKey)) == 1
}

func (m *authImpl) validToken(request *http.Request) bool {
	if !m.jwt.Enabled() {
		return false
	}

	token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		return false
	}

	_, err = m.jwt.Validate(token)

	return err == nil
}

func (m *authImpl) reject(writer http.ResponseWriter, scope otel.Scope, message string) {
	err := failure.Unauthorized(message)
	response.WithError(writer, err)

	scope.TraceError(err)
}

// Authenticate accepts either the X-API-Key header matching APP_API_KEY or a
// bearer token signed with JWT_SECRET. With neither configured every request passes.
func (m *authImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.cfg.App.APIKey == constant.Empty && !m.jwt.Enabled() {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		if !m.validKey(request) && !m.validToken(request) {
			m.reject(writer, scope, msgInvalidCredentials)
			scope.End()

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey only accepts the X-API-Key header and rejects everything when no key
// is configured. It guards token issuing.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		if !m.validKey(request) {
			m.reject(writer, scope, msgInvalidAPIKey)
			scope.End()

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
