package auth

import (
	"errors"
	"net/http"

	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const tokenSubject = "admin"

type Handler struct {
	jwt        jwt.JWT
	middleware middleware.Auth
	otel       otel.Otel
}

func New(jwtService jwt.JWT, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		jwt:        jwtService,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.With(handler.middleware.APIKey).Post("/token", handler.IssueToken)
	})
}

// IssueToken exchanges the API key for a short-lived bearer token.
// @Summary Issue an access token
// @Description Requires X-API-Key. The token is accepted by every /v1 route until it expires.
// @Tags Auth
// @Produce json
// @Param X-API-Key header string true "API key"
// @Success 201 {object} response.Data[jwt.Token]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/auth/token [post]
func (handler *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueToken")
	defer scope.End()

	token, err := handler.jwt.Issue(tokenSubject)
	if errors.Is(err, jwt.ErrDisabled) {
		err = failure.NotFound("Token issuing is not enabled")
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue access token")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, token)
}
