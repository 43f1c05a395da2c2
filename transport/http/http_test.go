package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel/config"
	"hotel/infras/jwt"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/store"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	guestRepository "hotel/internal/domains/guest/repository"
	guestService "hotel/internal/domains/guest/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	guestHandler "hotel/internal/handlers/guest"
	roomHandler "hotel/internal/handlers/room"
	"hotel/shared/constant"
	"hotel/shared/metrics"
	transport "hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "secret"

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.PageSize = 5
	cfg.App.Name = "hotel"
	cfg.App.APIKey = testAPIKey
	cfg.JWT.Secret = "jwt-secret"
	cfg.JWT.ExpireMin = 5
	cfg.Storage.Seed = true

	ot := otelMocks.NewOtel()
	m := metrics.New()
	st := store.Instrument(store.NewMemory(0), ot, m)

	guests := guestRepository.New(st, cfg, ot)
	rooms := roomRepository.New(st, cfg, ot)
	bookings := bookingRepository.New(st, cfg, ot)

	tokens := jwt.New(cfg)
	auth := middleware.NewAuthMiddleware(tokens, ot, cfg)

	handlers := router.DomainHandlers{
		Auth:    authHandler.New(tokens, auth, ot),
		Guest:   guestHandler.New(guestService.New(guests, cfg, ot), cfg, ot),
		Room:    roomHandler.New(roomService.New(rooms, cfg, ot), cfg, ot),
		Booking: bookingHandler.New(bookingService.New(bookings, guests, rooms, cfg, ot), cfg, ot),
	}

	r := router.New(handlers, middleware.NewAppMiddleware(ot, cfg, m), auth, m)

	return transport.New(cfg, r, ot)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(constant.RequestHeaderAPIKey, testAPIKey)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHealth(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestMetricsEndpoint(t *testing.T) {
	server := newServer(t)

	do(t, server, http.MethodGet, "/v1/guests", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/v1/guests`)
}

func TestAPIKeyRequired(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	server := newServer(t)

	rec := do(t, server, http.MethodPost, "/v1/auth/token", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	token := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Bearer", token["token_type"])

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token["access_token"].(string))
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer forged")
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/auth/token", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSwaggerDoc(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/v1/guests"`)
	assert.Contains(t, rec.Body.String(), `"/v1/auth/token"`)
}

func TestGuestLifecycle(t *testing.T) {
	server := newServer(t)

	rec := do(t, server, http.MethodGet, "/v1/guests?search=emma", "")
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode(t, rec)["data"].(map[string]any)
	assert.EqualValues(t, 1, page["total_data"])
	assert.EqualValues(t, 1, page["total_page"])

	rec = do(t, server, http.MethodPost, "/v1/guests",
		`{"name":"Ada Lovelace","email":"ada@example.com","phone":"+44-20-0000","address":{"city":"London","country":"UK"}}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode(t, rec)["data"].(map[string]any)
	id := created["id"].(string)
	assert.NotEmpty(t, id)

	rec = do(t, server, http.MethodPatch, "/v1/guests/"+id, `{"address":{"street":"12 St James Sq"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	address := decode(t, rec)["data"].(map[string]any)["address"].(map[string]any)
	assert.Equal(t, "12 St James Sq", address["street"])
	assert.Equal(t, "London", address["city"])

	rec = do(t, server, http.MethodDelete, "/v1/guests/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, server, http.MethodGet, "/v1/guests/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Guest not found", decode(t, rec)["error"])
}

func TestBookingEndpoints(t *testing.T) {
	server := newServer(t)

	rec := do(t, server, http.MethodPost, "/v1/bookings",
		`{"guestId":"2","roomId":"102","checkIn":"2024-03-01","checkOut":"2024-03-04"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode(t, rec)["data"].(map[string]any)
	assert.EqualValues(t, 540, created["totalAmount"])
	assert.EqualValues(t, 3, created["nights"])
	assert.Equal(t, "Emma Johnson", created["guest"].(map[string]any)["name"])

	rec = do(t, server, http.MethodPost, "/v1/bookings",
		`{"guestId":"2","roomId":"102","checkIn":"2024-03-04","checkOut":"2024-03-01"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, server, http.MethodGet, "/v1/bookings?status=checked-in", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["data"].(map[string]any)["total_data"])

	rec = do(t, server, http.MethodGet, "/v1/bookings?status=checked-in%20", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["data"].(map[string]any)["total_data"])

	rec = do(t, server, http.MethodGet, "/v1/bookings/available-rooms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["data"], 2)
}
