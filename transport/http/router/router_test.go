package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/config"
	"hostel/infras/kafka"
	"hostel/infras/otel/mocks"
	s3Mocks "hostel/infras/s3/mocks"
	authService "hostel/internal/domains/auth/service"
	bookingRepo "hostel/internal/domains/booking/repository"
	bookingService "hostel/internal/domains/booking/service"
	dashboardService "hostel/internal/domains/dashboard/service"
	foodRepo "hostel/internal/domains/food/repository"
	foodService "hostel/internal/domains/food/service"
	roomRepo "hostel/internal/domains/room/repository"
	roomService "hostel/internal/domains/room/service"
	sessionRepo "hostel/internal/domains/session/repository"
	snapshotService "hostel/internal/domains/snapshot/service"
	"hostel/internal/domains/store/storetest"
	userRepo "hostel/internal/domains/user/repository"
	"hostel/internal/handlers/admin"
	"hostel/internal/handlers/auth"
	"hostel/internal/handlers/booking"
	"hostel/internal/handlers/food"
	"hostel/internal/handlers/room"
	"hostel/transport/http/middleware"
	"hostel/transport/http/router"
)

const apiKey = "admin-key"

type envelope struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	otl := mocks.NewOtel()
	s := storetest.New(t)
	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	rooms := roomRepo.New(s, otl)
	foods := foodRepo.New(s, otl)
	bookings := bookingRepo.New(s, otl)
	users := userRepo.New(s, otl)
	session := sessionRepo.New(s, otl)

	handlers := router.DomainHandlers{
		Auth:    auth.New(authService.New(users, session, otl), otl),
		Room:    room.New(roomService.New(rooms, otl), otl),
		Food:    food.New(foodService.New(foods, session, otl), otl),
		Booking: booking.New(bookingService.New(bookings, rooms, foods, session, kafka.NewNoop(), otl), otl),
		Admin: admin.New(
			dashboardService.New(rooms, foods, bookings, users, otl),
			snapshotService.New(s, s3Mocks.NewMockS3(gomock.NewController(t)), otl),
			otl,
		),
	}

	r := router.New(handlers, middleware.NewAppMiddleware(otl, cfg))
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func do(t *testing.T, server *httptest.Server, method, path, body string, admin bool) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	if admin {
		req.Header.Set("X-API-Key", apiKey)
	}

	res, err := server.Client().Do(req)
	require.NoError(t, err)

	defer res.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))

	return res.StatusCode, env
}

func TestRouter_BookingFlow(t *testing.T) {
	server := newServer(t)

	code, env := do(t, server, http.MethodPost, "/v1/bookings", `{"roomId":"r3","checkin":"2024-01-01","checkout":"2024-01-04"}`, false)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Please login to book a room", env.Error)

	code, env = do(t, server, http.MethodPost, "/v1/auth/register", `{"name":"Asha","email":"Asha@Example.com","phone":"1","password":"secret"}`, false)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Registration successful! Welcome, Asha", env.Message)

	code, env = do(t, server, http.MethodPost, "/v1/food-plans/f2/select", ``, false)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Food plan selected! Choose a room to complete booking.", env.Message)

	code, env = do(t, server, http.MethodPost, "/v1/bookings/quote", `{"roomId":"r3","checkin":"2024-01-01","checkout":"2024-01-04"}`, false)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"days":3,"roomCost":2400,"foodCost":600,"totalCost":3000,"roomPrice":800,"foodPlanName":"Standard Plan","foodPrice":200}`, string(env.Data))

	code, env = do(t, server, http.MethodPost, "/v1/bookings", `{"roomId":"r3","checkin":"2024-01-01","checkout":"2024-01-04","notes":"hi"}`, false)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Booking submitted successfully!", env.Message)

	var created struct {
		ID         string  `json:"id"`
		FoodPlanID *string `json:"foodPlanId"`
		TotalCost  int     `json:"totalCost"`
		Status     string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotNil(t, created.FoodPlanID)
	assert.Equal(t, "f2", *created.FoodPlanID)
	assert.Equal(t, 3000, created.TotalCost)
	assert.Equal(t, "pending", created.Status)

	code, env = do(t, server, http.MethodPatch, "/v1/admin/bookings/"+created.ID+"/status", `{"status":"approved"}`, true)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Booking approved!", env.Message)

	code, env = do(t, server, http.MethodGet, "/v1/bookings/mine", ``, false)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"status":"approved"`)

	code, env = do(t, server, http.MethodGet, "/v1/admin/dashboard", ``, true)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"totalRevenue":3000`)

	code, _ = do(t, server, http.MethodPost, "/v1/auth/logout", ``, false)
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, server, http.MethodGet, "/v1/auth/me", ``, false)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRouter_AdminRequiresAPIKey(t *testing.T) {
	server := newServer(t)

	code, env := do(t, server, http.MethodGet, "/v1/admin/customers", ``, false)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Missing API key", env.Error)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/v1/admin/customers", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "wrong")

	res, err := server.Client().Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	code, _ = do(t, server, http.MethodGet, "/v1/admin/customers", ``, true)
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_CatalogAdmin(t *testing.T) {
	server := newServer(t)

	code, env := do(t, server, http.MethodPost, "/v1/admin/rooms", `{"name":"Garden","type":"single","price":"650","amenities":"Wi-Fi, Fan"}`, true)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Room added successfully!", env.Message)

	var saved struct {
		Outcome string `json:"outcome"`
		Room    struct {
			ID        string   `json:"id"`
			Price     int      `json:"price"`
			Status    string   `json:"status"`
			Amenities []string `json:"amenities"`
		} `json:"room"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	assert.Equal(t, "created", saved.Outcome)
	assert.Equal(t, 650, saved.Room.Price)
	assert.Equal(t, "available", saved.Room.Status)
	assert.Equal(t, []string{"Wi-Fi", "Fan"}, saved.Room.Amenities)

	code, env = do(t, server, http.MethodPost, "/v1/admin/rooms", `{"name":"","type":"single"}`, true)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, env.Error)

	code, env = do(t, server, http.MethodPut, "/v1/admin/rooms/r404", `{"name":"Ghost","type":"single"}`, true)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"outcome":"not_found"`)

	code, env = do(t, server, http.MethodDelete, "/v1/admin/rooms/"+saved.Room.ID, ``, true)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Room deleted", env.Message)

	code, _ = do(t, server, http.MethodGet, "/v1/rooms/"+saved.Room.ID, ``, false)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = do(t, server, http.MethodGet, "/v1/rooms?type=double", ``, false)
	require.Equal(t, http.StatusOK, code)

	var rooms []struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rooms))
	require.NotEmpty(t, rooms)

	for _, r := range rooms {
		assert.Equal(t, "double", r.Type)
	}

	code, env = do(t, server, http.MethodPost, "/v1/admin/food-plans", `{"name":"Vegan","price":150,"popular":"true","features":"Plant based"}`, true)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Food plan added!", env.Message)
	assert.Contains(t, string(env.Data), `"popular":true`)

	code, env = do(t, server, http.MethodGet, "/v1/food-plans?popular=true", ``, false)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "Vegan")
	assert.NotContains(t, string(env.Data), "Basic Plan")
}

func TestRouter_RegisterValidation(t *testing.T) {
	server := newServer(t)

	code, env := do(t, server, http.MethodPost, "/v1/auth/register", `{"name":"Asha","email":"a@b.c","password":"12345"}`, false)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Password must be at least 6 characters", env.Error)

	code, _ = do(t, server, http.MethodPost, "/v1/auth/register", `{"name":"Asha","email":"a@b.c","password":"123456"}`, false)
	assert.Equal(t, http.StatusCreated, code)

	code, env = do(t, server, http.MethodPost, "/v1/auth/register", `{"name":"Asha","email":"A@B.C","password":"123456"}`, false)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Email already registered", env.Error)

	code, env = do(t, server, http.MethodPost, "/v1/auth/login", `{"email":"a@b.c","password":"654321"}`, false)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password", env.Error)

	code, _ = do(t, server, http.MethodPost, "/v1/auth/register", `not json`, false)
	assert.Equal(t, http.StatusBadRequest, code)
}
