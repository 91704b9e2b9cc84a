package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"marinahub/api/internal/config"
	"marinahub/api/internal/models"
	"marinahub/api/internal/security"
)

const testSecret = "handlers-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandlerSet() HandlerSet {
	cfg := &config.AppConfig{}
	cfg.Security.JWTSecret = testSecret
	cfg.Security.TokenTTL = time.Hour
	return HandlerSet{cfg: cfg}
}

func testRouter(h HandlerSet) *gin.Engine {
	r := gin.New()
	h.Register(r.Group("/api"))
	return r
}

func bearerFor(t *testing.T, userID int64) string {
	t.Helper()
	token, err := security.GenerateToken(testSecret, userID, "u@example.com", nil, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(r *gin.Engine, method string, path string, body any, authHeader string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type fakeJetStore struct {
	bookings     []models.JetBooking
	listedByUser []int64
	nextID       int64
}

func (f *fakeJetStore) Create(_ context.Context, j models.Jet) (models.Jet, error) {
	j.ID = 1
	return j, nil
}

func (f *fakeJetStore) GetByID(_ context.Context, id int64) (models.Jet, error) {
	return models.Jet{ID: id, Status: "ACTIVE"}, nil
}

func (f *fakeJetStore) List(_ context.Context, status string) ([]models.Jet, error) {
	return []models.Jet{{ID: 1, Status: "ACTIVE"}}, nil
}

func (f *fakeJetStore) CreateBooking(_ context.Context, b models.JetBooking) (models.JetBooking, error) {
	f.nextID++
	b.ID = f.nextID
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeJetStore) ListBookingsByUser(_ context.Context, userID int64) ([]models.JetBooking, error) {
	f.listedByUser = append(f.listedByUser, userID)
	var out []models.JetBooking
	for _, b := range f.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestCreateJetBooking_AuthenticatedOwnerWinsOverBody(t *testing.T) {
	store := &fakeJetStore{}
	h := newTestHandlerSet()
	h.jets = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/jets/booking", gin.H{
		"jet_id":    1,
		"user_id":   99,
		"trip_date": "5/3/2024",
		"trip_time": "9:30",
		"fare":      "1,250 KWD",
	}, bearerFor(t, 7))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.bookings, 1)

	b := store.bookings[0]
	require.NotNil(t, b.UserID)
	require.Equal(t, int64(7), *b.UserID)
	require.Equal(t, "2024-03-05", *b.TripDate)
	require.Equal(t, "09:30:00", *b.TripTime)
	require.InDelta(t, 1250, *b.Fare, 1e-9)
	require.Equal(t, "Pending", b.PaymentStatus)
	require.Equal(t, "Pending", b.BookingStatus)
	require.Regexp(t, `^JET-\d+$`, b.BookingID)
}

func TestCreateJetBooking_GuestKeepsBodyOwner(t *testing.T) {
	store := &fakeJetStore{}
	h := newTestHandlerSet()
	h.jets = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/jets/booking", gin.H{
		"jet_id":  1,
		"user_id": 99,
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, store.bookings[0].UserID)
	require.Equal(t, int64(99), *store.bookings[0].UserID)
}

func TestCreateJetBooking_GuestWithoutOwner(t *testing.T) {
	store := &fakeJetStore{}
	h := newTestHandlerSet()
	h.jets = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/jets/booking", gin.H{"jet_id": 1}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	require.Nil(t, store.bookings[0].UserID)
}

func TestCreateJetBooking_MalformedDatePersistedRaw(t *testing.T) {
	store := &fakeJetStore{}
	h := newTestHandlerSet()
	h.jets = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/jets/booking", gin.H{
		"jet_id":    1,
		"trip_date": "next tuesday",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "next tuesday", *store.bookings[0].TripDate)
}

func TestMyJetBookings_RequiresAuthAndScopesToCaller(t *testing.T) {
	store := &fakeJetStore{}
	h := newTestHandlerSet()
	h.jets = store
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/jets/my-bookings", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/jets/my-bookings", nil, bearerFor(t, 7))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []int64{7}, store.listedByUser)
}
