package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
)

type fakeParkingStore struct {
	created  []models.ParkingBooking
	listArgs []string
}

func (f *fakeParkingStore) Create(_ context.Context, b models.ParkingBooking) (models.ParkingBooking, error) {
	b.ID = int64(len(f.created) + 1)
	code := "BK-001"
	b.BookingCode = &code
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeParkingStore) GetForUser(_ context.Context, id int64, userID int64) (models.ParkingBooking, error) {
	return models.ParkingBooking{}, repository.ErrBookingNotFound
}

func (f *fakeParkingStore) ListByUser(_ context.Context, userID int64, paymentStatus string, bookingStatus string) ([]models.ParkingBooking, error) {
	f.listArgs = append(f.listArgs, paymentStatus, bookingStatus)
	return nil, nil
}

func TestCreateParkingBooking_ComputesStampsAndDuration(t *testing.T) {
	store := &fakeParkingStore{}
	h := newTestHandlerSet()
	h.parking = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/parking-bookings", gin.H{
		"start_date": "1/6/2024",
		"end_date":   "2/6/2024",
		"start_time": "8:00",
		"end_time":   "20:00",
	}, bearerFor(t, 7))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)

	b := store.created[0]
	require.Equal(t, int64(7), b.UserID)
	require.Equal(t, "2024-06-01", b.StartDate)
	require.Equal(t, "2024-06-02", b.EndDate)
	require.NotNil(t, b.CheckIn)
	require.NotNil(t, b.CheckOut)
	require.NotNil(t, b.DurationHours)
	require.Equal(t, 36, *b.DurationHours)
	require.Equal(t, "KWD", b.Currency)
	require.Equal(t, "booked", b.BookingStatus)
}

func TestCreateParkingBooking_RawDatesSkipStamps(t *testing.T) {
	store := &fakeParkingStore{}
	h := newTestHandlerSet()
	h.parking = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/parking-bookings", gin.H{
		"start_date": "sometime soon",
		"end_date":   "later",
	}, bearerFor(t, 7))

	require.Equal(t, http.StatusCreated, w.Code)
	b := store.created[0]
	require.Equal(t, "sometime soon", b.StartDate)
	require.Nil(t, b.CheckIn)
	require.Nil(t, b.CheckOut)
	require.Nil(t, b.DurationHours)
}

func TestGetParkingBookings_UnknownBookingStatusIgnored(t *testing.T) {
	store := &fakeParkingStore{}
	h := newTestHandlerSet()
	h.parking = store
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/parking-bookings?status=paid&booking_status=weird", nil, bearerFor(t, 7))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"PAID", ""}, store.listArgs)
}

func TestGetParkingBookings_StatusFiltersCaseInsensitive(t *testing.T) {
	store := &fakeParkingStore{}
	h := newTestHandlerSet()
	h.parking = store
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/parking-bookings?status=Paid&booking_status=Booked", nil, bearerFor(t, 7))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"PAID", "booked"}, store.listArgs)

	store.listArgs = nil
	w = doJSON(r, http.MethodGet, "/api/parking-bookings?booking_status=%20CANCELLED%20", nil, bearerFor(t, 7))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"", "cancelled"}, store.listArgs)
}

func TestCreateParkingBooking_EqualStampsHaveNoDuration(t *testing.T) {
	store := &fakeParkingStore{}
	h := newTestHandlerSet()
	h.parking = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/parking-bookings", gin.H{
		"start_date": "1/6/2024",
		"end_date":   "1/6/2024",
		"start_time": "8:00",
		"end_time":   "8:00",
	}, bearerFor(t, 7))

	require.Equal(t, http.StatusCreated, w.Code)
	b := store.created[0]
	require.NotNil(t, b.CheckIn)
	require.NotNil(t, b.CheckOut)
	require.Nil(t, b.DurationHours)
}
