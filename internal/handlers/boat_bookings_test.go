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

type fakeBoatBookingStore struct {
	created []models.BoatBooking
}

func (f *fakeBoatBookingStore) Create(_ context.Context, b models.BoatBooking) (models.BoatBooking, error) {
	b.ID = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBoatBookingStore) GetForCustomer(_ context.Context, id int64, customerID int64) (models.BoatBooking, error) {
	for _, b := range f.created {
		if b.ID == id && b.CustomerID != nil && *b.CustomerID == customerID {
			return b, nil
		}
	}
	return models.BoatBooking{}, repository.ErrBookingNotFound
}

func (f *fakeBoatBookingStore) ListByCustomer(_ context.Context, customerID int64) ([]models.BoatBooking, error) {
	var out []models.BoatBooking
	for _, b := range f.created {
		if b.CustomerID != nil && *b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestCreateBoatBooking_RequiresAuth(t *testing.T) {
	h := newTestHandlerSet()
	h.boatBookings = &fakeBoatBookingStore{}
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/boat-bookings/create-booking", gin.H{
		"boat_id":      1,
		"booking_date": "5/3/2024",
		"start_time":   "9:00",
		"end_time":     "12:00",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBoatBooking_RequiresCoreFields(t *testing.T) {
	h := newTestHandlerSet()
	h.boatBookings = &fakeBoatBookingStore{}
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/boat-bookings/create-booking", gin.H{
		"boat_id": 1,
	}, bearerFor(t, 7))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBoatBooking_NormalizesAndAttributes(t *testing.T) {
	store := &fakeBoatBookingStore{}
	h := newTestHandlerSet()
	h.boatBookings = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/boat-bookings/create-booking", gin.H{
		"boat_id":      3,
		"customer_id":  99,
		"booking_date": "15/7/2024",
		"start_time":   "9:00",
		"end_time":     "half past noon",
		"subtotal":     "$1,234.50",
		"total_amount": "free",
	}, bearerFor(t, 7))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)

	b := store.created[0]
	require.NotNil(t, b.CustomerID)
	require.Equal(t, int64(7), *b.CustomerID)
	require.Equal(t, "2024-07-15", b.BookingDate)
	require.Equal(t, "09:00:00", b.StartTime)
	require.Equal(t, "half past noon", b.EndTime)
	require.InDelta(t, 1234.5, *b.Subtotal, 1e-9)
	require.Nil(t, b.TotalAmount)
	require.Equal(t, "booked", b.BookingStatus)
	require.Regexp(t, `^BOAT-\d+$`, *b.OrderID)
}

func TestGetBoatBookings_ScopedToCaller(t *testing.T) {
	store := &fakeBoatBookingStore{}
	h := newTestHandlerSet()
	h.boatBookings = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/boat-bookings/create-booking", gin.H{
		"boat_id":      1,
		"booking_date": "5/3/2024",
		"start_time":   "9:00",
		"end_time":     "12:00",
	}, bearerFor(t, 7))
	require.Equal(t, http.StatusCreated, w.Code)

	// Another customer cannot read it by id.
	w = doJSON(r, http.MethodGet, "/api/boat-bookings/get-bookings?id=1", nil, bearerFor(t, 8))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/boat-bookings/get-bookings?id=1", nil, bearerFor(t, 7))
	require.Equal(t, http.StatusOK, w.Code)
}
