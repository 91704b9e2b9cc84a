package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/booking"
	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
)

type parkingStore interface {
	Create(ctx context.Context, b models.ParkingBooking) (models.ParkingBooking, error)
	GetForUser(ctx context.Context, id int64, userID int64) (models.ParkingBooking, error)
	ListByUser(ctx context.Context, userID int64, paymentStatus string, bookingStatus string) ([]models.ParkingBooking, error)
}

type createParkingBookingRequest struct {
	CustomerName  *string         `json:"customer_name"`
	ParkingID     *int64          `json:"parking_id"`
	ParkingName   *string         `json:"parking_name"`
	MarinaName    *string         `json:"marina_name"`
	LocationName  *string         `json:"location_name"`
	FullAddress   *string         `json:"full_address"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	StartTime     *string         `json:"start_time"`
	EndTime       *string         `json:"end_time"`
	TotalAmount   *booking.Amount `json:"total_amount"`
	Currency      *string         `json:"currency"`
	PaymentStatus *string         `json:"payment_status"`
	TransactionID *string         `json:"transaction_id"`
	Notes         *string         `json:"notes"`
}

func (h HandlerSet) CreateParkingBooking(c *gin.Context) {
	userID := principalID(c)
	if userID == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", "invalid_token")
		return
	}

	var req createParkingBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}
	if req.StartDate == "" || req.EndDate == "" {
		respondError(c, http.StatusBadRequest, "start_date and end_date are required", "validation_failed")
		return
	}

	b := models.ParkingBooking{
		UserID:        *userID,
		CustomerName:  req.CustomerName,
		ParkingID:     req.ParkingID,
		ParkingName:   req.ParkingName,
		MarinaName:    req.MarinaName,
		LocationName:  req.LocationName,
		FullAddress:   req.FullAddress,
		StartDate:     booking.NormalizeDate(req.StartDate),
		EndDate:       booking.NormalizeDate(req.EndDate),
		StartTime:     normalizeTimePtr(req.StartTime),
		EndTime:       normalizeTimePtr(req.EndTime),
		TotalAmount:   req.TotalAmount.Float(),
		Currency:      "KWD",
		PaymentStatus: req.PaymentStatus,
		TransactionID: req.TransactionID,
		BookingStatus: "booked",
		Notes:         req.Notes,
	}
	if req.Currency != nil && *req.Currency != "" {
		b.Currency = *req.Currency
	}

	// Timestamps and duration are only derivable when the dates parsed
	// cleanly; raw passthrough input leaves them unset.
	b.CheckIn = stampFrom(booking.ParseDateDMY(req.StartDate), b.StartTime)
	b.CheckOut = stampFrom(booking.ParseDateDMY(req.EndDate), b.EndTime)
	if b.CheckIn != nil && b.CheckOut != nil && b.CheckOut.After(*b.CheckIn) {
		hours := int(math.Round(b.CheckOut.Sub(*b.CheckIn).Hours()))
		b.DurationHours = &hours
	}

	created, err := h.parking.Create(c.Request.Context(), b)
	if err != nil {
		h.respondInternal(c, "Failed to create parking booking", err)
		return
	}

	ref := strconv.FormatInt(created.ID, 10)
	if created.BookingCode != nil {
		ref = *created.BookingCode
	}
	h.events.BookingCreated(c.Request.Context(), "parking", ref, userID)
	respondData(c, http.StatusCreated, "Parking booking created successfully", created)
}

func (h HandlerSet) GetParkingBookings(c *gin.Context) {
	userID := principalID(c)
	if userID == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", "invalid_token")
		return
	}

	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid booking id", "validation_failed")
			return
		}
		b, err := h.parking.GetForUser(c.Request.Context(), id, *userID)
		if err != nil {
			if errors.Is(err, repository.ErrBookingNotFound) {
				respondError(c, http.StatusNotFound, "Booking not found", "not_found")
				return
			}
			h.respondInternal(c, "Failed to fetch parking booking", err)
			return
		}
		respondData(c, http.StatusOK, "Parking booking fetched successfully", b)
		return
	}

	paymentStatus := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	bookingStatus := strings.ToLower(strings.TrimSpace(c.Query("booking_status")))
	switch bookingStatus {
	case "booked", "cancelled", "completed":
	default:
		bookingStatus = ""
	}

	bookings, err := h.parking.ListByUser(c.Request.Context(), *userID, paymentStatus, bookingStatus)
	if err != nil {
		h.respondInternal(c, "Failed to fetch parking bookings", err)
		return
	}
	respondData(c, http.StatusOK, "Parking bookings fetched successfully", bookings)
}

// stampFrom builds a timestamp from a parsed YYYY-MM-DD date and an
// optional HH:MM:SS time.
func stampFrom(date string, clock *string) *time.Time {
	if date == "" {
		return nil
	}
	hhmmss := "00:00:00"
	if clock != nil && booking.ParseTime(*clock) != "" {
		hhmmss = booking.ParseTime(*clock)
	}
	t, err := time.Parse("2006-01-02 15:04:05", date+" "+hhmmss)
	if err != nil {
		return nil
	}
	return &t
}
