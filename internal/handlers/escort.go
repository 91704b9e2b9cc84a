package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/booking"
	"marinahub/api/internal/models"
)

type escortStore interface {
	Create(ctx context.Context, b models.EscortBooking) (models.EscortBooking, error)
	List(ctx context.Context, status string) ([]models.EscortBooking, error)
	ListByUser(ctx context.Context, userID int64) ([]models.EscortBooking, error)
}

func (h HandlerSet) ListEscortBookings(c *gin.Context) {
	status := ""
	switch strings.ToLower(strings.TrimSpace(c.Query("status"))) {
	case "pending":
		status = "Pending"
	case "confirmed":
		status = "Confirmed"
	case "completed":
		status = "Completed"
	case "cancelled":
		status = "Cancelled"
	}

	bookings, err := h.escorts.List(c.Request.Context(), status)
	if err != nil {
		h.respondInternal(c, "Failed to fetch escort bookings", err)
		return
	}
	respondData(c, http.StatusOK, "Escort bookings fetched successfully", bookings)
}

func (h HandlerSet) MyEscortBookings(c *gin.Context) {
	userID := principalID(c)
	if userID == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", "invalid_token")
		return
	}

	bookings, err := h.escorts.ListByUser(c.Request.Context(), *userID)
	if err != nil {
		h.respondInternal(c, "Failed to fetch escort bookings", err)
		return
	}
	respondData(c, http.StatusOK, "Escort bookings fetched successfully", bookings)
}

type createEscortBookingRequest struct {
	UserID              *int64  `json:"user_id"`
	FullName            *string `json:"full_name"`
	ContactNumber       *string `json:"contact_number"`
	EmailID             *string `json:"email_id"`
	EscortServiceType   *string `json:"escort_service_type"`
	VIPServiceType      *string `json:"vip_service_type"`
	RequestDate         *string `json:"request_date"`
	RequestTime         *string `json:"request_time"`
	StartDate           *string `json:"start_date"`
	EndDate             *string `json:"end_date"`
	StartTime           *string `json:"start_time"`
	EndTime             *string `json:"end_time"`
	Location            *string `json:"location"`
	PrimaryLocation     *string `json:"primary_location"`
	SpecialRequests     *string `json:"special_requests"`
	AdditionalNotes     *string `json:"additional_notes"`
	AdditionalLocations *int    `json:"additional_locations"`
}

func (h HandlerSet) CreateEscortBooking(c *gin.Context) {
	var req createEscortBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}

	b := models.EscortBooking{
		BookingID:         booking.NewReference("ESC"),
		UserID:            booking.OwnerID(principalID(c), req.UserID),
		FullName:          req.FullName,
		ContactNumber:     req.ContactNumber,
		EmailID:           req.EmailID,
		EscortServiceType: req.EscortServiceType,
		VIPServiceType:    req.VIPServiceType,
		RequestDate:       normalizeDatePtr(req.RequestDate),
		RequestTime:       normalizeTimePtr(req.RequestTime),
		StartDate:         normalizeDatePtr(req.StartDate),
		EndDate:           normalizeDatePtr(req.EndDate),
		StartTime:         normalizeTimePtr(req.StartTime),
		EndTime:           normalizeTimePtr(req.EndTime),
		Location:          req.Location,
		PrimaryLocation:   req.PrimaryLocation,
		SpecialRequests:   req.SpecialRequests,
		AdditionalNotes:   req.AdditionalNotes,
		Status:            "Pending",
	}
	if req.AdditionalLocations != nil {
		b.AdditionalLocations = *req.AdditionalLocations
	}

	created, err := h.escorts.Create(c.Request.Context(), b)
	if err != nil {
		h.respondInternal(c, "Failed to create escort booking", err)
		return
	}

	h.events.BookingCreated(c.Request.Context(), "escort", created.BookingID, created.UserID)
	respondData(c, http.StatusCreated, "Escort booking created successfully", created)
}
