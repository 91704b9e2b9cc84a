package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/booking"
	"marinahub/api/internal/cache"
	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
)

type jetStore interface {
	Create(ctx context.Context, j models.Jet) (models.Jet, error)
	GetByID(ctx context.Context, id int64) (models.Jet, error)
	List(ctx context.Context, status string) ([]models.Jet, error)
	CreateBooking(ctx context.Context, b models.JetBooking) (models.JetBooking, error)
	ListBookingsByUser(ctx context.Context, userID int64) ([]models.JetBooking, error)
}

func (h HandlerSet) ListJets(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid jet id", "validation_failed")
			return
		}
		jet, err := h.jets.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrJetNotFound) {
				respondError(c, http.StatusNotFound, "Jet not found", "not_found")
				return
			}
			h.respondInternal(c, "Failed to fetch jet", err)
			return
		}
		respondData(c, http.StatusOK, "Jet fetched successfully", jet)
		return
	}

	// Unknown status values are ignored rather than rejected.
	status := strings.ToUpper(c.Query("status"))
	if status != "ACTIVE" && status != "INACTIVE" {
		status = ""
	}

	if status == "" {
		var cached []models.Jet
		if h.catalog.Get(ctx, cache.KeyJets, &cached) {
			respondData(c, http.StatusOK, "Jets fetched successfully", cached)
			return
		}
	}

	jets, err := h.jets.List(ctx, status)
	if err != nil {
		h.respondInternal(c, "Failed to fetch jets", err)
		return
	}
	if status == "" {
		h.catalog.Set(ctx, cache.KeyJets, jets)
	}
	respondData(c, http.StatusOK, "Jets fetched successfully", jets)
}

type createJetRequest struct {
	Manufacturer      *string `json:"manufacturer"`
	Model             *string `json:"model"`
	PassengerCapacity *int    `json:"passenger_capacity"`
	RangeKm           *int    `json:"range_km"`
	CruiseSpeedKmh    *int    `json:"cruise_speed_kmh"`
	PricePerHour      *string `json:"price_per_hour"`
	PricePerTrip      *string `json:"price_per_trip"`
	Description       *string `json:"description"`
	Images            *string `json:"images"`
	JetType           *string `json:"jet_type"`
	Status            *string `json:"status"`
}

func (h HandlerSet) CreateJet(c *gin.Context) {
	var req createJetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}

	jet := models.Jet{
		Manufacturer:      req.Manufacturer,
		Model:             req.Model,
		PassengerCapacity: req.PassengerCapacity,
		RangeKm:           req.RangeKm,
		CruiseSpeedKmh:    req.CruiseSpeedKmh,
		PricePerHour:      req.PricePerHour,
		PricePerTrip:      req.PricePerTrip,
		Description:       req.Description,
		Images:            req.Images,
		JetType:           req.JetType,
		Status:            "ACTIVE",
	}
	if req.Status != nil && strings.ToUpper(*req.Status) == "INACTIVE" {
		jet.Status = "INACTIVE"
	}

	created, err := h.jets.Create(c.Request.Context(), jet)
	if err != nil {
		h.respondInternal(c, "Failed to create jet", err)
		return
	}
	h.catalog.Invalidate(c.Request.Context(), cache.KeyJets)
	respondData(c, http.StatusCreated, "Jet created successfully", created)
}

type createJetBookingRequest struct {
	UserID        *int64          `json:"user_id"`
	JetID         *int64          `json:"jet_id"`
	Manufacturer  *string         `json:"manufacturer"`
	Model         *string         `json:"model"`
	PassengerName *string         `json:"passenger_name"`
	ContactNumber *string         `json:"contact_number"`
	EmailID       *string         `json:"email_id"`
	Departure     *string         `json:"departure"`
	Destination   *string         `json:"destination"`
	TripDate      *string         `json:"trip_date"`
	TripTime      *string         `json:"trip_time"`
	ReturnDate    *string         `json:"return_date"`
	ReturnTime    *string         `json:"return_time"`
	Passengers    *string         `json:"passengers"`
	JetType       *string         `json:"jet_type"`
	Fare          *booking.Amount `json:"fare"`
	PaymentMethod *string         `json:"payment_method"`
}

func (h HandlerSet) CreateJetBooking(c *gin.Context) {
	var req createJetBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}

	b := models.JetBooking{
		BookingID:     booking.NewReference("JET"),
		UserID:        booking.OwnerID(principalID(c), req.UserID),
		JetID:         req.JetID,
		Manufacturer:  req.Manufacturer,
		Model:         req.Model,
		PassengerName: req.PassengerName,
		ContactNumber: req.ContactNumber,
		EmailID:       req.EmailID,
		Departure:     req.Departure,
		Destination:   req.Destination,
		TripDate:      normalizeDatePtr(req.TripDate),
		TripTime:      normalizeTimePtr(req.TripTime),
		ReturnDate:    normalizeDatePtr(req.ReturnDate),
		ReturnTime:    normalizeTimePtr(req.ReturnTime),
		Passengers:    req.Passengers,
		JetType:       req.JetType,
		Fare:          req.Fare.Float(),
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: "Pending",
		BookingStatus: "Pending",
	}

	created, err := h.jets.CreateBooking(c.Request.Context(), b)
	if err != nil {
		h.respondInternal(c, "Failed to create jet booking", err)
		return
	}

	h.events.BookingCreated(c.Request.Context(), "jet", created.BookingID, created.UserID)
	respondData(c, http.StatusCreated, "Jet booking created successfully", created)
}

func (h HandlerSet) MyJetBookings(c *gin.Context) {
	userID := principalID(c)
	if userID == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", "invalid_token")
		return
	}

	bookings, err := h.jets.ListBookingsByUser(c.Request.Context(), *userID)
	if err != nil {
		h.respondInternal(c, "Failed to fetch jet bookings", err)
		return
	}
	respondData(c, http.StatusOK, "Jet bookings fetched successfully", bookings)
}

func normalizeDatePtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := booking.NormalizeDate(*s)
	return &out
}

func normalizeTimePtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := booking.NormalizeTime(*s)
	return &out
}
