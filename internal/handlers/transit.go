package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/booking"
	"marinahub/api/internal/models"
)

type transitStore interface {
	ListVehicles(ctx context.Context) ([]models.TransitVehicle, error)
	CreateTripBooking(ctx context.Context, b models.TransitTripBooking) (models.TransitTripBooking, error)
	ListTripBookingsByUser(ctx context.Context, userID int64) ([]models.TransitTripBooking, error)
}

func (h HandlerSet) ListTransitVehicles(c *gin.Context) {
	vehicles, err := h.transit.ListVehicles(c.Request.Context())
	if err != nil {
		h.respondInternal(c, "Failed to fetch vehicles", err)
		return
	}
	respondData(c, http.StatusOK, "Vehicles fetched successfully", vehicles)
}

// TransitBrandsModels groups the fleet into brand buckets for the
// booking form pickers.
func (h HandlerSet) TransitBrandsModels(c *gin.Context) {
	vehicles, err := h.transit.ListVehicles(c.Request.Context())
	if err != nil {
		h.respondInternal(c, "Failed to fetch vehicles", err)
		return
	}

	byBrand := make(map[string][]string)
	var order []string
	for _, v := range vehicles {
		if v.Brand == nil {
			continue
		}
		if _, seen := byBrand[*v.Brand]; !seen {
			order = append(order, *v.Brand)
		}
		model := ""
		if v.Model != nil {
			model = *v.Model
		}
		byBrand[*v.Brand] = append(byBrand[*v.Brand], model)
	}

	grouped := make([]gin.H, 0, len(order))
	for _, brand := range order {
		grouped = append(grouped, gin.H{"brand": brand, "models": byBrand[brand]})
	}
	respondData(c, http.StatusOK, "Brands fetched successfully", grouped)
}

type createTripBookingRequest struct {
	UserID              *int64          `json:"user_id"`
	Brand               *string         `json:"brand"`
	Model               *string         `json:"model"`
	PassengerName       *string         `json:"passenger_name"`
	ContactNumber       *string         `json:"contact_number"`
	EmailID             *string         `json:"email_id"`
	PickupAddress       *string         `json:"pickup_address"`
	DropAddress         *string         `json:"drop_address"`
	TripDate            *string         `json:"trip_date"`
	TripTime            *string         `json:"trip_time"`
	DriverDetails       *string         `json:"driver_details"`
	DriverContactNumber *string         `json:"driver_contact_number"`
	Fare                *booking.Amount `json:"fare"`
	PaymentMethod       *string         `json:"payment_method"`
}

func (h HandlerSet) CreateTripBooking(c *gin.Context) {
	var req createTripBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}

	b := models.TransitTripBooking{
		TripID:              booking.NewReference("TRIP"),
		UserID:              booking.OwnerID(principalID(c), req.UserID),
		Brand:               req.Brand,
		Model:               req.Model,
		PassengerName:       req.PassengerName,
		ContactNumber:       req.ContactNumber,
		EmailID:             req.EmailID,
		PickupAddress:       req.PickupAddress,
		DropAddress:         req.DropAddress,
		TripDate:            normalizeDatePtr(req.TripDate),
		TripTime:            normalizeTimePtr(req.TripTime),
		DriverDetails:       req.DriverDetails,
		DriverContactNumber: req.DriverContactNumber,
		Fare:                req.Fare.Float(),
		PaymentMethod:       req.PaymentMethod,
		PaymentStatus:       "Pending",
		TripStatus:          "Booked",
	}

	created, err := h.transit.CreateTripBooking(c.Request.Context(), b)
	if err != nil {
		h.respondInternal(c, "Failed to create trip booking", err)
		return
	}

	h.events.BookingCreated(c.Request.Context(), "transit", created.TripID, created.UserID)
	respondData(c, http.StatusCreated, "Trip booking created successfully", created)
}

func (h HandlerSet) MyTripBookings(c *gin.Context) {
	userID := principalID(c)
	if userID == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", "invalid_token")
		return
	}

	bookings, err := h.transit.ListTripBookingsByUser(c.Request.Context(), *userID)
	if err != nil {
		h.respondInternal(c, "Failed to fetch trip bookings", err)
		return
	}
	respondData(c, http.StatusOK, "Trip bookings fetched successfully", bookings)
}
