package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/booking"
	"marinahub/api/internal/cache"
	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
)

type chaletStore interface {
	Create(ctx context.Context, ch models.Chalet) (models.Chalet, error)
	GetByID(ctx context.Context, id int64) (models.Chalet, error)
	List(ctx context.Context) ([]models.Chalet, error)
	CreateBooking(ctx context.Context, b models.ChaletBooking) (models.ChaletBooking, error)
	ListBookingsByCustomer(ctx context.Context, customerID int64) ([]models.ChaletBooking, error)
}

func (h HandlerSet) ListChalets(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Chalet
	if h.catalog.Get(ctx, cache.KeyChalets, &cached) {
		respondData(c, http.StatusOK, "Chalets fetched successfully", cached)
		return
	}

	chalets, err := h.chalets.List(ctx)
	if err != nil {
		h.respondInternal(c, "Failed to fetch chalets", err)
		return
	}
	h.catalog.Set(ctx, cache.KeyChalets, chalets)
	respondData(c, http.StatusOK, "Chalets fetched successfully", chalets)
}

func (h HandlerSet) ChaletDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid chalet id", "validation_failed")
		return
	}

	chalet, err := h.chalets.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrChaletNotFound) {
			respondError(c, http.StatusNotFound, "Chalet not found", "not_found")
			return
		}
		h.respondInternal(c, "Failed to fetch chalet", err)
		return
	}
	respondData(c, http.StatusOK, "Chalet fetched successfully", chalet)
}

type createChaletRequest struct {
	Name          *string         `json:"name"`
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	Address       *string         `json:"address"`
	PricePerNight *booking.Amount `json:"price_per_night"`
	Bedrooms      *int            `json:"bedrooms"`
	Bathrooms     *int            `json:"bathrooms"`
	MaxGuests     *int            `json:"max_guests"`
	ImageURL      *string         `json:"image_url"`
	AmenitiesJSON *string         `json:"amenities_json"`
	Status        *string         `json:"status"`
}

func (h HandlerSet) CreateChalet(c *gin.Context) {
	var req createChaletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}

	chalet := models.Chalet{
		Name:          req.Name,
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		PricePerNight: req.PricePerNight.Float(),
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		MaxGuests:     req.MaxGuests,
		ImageURL:      req.ImageURL,
		AmenitiesJSON: req.AmenitiesJSON,
		Status:        req.Status,
	}

	created, err := h.chalets.Create(c.Request.Context(), chalet)
	if err != nil {
		h.respondInternal(c, "Failed to create chalet", err)
		return
	}
	h.catalog.Invalidate(c.Request.Context(), cache.KeyChalets)
	respondData(c, http.StatusCreated, "Chalet created successfully", created)
}

type createChaletBookingRequest struct {
	ChaletID      *int64          `json:"chalet_id"`
	CustomerID    *int64          `json:"customer_id"`
	CheckInDate   *string         `json:"check_in_date"`
	CheckOutDate  *string         `json:"check_out_date"`
	GuestName     *string         `json:"guest_name"`
	ContactNumber *string         `json:"contact_number"`
	EmailID       *string         `json:"email_id"`
	TotalAmount   *booking.Amount `json:"total_amount"`
	Notes         *string         `json:"notes"`
}

func (h HandlerSet) CreateChaletBooking(c *gin.Context) {
	var req createChaletBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}
	if req.ChaletID == nil {
		respondError(c, http.StatusBadRequest, "chalet_id is required", "validation_failed")
		return
	}

	checkIn := normalizeDatePtr(req.CheckInDate)
	checkOut := normalizeDatePtr(req.CheckOutDate)
	// A single-night stay may arrive without a check-out date.
	if checkOut == nil {
		checkOut = checkIn
	}

	b := models.ChaletBooking{
		ChaletID:      *req.ChaletID,
		CustomerID:    booking.OwnerID(principalID(c), req.CustomerID),
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		GuestName:     req.GuestName,
		ContactNumber: req.ContactNumber,
		EmailID:       req.EmailID,
		TotalAmount:   req.TotalAmount.Float(),
		BookingStatus: "booked",
		Notes:         req.Notes,
	}

	created, err := h.chalets.CreateBooking(c.Request.Context(), b)
	if err != nil {
		h.respondInternal(c, "Failed to create chalet booking", err)
		return
	}

	h.events.BookingCreated(c.Request.Context(), "chalet", strconv.FormatInt(created.ID, 10), created.CustomerID)
	respondData(c, http.StatusCreated, "Chalet booking created successfully", created)
}

func (h HandlerSet) MyChaletBookings(c *gin.Context) {
	userID := principalID(c)
	if userID == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", "invalid_token")
		return
	}

	bookings, err := h.chalets.ListBookingsByCustomer(c.Request.Context(), *userID)
	if err != nil {
		h.respondInternal(c, "Failed to fetch chalet bookings", err)
		return
	}
	respondData(c, http.StatusOK, "Chalet bookings fetched successfully", bookings)
}
