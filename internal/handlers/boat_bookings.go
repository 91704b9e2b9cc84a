package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/booking"
	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
)

type boatBookingStore interface {
	Create(ctx context.Context, b models.BoatBooking) (models.BoatBooking, error)
	GetForCustomer(ctx context.Context, id int64, customerID int64) (models.BoatBooking, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.BoatBooking, error)
}

type createBoatBookingRequest struct {
	OrderID          *string         `json:"order_id"`
	BoatID           *int64          `json:"boat_id"`
	BoatName         *string         `json:"boat_name"`
	BoatImageURL     *string         `json:"boat_image_url"`
	BoatAddress      *string         `json:"boat_address"`
	CustomerID       *int64          `json:"customer_id"`
	CustomerName     *string         `json:"customer_name"`
	CustomerContact  *string         `json:"customer_contact"`
	CustomerEmail    *string         `json:"customer_email"`
	BookingDate      string          `json:"booking_date"`
	StartTime        string          `json:"start_time"`
	EndTime          string          `json:"end_time"`
	CaptainName      *string         `json:"captain_name"`
	CaptainImageURL  *string         `json:"captain_image_url"`
	DestinationName  *string         `json:"destination_name"`
	DestinationPrice *booking.Amount `json:"destination_price"`
	DestinationTime  *string         `json:"destination_time"`
	PickUpAddress    *string         `json:"pick_up_address"`
	Subtotal         *booking.Amount `json:"subtotal"`
	DiscountAmount   *booking.Amount `json:"discount_amount"`
	CouponCode       *string         `json:"coupon_code"`
	TotalAmount      *booking.Amount `json:"total_amount"`
	PricePerHour     *string         `json:"price_per_hour"`
	TransactionType  *string         `json:"transaction_type"`
	TransactionID    *string         `json:"transaction_id"`
	PaymentStatus    *string         `json:"payment_status"`
	ItemsJSON        *string         `json:"items_json"`
	BookingStatus    *string         `json:"booking_status"`
}

func (h HandlerSet) CreateBoatBooking(c *gin.Context) {
	var req createBoatBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}
	if req.BoatID == nil || req.BookingDate == "" || req.StartTime == "" || req.EndTime == "" {
		respondError(c, http.StatusBadRequest, "boat_id, booking_date, start_time and end_time are required", "validation_failed")
		return
	}

	b := models.BoatBooking{
		OrderID:          req.OrderID,
		BoatID:           *req.BoatID,
		BoatName:         req.BoatName,
		BoatImageURL:     req.BoatImageURL,
		BoatAddress:      req.BoatAddress,
		CustomerID:       booking.OwnerID(principalID(c), req.CustomerID),
		CustomerName:     req.CustomerName,
		CustomerContact:  req.CustomerContact,
		CustomerEmail:    req.CustomerEmail,
		BookingDate:      booking.NormalizeDate(req.BookingDate),
		StartTime:        booking.NormalizeTime(req.StartTime),
		EndTime:          booking.NormalizeTime(req.EndTime),
		CaptainName:      req.CaptainName,
		CaptainImageURL:  req.CaptainImageURL,
		DestinationName:  req.DestinationName,
		DestinationPrice: req.DestinationPrice.Float(),
		DestinationTime:  req.DestinationTime,
		PickUpAddress:    req.PickUpAddress,
		Subtotal:         req.Subtotal.Float(),
		CouponCode:       req.CouponCode,
		TotalAmount:      req.TotalAmount.Float(),
		PricePerHour:     req.PricePerHour,
		TransactionType:  req.TransactionType,
		TransactionID:    req.TransactionID,
		PaymentStatus:    req.PaymentStatus,
		ItemsJSON:        req.ItemsJSON,
		BookingStatus:    "booked",
	}
	if d := req.DiscountAmount.Float(); d != nil {
		b.DiscountAmount = *d
	}
	if req.BookingStatus != nil && *req.BookingStatus != "" {
		b.BookingStatus = *req.BookingStatus
	}
	if b.OrderID == nil || *b.OrderID == "" {
		ref := booking.NewReference("BOAT")
		b.OrderID = &ref
	}

	created, err := h.boatBookings.Create(c.Request.Context(), b)
	if err != nil {
		h.respondInternal(c, "Failed to create booking", err)
		return
	}

	h.events.BookingCreated(c.Request.Context(), "boat", *created.OrderID, created.CustomerID)
	respondData(c, http.StatusCreated, "Booking created successfully", created)
}

func (h HandlerSet) GetBoatBookings(c *gin.Context) {
	claims := principalID(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", "invalid_token")
		return
	}

	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid booking id", "validation_failed")
			return
		}
		b, err := h.boatBookings.GetForCustomer(c.Request.Context(), id, *claims)
		if err != nil {
			if errors.Is(err, repository.ErrBookingNotFound) {
				respondError(c, http.StatusNotFound, "Booking not found", "not_found")
				return
			}
			h.respondInternal(c, "Failed to fetch booking", err)
			return
		}
		respondData(c, http.StatusOK, "Booking fetched successfully", b)
		return
	}

	bookings, err := h.boatBookings.ListByCustomer(c.Request.Context(), *claims)
	if err != nil {
		h.respondInternal(c, "Failed to fetch bookings", err)
		return
	}
	respondData(c, http.StatusOK, "Bookings fetched successfully", bookings)
}
