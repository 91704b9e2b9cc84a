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

type deliveryStore interface {
	CreateOrder(ctx context.Context, o models.DeliveryOrder) (models.DeliveryOrder, error)
	GetOrder(ctx context.Context, id int64) (models.DeliveryOrder, error)
	ListOrders(ctx context.Context, userID *int64) ([]models.DeliveryOrder, error)
	ListLocations(ctx context.Context, deliveryType string, country string) ([]models.DeliveryLocation, error)
	CreateLocation(ctx context.Context, l models.DeliveryLocation) (models.DeliveryLocation, error)
}

func (h HandlerSet) ListDeliveryOrders(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid order id", "validation_failed")
			return
		}
		order, err := h.delivery.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				respondError(c, http.StatusNotFound, "Order not found", "not_found")
				return
			}
			h.respondInternal(c, "Failed to fetch order", err)
			return
		}
		respondData(c, http.StatusOK, "Order fetched successfully", order)
		return
	}

	var userID *int64
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid user id", "validation_failed")
			return
		}
		userID = &id
	}

	orders, err := h.delivery.ListOrders(ctx, userID)
	if err != nil {
		h.respondInternal(c, "Failed to fetch orders", err)
		return
	}
	respondData(c, http.StatusOK, "Orders fetched successfully", orders)
}

func (h HandlerSet) MyDeliveryOrders(c *gin.Context) {
	userID := principalID(c)
	if userID == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", "invalid_token")
		return
	}

	orders, err := h.delivery.ListOrders(c.Request.Context(), userID)
	if err != nil {
		h.respondInternal(c, "Failed to fetch orders", err)
		return
	}
	respondData(c, http.StatusOK, "Orders fetched successfully", orders)
}

func (h HandlerSet) ListDeliveryLocations(c *gin.Context) {
	locations, err := h.delivery.ListLocations(c.Request.Context(), c.Query("delivery_type"), c.Query("country"))
	if err != nil {
		h.respondInternal(c, "Failed to fetch locations", err)
		return
	}
	respondData(c, http.StatusOK, "Locations fetched successfully", locations)
}

type createDeliveryLocationRequest struct {
	DeliveryType string  `json:"delivery_type" binding:"required"`
	CountryName  string  `json:"country_name" binding:"required"`
	CountryCode  *string `json:"country_code"`
	CityName     *string `json:"city_name"`
	PortName     *string `json:"port_name"`
	CarType      *string `json:"car_type"`
	IsPickup     *bool   `json:"is_pickup"`
	IsDropoff    *bool   `json:"is_dropoff"`
	SortOrder    *int    `json:"sort_order"`
}

func (h HandlerSet) CreateDeliveryLocation(c *gin.Context) {
	var req createDeliveryLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "delivery_type and country_name are required", "validation_failed")
		return
	}

	l := models.DeliveryLocation{
		DeliveryType: req.DeliveryType,
		CountryName:  req.CountryName,
		CountryCode:  req.CountryCode,
		CityName:     req.CityName,
		PortName:     req.PortName,
		CarType:      req.CarType,
		IsPickup:     true,
		IsDropoff:    true,
		IsActive:     true,
	}
	if req.IsPickup != nil {
		l.IsPickup = *req.IsPickup
	}
	if req.IsDropoff != nil {
		l.IsDropoff = *req.IsDropoff
	}
	if req.SortOrder != nil {
		l.SortOrder = *req.SortOrder
	}

	created, err := h.delivery.CreateLocation(c.Request.Context(), l)
	if err != nil {
		h.respondInternal(c, "Failed to create location", err)
		return
	}
	respondData(c, http.StatusCreated, "Location created successfully", created)
}

type createDeliveryOrderRequest struct {
	UserID             *int64  `json:"user_id"`
	DeliveryType       *string `json:"delivery_type"`
	PickupCity         *string `json:"pickup_city"`
	DropOffCity        *string `json:"drop_off_city"`
	PickupCountry      *string `json:"pickup_country"`
	DestinationCountry *string `json:"destination_country"`
	DestinationCity    *string `json:"destination_city"`
	OriginPort         *string `json:"origin_port"`
	DestinationPort    *string `json:"destination_port"`
	ContainerType      *string `json:"container_type"`
	CarType            *string `json:"car_type"`
	ApproximateValue   *string `json:"approximate_value"`
	Dimensions         *string `json:"dimensions"`
	Weight             *string `json:"weight"`
	PickUpAddress      *string `json:"pick_up_address"`
	DeliveryAddress    *string `json:"delivery_address"`
	FullName           *string `json:"full_name"`
	ContactDetails     *string `json:"contact_details"`
	EmailID            *string `json:"email_id"`
	ScheduleDate       *string `json:"schedule_date"`
	TimeSlotIndex      *int    `json:"time_slot_index"`
	PaymentType        *string `json:"payment_type"`
}

func (h HandlerSet) CreateDeliveryOrder(c *gin.Context) {
	var req createDeliveryOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}

	o := models.DeliveryOrder{
		BookingID:          booking.NewReference("DEL"),
		UserID:             booking.OwnerID(principalID(c), req.UserID),
		DeliveryType:       req.DeliveryType,
		PickupCity:         req.PickupCity,
		DropOffCity:        req.DropOffCity,
		PickupCountry:      req.PickupCountry,
		DestinationCountry: req.DestinationCountry,
		DestinationCity:    req.DestinationCity,
		OriginPort:         req.OriginPort,
		DestinationPort:    req.DestinationPort,
		ContainerType:      req.ContainerType,
		CarType:            req.CarType,
		ApproximateValue:   req.ApproximateValue,
		Dimensions:         req.Dimensions,
		Weight:             req.Weight,
		PickUpAddress:      req.PickUpAddress,
		DeliveryAddress:    req.DeliveryAddress,
		FullName:           req.FullName,
		ContactDetails:     req.ContactDetails,
		EmailID:            req.EmailID,
		ScheduleDate:       normalizeDatePtr(req.ScheduleDate),
		TimeSlotIndex:      req.TimeSlotIndex,
		PaymentType:        req.PaymentType,
		Status:             "Pending",
	}

	created, err := h.delivery.CreateOrder(c.Request.Context(), o)
	if err != nil {
		h.respondInternal(c, "Failed to create delivery order", err)
		return
	}

	h.events.BookingCreated(c.Request.Context(), "delivery", created.BookingID, created.UserID)
	respondData(c, http.StatusCreated, "Delivery order created successfully", created)
}
