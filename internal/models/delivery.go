package models

import "time"

type DeliveryOrder struct {
	ID                 int64     `json:"id"`
	BookingID          string    `json:"booking_id"`
	UserID             *int64    `json:"user_id"`
	DeliveryType       *string   `json:"delivery_type"`
	PickupCity         *string   `json:"pickup_city"`
	DropOffCity        *string   `json:"drop_off_city"`
	PickupCountry      *string   `json:"pickup_country"`
	DestinationCountry *string   `json:"destination_country"`
	DestinationCity    *string   `json:"destination_city"`
	OriginPort         *string   `json:"origin_port"`
	DestinationPort    *string   `json:"destination_port"`
	ContainerType      *string   `json:"container_type"`
	CarType            *string   `json:"car_type"`
	ApproximateValue   *string   `json:"approximate_value"`
	Dimensions         *string   `json:"dimensions"`
	Weight             *string   `json:"weight"`
	PickUpAddress      *string   `json:"pick_up_address"`
	DeliveryAddress    *string   `json:"delivery_address"`
	FullName           *string   `json:"full_name"`
	ContactDetails     *string   `json:"contact_details"`
	EmailID            *string   `json:"email_id"`
	ScheduleDate       *string   `json:"schedule_date"`
	TimeSlotIndex      *int      `json:"time_slot_index"`
	PaymentType        *string   `json:"payment_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DeliveryLocation is one row of the selection config that drives the
// pickup/dropoff pickers in the delivery flow.
type DeliveryLocation struct {
	ID           int64   `json:"id"`
	DeliveryType string  `json:"delivery_type"`
	CountryName  string  `json:"country_name"`
	CountryCode  *string `json:"country_code"`
	CityName     *string `json:"city_name"`
	PortName     *string `json:"port_name"`
	CarType      *string `json:"car_type"`
	IsPickup     bool    `json:"is_pickup"`
	IsDropoff    bool    `json:"is_dropoff"`
	IsActive     bool    `json:"is_active"`
	SortOrder    int     `json:"sort_order"`
}
