package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/booking"
	"marinahub/api/internal/cache"
	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
)

type boatStore interface {
	Create(ctx context.Context, b models.Boat) (models.Boat, error)
	GetByID(ctx context.Context, id int64) (models.Boat, error)
	List(ctx context.Context, category string, subCategory string) ([]models.Boat, error)
	Categories(ctx context.Context) ([]models.BoatCategory, error)
	SubCategoryNames(ctx context.Context, category string) ([]string, error)
}

// boatView is the API shape of a boat. Name, ImageURL, GalleryImages
// and the amenities list are derived from the stored row; Facilities
// mirrors the amenities list for older clients.
type boatView struct {
	models.Boat
	Name          string   `json:"name"`
	ImageURL      string   `json:"image_url"`
	GalleryImages []string `json:"gallery_images"`
	Amenities     []string `json:"amenities"`
	Facilities    []string `json:"facilities"`
	DistanceKm    *float64 `json:"distance_km,omitempty"`
}

func newBoatView(b models.Boat) boatView {
	v := boatView{Boat: b}
	if b.BoatName != nil {
		v.Name = *b.BoatName
	}
	v.GalleryImages = parseImageList(b.PrimaryImageURL)
	if len(v.GalleryImages) > 0 {
		v.ImageURL = v.GalleryImages[0]
	}
	v.Amenities = parseAmenities(b.Amenities)
	v.Facilities = v.Amenities
	return v
}

// parseImageList splits a stored image field that may hold a single
// URL, a JSON array of URLs, or a comma-separated list.
func parseImageList(raw *string) []string {
	if raw == nil {
		return []string{}
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return []string{}
	}

	var arr []any
	if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
		urls := make([]string, 0, len(arr))
		for _, item := range arr {
			if item == nil {
				continue
			}
			if s := fmt.Sprint(item); s != "" {
				urls = append(urls, s)
			}
		}
		return urls
	}

	if strings.Contains(trimmed, ",") {
		urls := make([]string, 0)
		for _, part := range strings.Split(trimmed, ",") {
			if p := strings.TrimSpace(part); p != "" {
				urls = append(urls, p)
			}
		}
		return urls
	}
	return []string{trimmed}
}

func parseAmenities(raw *string) []string {
	if raw == nil {
		return []string{}
	}

	var arr []any
	if err := json.Unmarshal([]byte(*raw), &arr); err == nil {
		list := make([]string, 0, len(arr))
		for _, item := range arr {
			list = append(list, fmt.Sprint(item))
		}
		return list
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(*raw), &obj); err == nil {
		list := make([]string, 0, len(obj))
		for _, item := range obj {
			list = append(list, fmt.Sprint(item))
		}
		sort.Strings(list)
		return list
	}
	return []string{}
}

// haversineKm is the great-circle distance between two points in
// kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func (h HandlerSet) ListBoats(c *gin.Context) {
	ctx := c.Request.Context()
	category := c.Query("category")
	subCategory := c.Query("sub_category")
	rawLat := c.Query("lat")
	rawLong := c.Query("long")

	unfiltered := category == "" && subCategory == "" && rawLat == "" && rawLong == ""
	if unfiltered {
		var cached []boatView
		if h.catalog.Get(ctx, cache.KeyBoats, &cached) {
			respondData(c, http.StatusOK, "Boat list fetched successfully", cached)
			return
		}
	}

	boats, err := h.boats.List(ctx, category, subCategory)
	if err != nil {
		h.respondInternal(c, "Failed to fetch boat list", err)
		return
	}

	views := make([]boatView, 0, len(boats))
	for _, b := range boats {
		views = append(views, newBoatView(b))
	}

	// Boats without usable coordinates are dropped from a located
	// search; the rest are sorted nearest first within the radius.
	if rawLat != "" && rawLong != "" {
		userLat, errLat := strconv.ParseFloat(rawLat, 64)
		userLong, errLong := strconv.ParseFloat(rawLong, 64)
		if errLat == nil && errLong == nil {
			radius := 100.0
			if rawRadius := c.Query("radius_km"); rawRadius != "" {
				if parsed, err := strconv.ParseFloat(rawRadius, 64); err == nil {
					radius = parsed
				}
			}

			nearby := make([]boatView, 0, len(views))
			for _, v := range views {
				if v.Lat == nil || v.Long == nil {
					continue
				}
				dist := haversineKm(userLat, userLong, *v.Lat, *v.Long)
				if dist > radius {
					continue
				}
				v.DistanceKm = &dist
				nearby = append(nearby, v)
			}
			sort.SliceStable(nearby, func(i, j int) bool {
				return *nearby[i].DistanceKm < *nearby[j].DistanceKm
			})
			views = nearby
		}
	}

	if unfiltered {
		h.catalog.Set(ctx, cache.KeyBoats, views)
	}
	respondData(c, http.StatusOK, "Boat list fetched successfully", views)
}

func (h HandlerSet) BoatDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid boat id", "validation_failed")
		return
	}

	boat, err := h.boats.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBoatNotFound) {
			respondError(c, http.StatusNotFound, "Boat not found", "not_found")
			return
		}
		h.respondInternal(c, "Failed to fetch boat details", err)
		return
	}
	respondData(c, http.StatusOK, "Boat details fetched successfully", newBoatView(boat))
}

type createBoatRequest struct {
	BoatName             *string         `json:"boat_name"`
	VendorName           *string         `json:"vendor_name"`
	CategoryName         *string         `json:"category_name"`
	SubCategoryName      *string         `json:"sub_category_name"`
	Status               *string         `json:"status"`
	Capacity             *int            `json:"capacity"`
	PricePerHour         *booking.Amount `json:"price_per_hour"`
	PricePerHourCurrency *string         `json:"price_per_hour_currency"`
	PricePerDay          *booking.Amount `json:"price_per_day"`
	PricePerDayCurrency  *string         `json:"price_per_day_currency"`
	PrimaryImageURL      *string         `json:"primary_image_url"`
	Lat                  *float64        `json:"lat"`
	Long                 *float64        `json:"long"`
	LengthMeters         *float64        `json:"length_meters"`
	YearBuilt            *int            `json:"year_built"`
	Description          *string         `json:"description"`
	Amenities            json.RawMessage `json:"amenities"`
}

func (h HandlerSet) CreateBoat(c *gin.Context) {
	var req createBoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}

	boat := models.Boat{
		BoatName:             req.BoatName,
		VendorName:           req.VendorName,
		CategoryName:         req.CategoryName,
		SubCategoryName:      req.SubCategoryName,
		Status:               req.Status,
		Capacity:             req.Capacity,
		PricePerHour:         req.PricePerHour.Float(),
		PricePerHourCurrency: req.PricePerHourCurrency,
		PricePerDay:          req.PricePerDay.Float(),
		PricePerDayCurrency:  req.PricePerDayCurrency,
		PrimaryImageURL:      req.PrimaryImageURL,
		Lat:                  req.Lat,
		Long:                 req.Long,
		LengthMeters:         req.LengthMeters,
		YearBuilt:            req.YearBuilt,
		Description:          req.Description,
	}
	// Amenities are stored as the client sent them.
	if len(req.Amenities) > 0 {
		amenities := string(req.Amenities)
		boat.Amenities = &amenities
	}

	created, err := h.boats.Create(c.Request.Context(), boat)
	if err != nil {
		h.respondInternal(c, "Failed to add boat", err)
		return
	}
	h.catalog.Invalidate(c.Request.Context(), cache.KeyBoats)
	respondData(c, http.StatusCreated, "Boat added successfully", created)
}

func (h HandlerSet) BoatCategoryList(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.boats.Categories(ctx)
	if err != nil {
		h.respondInternal(c, "Failed to fetch category list", err)
		return
	}

	list := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		name := ""
		if cat.CategoryName != nil {
			name = strings.TrimSpace(*cat.CategoryName)
		}
		var imageURL *string
		if cat.Image != nil && strings.TrimSpace(*cat.Image) != "" {
			trimmed := strings.TrimSpace(*cat.Image)
			imageURL = &trimmed
		}

		subCategories, err := h.boats.SubCategoryNames(ctx, name)
		if err != nil {
			h.respondInternal(c, "Failed to fetch category list", err)
			return
		}

		list = append(list, gin.H{
			"category":           name,
			"category_image_url": imageURL,
			"sub_categories":     subCategories,
		})
	}
	respondData(c, http.StatusOK, "Category list fetched successfully", list)
}
