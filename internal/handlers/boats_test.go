package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
)

type fakeBoatStore struct {
	boats      []models.Boat
	created    []models.Boat
	categories []models.BoatCategory
	subNames   map[string][]string
}

func (f *fakeBoatStore) Create(_ context.Context, b models.Boat) (models.Boat, error) {
	b.ID = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBoatStore) GetByID(_ context.Context, id int64) (models.Boat, error) {
	for _, b := range f.boats {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Boat{}, repository.ErrBoatNotFound
}

func (f *fakeBoatStore) List(_ context.Context, category string, subCategory string) ([]models.Boat, error) {
	out := make([]models.Boat, 0)
	for _, b := range f.boats {
		if category != "" && (b.CategoryName == nil || *b.CategoryName != category) {
			continue
		}
		if subCategory != "" && (b.SubCategoryName == nil || *b.SubCategoryName != subCategory) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBoatStore) Categories(_ context.Context) ([]models.BoatCategory, error) {
	return f.categories, nil
}

func (f *fakeBoatStore) SubCategoryNames(_ context.Context, category string) ([]string, error) {
	return f.subNames[category], nil
}

func coastalBoat(id int64, name string, lat, long float64) models.Boat {
	category := "Yacht"
	return models.Boat{
		ID:           id,
		BoatName:     &name,
		CategoryName: &category,
		Lat:          &lat,
		Long:         &long,
	}
}

func TestListBoats_RadiusFilterSortsNearestFirst(t *testing.T) {
	near := coastalBoat(1, "Near", 29.38, 47.99)
	far := coastalBoat(2, "Far", 25.20, 55.27)
	noCoords := models.Boat{ID: 3}
	mid := coastalBoat(4, "Mid", 29.60, 48.10)

	store := &fakeBoatStore{boats: []models.Boat{far, mid, near, noCoords}}
	h := newTestHandlerSet()
	h.boats = store
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/boats/all-boat-list?lat=29.37&long=47.98", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			ID         int64    `json:"id"`
			DistanceKm *float64 `json:"distance_km"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	// Far is over the default 100 km radius; boats without coordinates
	// drop out of a located search.
	require.Len(t, body.Data, 2)
	require.Equal(t, int64(1), body.Data[0].ID)
	require.Equal(t, int64(4), body.Data[1].ID)
	require.NotNil(t, body.Data[0].DistanceKm)
	require.Less(t, *body.Data[0].DistanceKm, *body.Data[1].DistanceKm)
}

func TestListBoats_CategoryFilter(t *testing.T) {
	yacht := coastalBoat(1, "Yacht One", 29, 47)
	fishing := coastalBoat(2, "Fishing One", 29, 47)
	other := "Fishing"
	fishing.CategoryName = &other

	store := &fakeBoatStore{boats: []models.Boat{yacht, fishing}}
	h := newTestHandlerSet()
	h.boats = store
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/boats/all-boat-list?category=Fishing", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "Fishing One", body.Data[0].Name)
}

func TestBoatDetails_NormalizesImagesAndAmenities(t *testing.T) {
	images := `["https://img/one.jpg","https://img/two.jpg"]`
	amenities := `["WiFi","GPS"]`
	boat := models.Boat{ID: 5, PrimaryImageURL: &images, Amenities: &amenities}

	store := &fakeBoatStore{boats: []models.Boat{boat}}
	h := newTestHandlerSet()
	h.boats = store
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/boats/boat-details/5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			ImageURL      string   `json:"image_url"`
			GalleryImages []string `json:"gallery_images"`
			Amenities     []string `json:"amenities"`
			Facilities    []string `json:"facilities"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "https://img/one.jpg", body.Data.ImageURL)
	require.Equal(t, []string{"https://img/one.jpg", "https://img/two.jpg"}, body.Data.GalleryImages)
	require.Equal(t, []string{"WiFi", "GPS"}, body.Data.Amenities)
	require.Equal(t, body.Data.Amenities, body.Data.Facilities)

	w = doJSON(r, http.MethodGet, "/api/boats/boat-details/99", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBoat_StoresAmenitiesAsSent(t *testing.T) {
	store := &fakeBoatStore{}
	h := newTestHandlerSet()
	h.boats = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/boats/add-boat", gin.H{
		"boat_name":      "Sea Star",
		"price_per_hour": "120.500",
		"amenities":      []string{"WiFi"},
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)

	b := store.created[0]
	require.Equal(t, "Sea Star", *b.BoatName)
	require.Equal(t, 120.5, *b.PricePerHour)
	require.JSONEq(t, `["WiFi"]`, *b.Amenities)
}

func TestBoatCategoryList_GroupsSubCategories(t *testing.T) {
	yacht := "Yacht"
	image := " https://img/yacht.jpg "
	store := &fakeBoatStore{
		categories: []models.BoatCategory{{ID: 1, CategoryName: &yacht, Image: &image}},
		subNames:   map[string][]string{"Yacht": {"Luxury", "Sport"}},
	}
	h := newTestHandlerSet()
	h.boats = store
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/boats/category-list", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			Category         string   `json:"category"`
			CategoryImageURL *string  `json:"category_image_url"`
			SubCategories    []string `json:"sub_categories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "Yacht", body.Data[0].Category)
	require.NotNil(t, body.Data[0].CategoryImageURL)
	require.Equal(t, "https://img/yacht.jpg", *body.Data[0].CategoryImageURL)
	require.Equal(t, []string{"Luxury", "Sport"}, body.Data[0].SubCategories)
}

func TestParseImageList_Variants(t *testing.T) {
	single := "https://img/a.jpg"
	require.Equal(t, []string{single}, parseImageList(&single))

	csv := "https://img/a.jpg, https://img/b.jpg"
	require.Equal(t, []string{"https://img/a.jpg", "https://img/b.jpg"}, parseImageList(&csv))

	blank := "  "
	require.Empty(t, parseImageList(&blank))
	require.Empty(t, parseImageList(nil))
}
