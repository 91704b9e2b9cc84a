package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"marinahub/api/internal/models"
)

type fakeCateringStore struct {
	caterers     []models.Caterer
	menuItems    []models.CatererMenuItem
	orders       []models.CateringOrder
	menuListArgs []*int64
}

func (f *fakeCateringStore) CreateCaterer(_ context.Context, cat models.Caterer) (models.Caterer, error) {
	cat.ID = int64(len(f.caterers) + 1)
	f.caterers = append(f.caterers, cat)
	return cat, nil
}

func (f *fakeCateringStore) ListCaterers(_ context.Context) ([]models.Caterer, error) {
	return f.caterers, nil
}

func (f *fakeCateringStore) CreateMenuItem(_ context.Context, item models.CatererMenuItem) (models.CatererMenuItem, error) {
	item.ID = int64(len(f.menuItems) + 1)
	f.menuItems = append(f.menuItems, item)
	return item, nil
}

func (f *fakeCateringStore) ListMenuItems(_ context.Context, catererID *int64) ([]models.CatererMenuItem, error) {
	f.menuListArgs = append(f.menuListArgs, catererID)
	return f.menuItems, nil
}

func (f *fakeCateringStore) CreateOrder(_ context.Context, o models.CateringOrder) (models.CateringOrder, error) {
	o.ID = int64(len(f.orders) + 1)
	f.orders = append(f.orders, o)
	return o, nil
}

func (f *fakeCateringStore) ListOrdersByUser(_ context.Context, userID int64) ([]models.CateringOrder, error) {
	out := make([]models.CateringOrder, 0)
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func TestListCaterers_AppliesDisplayFallbacks(t *testing.T) {
	name := "Aspen Valley Catering"
	rating := "4.2"
	store := &fakeCateringStore{caterers: []models.Caterer{
		{ID: 1, Name: &name, Rating: &rating},
		{ID: 2},
	}}
	h := newTestHandlerSet()
	h.catering = store
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/caterer/list", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []catererView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	require.Equal(t, "Aspen Valley Catering", body.Data[0].Name)
	require.Equal(t, "4.2", body.Data[0].Rating)
	require.Equal(t, "Caterer 2", body.Data[1].Name)
	require.Equal(t, "4.8", body.Data[1].Rating)
}

func TestCreateCatererMenuItem_RequiresCatererID(t *testing.T) {
	store := &fakeCateringStore{}
	h := newTestHandlerSet()
	h.catering = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/caterer/menu-items", gin.H{
		"name": "Mixed Grill Platter",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, store.menuItems)

	w = doJSON(r, http.MethodPost, "/api/caterer/menu-items", gin.H{
		"caterer_id": 3,
		"name":       "Mixed Grill Platter",
		"price":      "12.750",
		"sort_order": 2,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.menuItems, 1)

	item := store.menuItems[0]
	require.Equal(t, int64(3), item.CatererID)
	require.Equal(t, 12.75, *item.Price)
	require.Equal(t, 2, *item.SortOrder)
}

func TestListCatererMenuItems_OptionalCatererFilter(t *testing.T) {
	store := &fakeCateringStore{}
	h := newTestHandlerSet()
	h.catering = store
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/caterer/menu-items", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/caterer/menu-items?caterer_id=7", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/caterer/menu-items?caterer_id=bogus", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.Len(t, store.menuListArgs, 2)
	require.Nil(t, store.menuListArgs[0])
	require.Equal(t, int64(7), *store.menuListArgs[1])
}

func TestCreateCateringOrder_DefaultsAndOwner(t *testing.T) {
	store := &fakeCateringStore{}
	h := newTestHandlerSet()
	h.catering = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/caterer/orders", gin.H{
		"caterer_id":    4,
		"items_ordered": []gin.H{{"name": "Platter", "qty": 2}},
	}, bearerFor(t, 9))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.orders, 1)

	o := store.orders[0]
	require.Equal(t, int64(9), o.UserID)
	require.Equal(t, int64(4), o.CatererID)
	require.Equal(t, "pending", o.Status)
	require.Equal(t, "pending", o.PaymentStatus)
	require.NotNil(t, o.ItemsOrdered)
	require.JSONEq(t, `[{"name":"Platter","qty":2}]`, *o.ItemsOrdered)
}
