package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
)

type fakeShopStore struct {
	orders    []models.ShopOrder
	lastOwner *int64
	lastLines []repository.OrderLine
}

func (f *fakeShopStore) Categories(_ context.Context) ([]string, error) {
	return []string{"Anchors", "Ropes"}, nil
}

func (f *fakeShopStore) ListItems(_ context.Context, category string) ([]models.ShopItem, error) {
	img := "items/anchor.png"
	return []models.ShopItem{{ID: 1, Name: "Anchor", Price: 10, ImageURL: &img, CategoryName: "Anchors"}}, nil
}

func (f *fakeShopStore) GetItem(_ context.Context, id int64) (models.ShopItem, error) {
	if id != 1 {
		return models.ShopItem{}, repository.ErrItemNotFound
	}
	return models.ShopItem{ID: 1, Name: "Anchor", Price: 10, CategoryName: "Anchors"}, nil
}

func (f *fakeShopStore) RelatedItems(_ context.Context, category string, excludeID int64, limit int) ([]models.ShopItem, error) {
	return nil, nil
}

func (f *fakeShopStore) CreateItem(_ context.Context, i models.ShopItem) (models.ShopItem, error) {
	i.ID = 1
	return i, nil
}

func (f *fakeShopStore) CreateOrder(_ context.Context, userID *int64, lines []repository.OrderLine) (models.ShopOrder, error) {
	f.lastOwner = userID
	f.lastLines = lines
	order := models.ShopOrder{ID: int64(len(f.orders) + 1), UserID: userID, Total: 10, Status: "placed"}
	f.orders = append(f.orders, order)
	return order, nil
}

func (f *fakeShopStore) ListOrders(_ context.Context, userID *int64) ([]models.ShopOrder, error) {
	return f.orders, nil
}

func (f *fakeShopStore) GetOrderWithItems(_ context.Context, id int64) (models.ShopOrder, error) {
	if int(id) > len(f.orders) {
		return models.ShopOrder{}, repository.ErrShopOrderNotFound
	}
	return f.orders[id-1], nil
}

func TestCreateShopOrder_RequiresItems(t *testing.T) {
	h := newTestHandlerSet()
	h.shop = &fakeShopStore{}
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/shop/orders", gin.H{"items": []gin.H{}}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateShopOrder_AttributesOwner(t *testing.T) {
	store := &fakeShopStore{}
	h := newTestHandlerSet()
	h.shop = store
	r := testRouter(h)

	w := doJSON(r, http.MethodPost, "/api/shop/orders", gin.H{
		"user_id": 99,
		"items":   []gin.H{{"item_id": 1, "quantity": 2}},
	}, bearerFor(t, 7))

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, store.lastOwner)
	require.Equal(t, int64(7), *store.lastOwner)
	require.Equal(t, []repository.OrderLine{{ItemID: 1, Quantity: 2}}, store.lastLines)
}

func TestShopItemDetails_NotFound(t *testing.T) {
	h := newTestHandlerSet()
	h.shop = &fakeShopStore{}
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/shop/items/42", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListShopItems_PrefixesImageBase(t *testing.T) {
	h := newTestHandlerSet()
	h.cfg.ImageBaseURL = "https://cdn.example.com"
	h.shop = &fakeShopStore{}
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/shop/items", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "https://cdn.example.com/items/anchor.png")
}

func TestFullImageURL(t *testing.T) {
	h := newTestHandlerSet()
	h.cfg.ImageBaseURL = "https://cdn.example.com/"

	rel := "items/a.png"
	abs := "https://elsewhere.example.com/b.png"

	require.Equal(t, "https://cdn.example.com/items/a.png", *h.fullImageURL(&rel))
	require.Equal(t, abs, *h.fullImageURL(&abs))
	require.Nil(t, h.fullImageURL(nil))
}
