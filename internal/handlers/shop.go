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

type shopStore interface {
	Categories(ctx context.Context) ([]string, error)
	ListItems(ctx context.Context, category string) ([]models.ShopItem, error)
	GetItem(ctx context.Context, id int64) (models.ShopItem, error)
	RelatedItems(ctx context.Context, category string, excludeID int64, limit int) ([]models.ShopItem, error)
	CreateItem(ctx context.Context, i models.ShopItem) (models.ShopItem, error)
	CreateOrder(ctx context.Context, userID *int64, lines []repository.OrderLine) (models.ShopOrder, error)
	ListOrders(ctx context.Context, userID *int64) ([]models.ShopOrder, error)
	GetOrderWithItems(ctx context.Context, id int64) (models.ShopOrder, error)
}

func (h HandlerSet) ShopCategories(c *gin.Context) {
	names, err := h.shop.Categories(c.Request.Context())
	if err != nil {
		h.respondInternal(c, "Failed to fetch categories", err)
		return
	}

	categories := make([]gin.H, 0, len(names))
	for i, name := range names {
		categories = append(categories, gin.H{"id": i + 1, "name": name})
	}
	respondData(c, http.StatusOK, "Categories fetched successfully", categories)
}

func (h HandlerSet) ListShopItems(c *gin.Context) {
	ctx := c.Request.Context()
	category := c.Query("category")

	if category == "" {
		var cached []models.ShopItem
		if h.catalog.Get(ctx, cache.KeyShopItems, &cached) {
			respondData(c, http.StatusOK, "Items fetched successfully", cached)
			return
		}
	}

	items, err := h.shop.ListItems(ctx, category)
	if err != nil {
		h.respondInternal(c, "Failed to fetch items", err)
		return
	}
	for i := range items {
		items[i].ImageURL = h.fullImageURL(items[i].ImageURL)
	}
	if category == "" {
		h.catalog.Set(ctx, cache.KeyShopItems, items)
	}
	respondData(c, http.StatusOK, "Items fetched successfully", items)
}

func (h HandlerSet) ShopItemDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid item id", "validation_failed")
		return
	}

	ctx := c.Request.Context()
	item, err := h.shop.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			respondError(c, http.StatusNotFound, "Item not found", "not_found")
			return
		}
		h.respondInternal(c, "Failed to fetch item", err)
		return
	}
	item.ImageURL = h.fullImageURL(item.ImageURL)

	related, err := h.shop.RelatedItems(ctx, item.CategoryName, item.ID, 4)
	if err != nil {
		h.respondInternal(c, "Failed to fetch related items", err)
		return
	}
	for i := range related {
		related[i].ImageURL = h.fullImageURL(related[i].ImageURL)
	}

	respondData(c, http.StatusOK, "Item fetched successfully", gin.H{
		"item":    item,
		"related": related,
	})
}

type createShopItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  *string         `json:"description"`
	Price        *booking.Amount `json:"price"`
	ImageURL     *string         `json:"image_url"`
	CategoryName string          `json:"category_name" binding:"required"`
}

func (h HandlerSet) CreateShopItem(c *gin.Context) {
	var req createShopItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name and category_name are required", "validation_failed")
		return
	}

	item := models.ShopItem{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		CategoryName: req.CategoryName,
	}
	if p := req.Price.Float(); p != nil {
		item.Price = *p
	}

	created, err := h.shop.CreateItem(c.Request.Context(), item)
	if err != nil {
		h.respondInternal(c, "Failed to create item", err)
		return
	}
	h.catalog.Invalidate(c.Request.Context(), cache.KeyShopItems)
	respondData(c, http.StatusCreated, "Item created successfully", created)
}

type createShopOrderRequest struct {
	UserID *int64 `json:"user_id"`
	Items  []struct {
		ItemID   int64 `json:"item_id"`
		Quantity int   `json:"quantity"`
	} `json:"items" binding:"required"`
}

func (h HandlerSet) CreateShopOrder(c *gin.Context) {
	var req createShopOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		respondError(c, http.StatusBadRequest, "items are required", "validation_failed")
		return
	}

	lines := make([]repository.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, repository.OrderLine{ItemID: it.ItemID, Quantity: it.Quantity})
	}

	userID := booking.OwnerID(principalID(c), req.UserID)
	order, err := h.shop.CreateOrder(c.Request.Context(), userID, lines)
	if err != nil {
		if errors.Is(err, repository.ErrNoValidItems) {
			respondError(c, http.StatusBadRequest, "No valid items in order", "validation_failed")
			return
		}
		h.respondInternal(c, "Failed to create order", err)
		return
	}

	h.events.BookingCreated(c.Request.Context(), "shop", strconv.FormatInt(order.ID, 10), userID)
	respondData(c, http.StatusCreated, "Order placed successfully", order)
}

func (h HandlerSet) ListShopOrders(c *gin.Context) {
	var userID *int64
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid user id", "validation_failed")
			return
		}
		userID = &id
	}

	orders, err := h.shop.ListOrders(c.Request.Context(), userID)
	if err != nil {
		h.respondInternal(c, "Failed to fetch orders", err)
		return
	}
	respondData(c, http.StatusOK, "Orders fetched successfully", orders)
}

func (h HandlerSet) ShopOrderDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid order id", "validation_failed")
		return
	}

	order, err := h.shop.GetOrderWithItems(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrShopOrderNotFound) {
			respondError(c, http.StatusNotFound, "Order not found", "not_found")
			return
		}
		h.respondInternal(c, "Failed to fetch order", err)
		return
	}
	respondData(c, http.StatusOK, "Order fetched successfully", order)
}

// fullImageURL prefixes relative image paths with the configured CDN
// base. Absolute URLs pass through untouched.
func (h HandlerSet) fullImageURL(p *string) *string {
	if p == nil || *p == "" || h.cfg.ImageBaseURL == "" {
		return p
	}
	if strings.HasPrefix(*p, "http://") || strings.HasPrefix(*p, "https://") {
		return p
	}
	full := strings.TrimRight(h.cfg.ImageBaseURL, "/") + "/" + strings.TrimLeft(*p, "/")
	return &full
}
