package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"marinahub/api/internal/models"
)

type parkingPlaceStore interface {
	ListPlaces(ctx context.Context, status string) ([]models.ParkingPlace, error)
}

func (h HandlerSet) ListParkingPlaces(c *gin.Context) {
	// Unknown status values are ignored rather than rejected.
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	switch status {
	case "ACTIVE", "INACTIVE", "DRAFT":
	default:
		status = ""
	}

	places, err := h.parkingPlaces.ListPlaces(c.Request.Context(), status)
	if err != nil {
		h.respondInternal(c, "Failed to fetch parking place list", err)
		return
	}
	respondData(c, http.StatusOK, "Parking place list fetched successfully", places)
}
