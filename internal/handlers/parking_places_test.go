package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"marinahub/api/internal/models"
)

type fakeParkingPlaceStore struct {
	listStatus []string
}

func (f *fakeParkingPlaceStore) ListPlaces(_ context.Context, status string) ([]models.ParkingPlace, error) {
	f.listStatus = append(f.listStatus, status)
	return nil, nil
}

func TestListParkingPlaces_StatusFilter(t *testing.T) {
	store := &fakeParkingPlaceStore{}
	h := newTestHandlerSet()
	h.parkingPlaces = store
	r := testRouter(h)

	w := doJSON(r, http.MethodGet, "/api/boat-parking?status=draft", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/boat-parking?status=Active", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/boat-parking?status=retired", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, []string{"DRAFT", "ACTIVE", ""}, store.listStatus)
}
