package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-rental/internal/repository"
)

// CatalogHandler exposes the public, read-only fleet catalog: vehicles
// with their models and the active fuel prices.  These endpoints carry no
// auth and sit behind the response cache middleware.
type CatalogHandler struct {
	Vehicles *repository.VehicleRepo
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(vehicles *repository.VehicleRepo) *CatalogHandler {
	if vehicles == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{Vehicles: vehicles}
}

// ListVehicles handles GET /v1/vehicles.
func (h *CatalogHandler) ListVehicles(c echo.Context) error {
	items, err := h.Vehicles.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load vehicles"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetVehicle handles GET /v1/vehicles/:plate.
func (h *CatalogHandler) GetVehicle(c echo.Context) error {
	plate := c.Param("plate")
	if plate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plate"})
	}
	v, m, err := h.Vehicles.GetByPlate(c.Request().Context(), plate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load vehicle"})
	}
	return c.JSON(http.StatusOK, echo.Map{"vehicle": v, "model": m})
}

// ListFuelPrices handles GET /v1/fuel-prices.
func (h *CatalogHandler) ListFuelPrices(c echo.Context) error {
	items, err := h.Vehicles.ListFuelPrices(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load fuel prices"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
