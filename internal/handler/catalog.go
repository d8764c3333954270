package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"biomarket-api/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := catalog.Filter{
		Category:  c.QueryParam("category"),
		SortBy:    c.QueryParam("sort"),
		VeganOnly: c.QueryParam("vegan") == "true",
		NewOnly:   c.QueryParam("new") == "true",
	}

	return c.JSON(http.StatusOK, h.catalog.Apply(filter))
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, found := h.catalog.ProductByID(id)
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListFarms(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Farms())
}

func (h *CatalogHandler) GetFarm(c echo.Context) error {
	farm, found := h.catalog.FarmByID(c.Param("id"))
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Farm not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"farm":     farm,
		"products": h.catalog.FarmProducts(farm.ID),
	})
}
