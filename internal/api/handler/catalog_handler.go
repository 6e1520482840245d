package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resourcespen/storefront/internal/core/ports"
)

// CatalogHandler serves products and the landing page configuration.
type CatalogHandler struct {
	products ports.ProductRepository
	content  ports.ContentRepository
}

func NewCatalogHandler(products ports.ProductRepository, content ports.ContentRepository) *CatalogHandler {
	return &CatalogHandler{products: products, content: content}
}

// ListProducts handles GET /v1/products.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Category"
// @Param        search    query     string  false  "Partial match on name or SKU"
// @Param        featured  query     bool    false  "Featured only"
// @Param        page      query     int     false  "Page, 1-based (max 10000)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  listProductsResponse
// @Failure      400       {object}  errorResponse
// @Router       /v1/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var q listProductsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}

	items, total, err := h.products.List(c.Request().Context(), ports.ListProductsFilter{
		Category: q.Category,
		Search:   q.Search,
		Featured: q.Featured,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProductsResponse{Items: items, Total: total, Page: q.Page, Limit: q.Limit})
}

// GetProduct handles GET /v1/products/:id.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	p, err := h.products.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// GetContent handles GET /v1/content.
//
// @Summary      Landing page configuration
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  domain.PageContent
// @Failure      404  {object}  errorResponse
// @Router       /v1/content [get]
func (h *CatalogHandler) GetContent(c echo.Context) error {
	pc, err := h.content.GetPageContent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pc)
}
