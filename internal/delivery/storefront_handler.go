package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SupreetAmrad/e-commerce-backend/internal/middleware"
	"github.com/SupreetAmrad/e-commerce-backend/internal/usecase"
	"github.com/SupreetAmrad/e-commerce-backend/internal/view"
)

type StorefrontHandler struct {
	catalog usecase.CatalogUseCase
	log     *logrus.Logger
}

func NewStorefrontHandler(catalog usecase.CatalogUseCase, logger *logrus.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		catalog: catalog,
		log:     logger,
	}
}

// Home handles GET /: the storefront page with the featured and latest
// sections, the cart badge, and any notices queued in the session.
func (h *StorefrontHandler) Home(c *gin.Context) {
	state := middleware.State(c)

	s := h.catalog.Browse(c.Request.Context(), state)

	c.HTML(http.StatusOK, "home.tmpl", view.HomeData{
		Featured:  s.Featured,
		Latest:    s.Latest,
		CartCount: state.Cart.Count(),
		Notices:   state.PopNotices(),
	})
}

// Search handles GET /search. A response that was superseded by a newer
// query, or that failed upstream, answers 204 so the page never applies it;
// whatever is on screen stays on screen.
func (h *StorefrontHandler) Search(c *gin.Context) {
	state := middleware.State(c)

	result, err := h.catalog.Search(c.Request.Context(), state, c.Query("query"))
	if err != nil {
		h.log.Errorf("Handler: Search failed: %v", err)
		c.Status(http.StatusNoContent)
		return
	}
	if result.Stale {
		c.Status(http.StatusNoContent)
		return
	}

	c.HTML(http.StatusOK, "grid.tmpl", view.GridData{
		Featured: result.Featured,
		Latest:   result.Latest,
	})
}

// CartView handles GET /cart: the cart fragment with items and total, or the
// empty-state message.
func (h *StorefrontHandler) CartView(c *gin.Context) {
	state := middleware.State(c)

	c.HTML(http.StatusOK, "cart.tmpl", view.CartData{Cart: state.Cart})
}
