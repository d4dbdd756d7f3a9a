package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SupreetAmrad/e-commerce-backend/internal/domain"
	"github.com/SupreetAmrad/e-commerce-backend/internal/middleware"
	"github.com/SupreetAmrad/e-commerce-backend/internal/usecase"
)

type CartHandler struct {
	cart usecase.CartUseCase
	log  *logrus.Logger
}

func NewCartHandler(cart usecase.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		cart: cart,
		log:  logger,
	}
}

// Add handles POST /cart/items/:id. A product ID the catalog snapshot does
// not know is a silent no-op: the count comes back unchanged and no notice
// is shown.
func (h *CartHandler) Add(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Warnf("Handler: Invalid product ID %q on add-to-cart: %v", c.Param("id"), err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	state := middleware.State(c)
	added, count := h.cart.Add(state, productID)

	message := ""
	var level domain.NoticeLevel
	if added {
		message = "Product added to cart!"
		level = domain.NoticeSuccess
	}
	SuccessResponse(c, http.StatusOK, message, level, gin.H{"count": count, "added": added})
}

// Remove handles DELETE /cart/items/:id (and its form-friendly POST
// .../remove alias). Removing an ID that is not in the cart changes nothing.
func (h *CartHandler) Remove(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Warnf("Handler: Invalid product ID %q on remove-from-cart: %v", c.Param("id"), err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	state := middleware.State(c)
	removed, count := h.cart.Remove(state, productID)

	message := ""
	var level domain.NoticeLevel
	if removed {
		message = "Product removed from cart"
		level = domain.NoticeInfo
	}
	SuccessResponse(c, http.StatusOK, message, level, gin.H{"count": count, "removed": removed})
}
