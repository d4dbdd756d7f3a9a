package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SupreetAmrad/e-commerce-backend/internal/middleware"
	"github.com/SupreetAmrad/e-commerce-backend/internal/session"
	"github.com/SupreetAmrad/e-commerce-backend/internal/view"
)

// NewRouter wires the storefront routes. Every route runs behind the session
// middleware; the HTML routes render the embedded template set.
func NewRouter(
	store session.Store,
	storefront *StorefrontHandler,
	cart *CartHandler,
	auth *AuthHandler,
	logger *logrus.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.SetHTMLTemplate(view.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pages := router.Group("/")
	pages.Use(middleware.Session(store, logger))
	{
		pages.GET("/", storefront.Home)
		pages.GET("/search", storefront.Search)
		pages.GET("/cart", storefront.CartView)

		pages.POST("/cart/items/:id", cart.Add)
		pages.DELETE("/cart/items/:id", cart.Remove)
		// plain HTML forms cannot issue DELETE
		pages.POST("/cart/items/:id/remove", cart.Remove)

		pages.POST("/auth/login", auth.Login)
		pages.POST("/auth/register", auth.Register)
	}

	return router
}
