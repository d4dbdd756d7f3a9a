package usecase

import (
	"github.com/sirupsen/logrus"

	"github.com/SupreetAmrad/e-commerce-backend/internal/session"
)

// CartUseCase mutates the cart held in the visitor's session. It is purely
// local state: the only way an operation "fails" is by silently no-op-ing on
// a product ID it does not know.
type CartUseCase interface {
	Add(state *session.State, productID int64) (added bool, count int)
	Remove(state *session.State, productID int64) (removed bool, count int)
}

type cartUseCase struct {
	log *logrus.Logger
}

func NewCartUseCase(logger *logrus.Logger) CartUseCase {
	return &cartUseCase{log: logger}
}

// Add looks the product up in the session's catalog snapshot; an unknown ID
// is a no-op. A known ID either joins the cart with quantity 1 or bumps the
// existing entry.
func (uc *cartUseCase) Add(state *session.State, productID int64) (bool, int) {
	for _, p := range state.Products {
		if p.ID == productID {
			state.Cart.Add(p)
			uc.log.Infof("Use Case: Added product %d to cart, count is now %d", productID, state.Cart.Count())
			return true, state.Cart.Count()
		}
	}

	uc.log.Warnf("Use Case: Ignoring add-to-cart for unknown product ID %d", productID)
	return false, state.Cart.Count()
}

// Remove deletes the whole cart entry for the product, if there is one.
func (uc *cartUseCase) Remove(state *session.State, productID int64) (bool, int) {
	removed := state.Cart.Remove(productID)
	if removed {
		uc.log.Infof("Use Case: Removed product %d from cart, count is now %d", productID, state.Cart.Count())
	} else {
		uc.log.Warnf("Use Case: Ignoring remove-from-cart for product ID %d not in cart", productID)
	}
	return removed, state.Cart.Count()
}
