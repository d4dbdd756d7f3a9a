package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/SupreetAmrad/e-commerce-backend/internal/clients"
	"github.com/SupreetAmrad/e-commerce-backend/internal/domain"
	"github.com/SupreetAmrad/e-commerce-backend/internal/session"
)

const (
	featuredCount   = 4
	latestCount     = 4
	minSearchLength = 2
)

// Storefront is the two display slices of the catalog: featured holds the
// first products, latest the next batch. The ordering carries no meaning
// beyond array position.
type Storefront struct {
	Featured []domain.Product
	Latest   []domain.Product
}

// SearchResult is what a search request resolves to. Default means the query
// was too short and the regular featured/latest split should be shown. Stale
// means a newer search superseded this one and the result must not be
// applied.
type SearchResult struct {
	Featured []domain.Product
	Latest   []domain.Product
	Default  bool
	Stale    bool
}

type CatalogUseCase interface {
	Browse(ctx context.Context, state *session.State) Storefront
	Search(ctx context.Context, state *session.State, rawQuery string) (*SearchResult, error)
}

type catalogUseCase struct {
	catalog  clients.CatalogClient
	sessions session.Store
	log      *logrus.Logger
}

func NewCatalogUseCase(catalog clients.CatalogClient, sessions session.Store, logger *logrus.Logger) CatalogUseCase {
	return &catalogUseCase{
		catalog:  catalog,
		sessions: sessions,
		log:      logger,
	}
}

// Browse refreshes the catalog snapshot and splits it for display. When the
// refresh fails the previous snapshot stays on screen: the visitor gets a
// danger notice and whatever was shown before. There is no retry.
func (uc *catalogUseCase) Browse(ctx context.Context, state *session.State) Storefront {
	products, err := uc.catalog.ListProducts(clients.ContextWithToken(ctx, state.Token))
	if err != nil {
		uc.log.Errorf("Use Case: Failed to refresh catalog: %v", err)
		state.PushNotice(domain.NewNotice("Error loading products. Please try again later.", domain.NoticeDanger))
		return splitCatalog(state.Products)
	}

	uc.log.Infof("Use Case: Catalog refreshed with %d products", len(products))
	state.Products = products
	return splitCatalog(products)
}

// Search resolves a query against the backend. Every call advances the
// session's search sequence, including short queries, so any search still in
// flight is invalidated the moment the visitor types again. A response whose
// sequence is no longer the latest comes back marked Stale.
func (uc *catalogUseCase) Search(ctx context.Context, state *session.State, rawQuery string) (*SearchResult, error) {
	seq, err := uc.sessions.NextSearchSeq(ctx, state.ID)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(rawQuery)
	if utf8.RuneCountInString(query) < minSearchLength {
		split := splitCatalog(state.Products)
		return &SearchResult{Featured: split.Featured, Latest: split.Latest, Default: true}, nil
	}

	results, err := uc.catalog.SearchProducts(clients.ContextWithToken(ctx, state.Token), query)
	if err != nil {
		uc.log.Errorf("Use Case: Search for %q failed: %v", query, err)
		return nil, err
	}

	current, err := uc.sessions.SearchSeq(ctx, state.ID)
	if err != nil {
		return nil, err
	}
	if current != seq {
		uc.log.Infof("Use Case: Discarding stale search response for %q (seq %d, current %d)", query, seq, current)
		return &SearchResult{Stale: true}, nil
	}

	uc.log.Infof("Use Case: Search for %q returned %d products", query, len(results))
	return &SearchResult{Featured: results}, nil
}

func splitCatalog(products []domain.Product) Storefront {
	var s Storefront
	if len(products) > 0 {
		end := featuredCount
		if end > len(products) {
			end = len(products)
		}
		s.Featured = products[:end]
	}
	if len(products) > featuredCount {
		end := featuredCount + latestCount
		if end > len(products) {
			end = len(products)
		}
		s.Latest = products[featuredCount:end]
	}
	return s
}
