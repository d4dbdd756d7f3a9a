// Package view renders the storefront's HTML. All product fields pass
// through html/template escaping, so catalog data can never inject markup.
package view

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/SupreetAmrad/e-commerce-backend/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const descriptionLimit = 100

// HomeData feeds the full storefront page.
type HomeData struct {
	Featured  []domain.Product
	Latest    []domain.Product
	CartCount int
	Notices   []domain.Notice
}

// GridData feeds a product grid fragment (search results, default split).
type GridData struct {
	Featured []domain.Product
	Latest   []domain.Product
}

// CartData feeds the cart view fragment.
type CartData struct {
	Cart domain.Cart
}

// Templates parses the embedded template set. Rendering the same data always
// yields the same output; nothing is cached between renders.
func Templates() *template.Template {
	return template.Must(template.New("storefront").Funcs(template.FuncMap{
		"money":        formatMoney,
		"truncate":     truncateDescription,
		"noticeMillis": noticeMillis,
	}).ParseFS(templateFS, "templates/*.tmpl"))
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// truncateDescription keeps the first 100 characters of a description and
// marks the cut with an ellipsis, as the product cards always do.
func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	return string(runes) + "..."
}

func noticeMillis() int64 {
	return domain.NoticeDuration.Milliseconds()
}
