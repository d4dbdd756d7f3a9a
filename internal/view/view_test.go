package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SupreetAmrad/e-commerce-backend/internal/domain"
)

func render(t *testing.T, name string, data interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestTruncateDescription_LongText(t *testing.T) {
	long := strings.Repeat("a", 150)

	got := truncateDescription(long)

	assert.Equal(t, strings.Repeat("a", 100)+"...", got)
}

func TestTruncateDescription_CountsRunes(t *testing.T) {
	long := strings.Repeat("日", 150)

	got := truncateDescription(long)

	assert.Equal(t, strings.Repeat("日", 100)+"...", got)
}

func TestFormatMoney_TwoDecimals(t *testing.T) {
	assert.Equal(t, "5.00", formatMoney(5))
	assert.Equal(t, "9.99", formatMoney(9.99))
	assert.Equal(t, "24.98", formatMoney(24.98))
}

func TestProductCard_EscapesProductFields(t *testing.T) {
	p := domain.Product{
		ID:          1,
		Name:        `<script>alert("x")</script>`,
		Description: "plain",
		Price:       10,
	}

	got := render(t, "product_card", p)

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}

func TestProductCard_SameProductSameFragment(t *testing.T) {
	p := domain.Product{ID: 2, Name: "Mug", Description: "A mug", Price: 9.99, ImageURL: "/img/mug.png"}

	first := render(t, "product_card", p)
	second := render(t, "product_card", p)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "$9.99")
	assert.Contains(t, first, `action="/cart/items/2"`)
}

func TestCartTemplate_EmptyState(t *testing.T) {
	got := render(t, "cart.tmpl", CartData{})

	assert.Contains(t, got, "Your cart is empty")
	assert.Contains(t, got, `<span id="cartTotal">0.00</span>`)
}

func TestCartTemplate_ItemsAndTotal(t *testing.T) {
	cart := domain.Cart{}
	mug := domain.Product{ID: 1, Name: "Mug", Price: 9.99}
	cart.Add(mug)
	cart.Add(mug)
	cart.Add(domain.Product{ID: 2, Name: "Poster", Price: 5})

	got := render(t, "cart.tmpl", CartData{Cart: cart})

	assert.Contains(t, got, "Mug")
	assert.Contains(t, got, "$9.99 x 2")
	assert.Contains(t, got, `<span id="cartTotal">24.98</span>`)
	assert.Contains(t, got, `action="/cart/items/1/remove"`)
}

func TestHomeTemplate_SectionsAndBadge(t *testing.T) {
	data := HomeData{
		Featured:  []domain.Product{{ID: 1, Name: "Mug", Price: 9.99}},
		Latest:    []domain.Product{{ID: 5, Name: "Lamp", Price: 19.5}},
		CartCount: 3,
		Notices:   []domain.Notice{domain.NewNotice("Product added to cart!", domain.NoticeSuccess)},
	}

	got := render(t, "home.tmpl", data)

	assert.Contains(t, got, `id="featuredProducts"`)
	assert.Contains(t, got, `id="latestProducts"`)
	assert.Contains(t, got, `<span id="cartCount" class="badge bg-primary">3</span>`)
	assert.Contains(t, got, "alert-success")
	assert.Contains(t, got, "Product added to cart!")
	assert.Contains(t, got, `data-expires-ms="3000"`)
}
