package goquery_test

import (
	"testing"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("parses visible product markup", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Yuzu Shio Ramen Set – AFURI Shop</title>
<meta property="og:type" content="product">
<link rel="canonical" href="/products/ra-001">
</head>
<body>
<nav class="breadcrumb"><a href="/">Home</a> / <a href="/collections/ramen">Ramen</a> / <a href="/products/ra-001">Yuzu Shio Ramen Set</a></nav>
<h1 class="product__title">Yuzu Shio Ramen Set</h1>
<span class="price">¥3,240</span>
<div class="product__description">
	<p>Three servings of our signature yuzu shio ramen.</p>
	<p>Ships frozen.</p>
</div>
</body>
</html>`

		p := goquery.NewProductParser()
		records, err := p.Parse(html, "https://shop.afuri.com/products/ra-001?variant=1")

		require.NoError(t, err)
		require.Len(t, records, 1)
		rec := records[0]
		assert.Equal(t, "https://shop.afuri.com/products/ra-001", rec.Get("url"))
		assert.Equal(t, "Yuzu Shio Ramen Set", rec.Get("title"))
		assert.Equal(t, "Yuzu Shio Ramen Set", rec.Get("menu_item"))
		assert.Equal(t, "¥3,240", rec.Get("price"))
		assert.Equal(t, "Three servings of our signature yuzu shio ramen.\nShips frozen.", rec.Get("content"))
		assert.Equal(t, "Ramen", rec.Get("menu_category"))
		assert.Equal(t, string(ramendex.SectionMenu), rec.Get("section"))
	})

	t.Run("prefers JSON-LD product data", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">
{"@context": "https://schema.org", "@graph": [
	{"@type": "WebPage", "name": "Shop"},
	{"@type": "Product", "name": "Chi-yu", "description": "Fragrant chicken oil.",
	 "offers": [{"@type": "Offer", "price": "1080", "priceCurrency": "JPY"}]}
]}
</script>
</head><body><h1>AFURI Online Shop</h1></body></html>`

		p := goquery.NewProductParser()
		records, err := p.Parse(html, "https://shop.afuri.com/products/cy-001")

		require.NoError(t, err)
		require.Len(t, records, 1)
		rec := records[0]
		assert.Equal(t, "Chi-yu", rec.Get("title"))
		assert.Equal(t, "1080", rec.Get("price"))
		assert.Equal(t, "Fragrant chicken oil.", rec.Get("content"))
		assert.Equal(t, "https://shop.afuri.com/products/cy-001", rec.Get("url"))
		assert.False(t, rec.Has("menu_category"))
	})

	t.Run("reads numeric JSON-LD price", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><script type="application/ld+json">
{"@type": "Product", "name": "Gyoza", "offers": {"price": 1200}}
</script></head><body></body></html>`

		p := goquery.NewProductParser()
		records, err := p.Parse(html, "https://shop.afuri.com/products/sd-001")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "1200", records[0].Get("price"))
	})

	t.Run("falls back to meta description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="description" content="Yuzu flavoured sauce for home cooking.">
</head><body><h1>Yuzu Shio Tare</h1></body></html>`

		p := goquery.NewProductParser()
		records, err := p.Parse(html, "https://shop.afuri.com/products/sc-001")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Yuzu flavoured sauce for home cooking.", records[0].Get("content"))
		assert.False(t, records[0].Has("price"))
	})

	t.Run("returns EINVALID when no product name is found", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProductParser()
		_, err := p.Parse("<html><body><p>nothing here</p></body></html>", "https://shop.afuri.com/products/x")

		assert.Equal(t, ramendex.EINVALID, ramendex.ErrorCode(err))
	})

	t.Run("returns EINVALID for invalid page URL", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProductParser()
		_, err := p.Parse("<html></html>", "://bad")

		assert.Equal(t, ramendex.EINVALID, ramendex.ErrorCode(err))
	})
}

func TestProductParser_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "product", goquery.NewProductParser().Name())
}
