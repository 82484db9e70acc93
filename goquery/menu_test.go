package goquery_test

import (
	"testing"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("produces one record per marked up menu entry", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>
<section data-category="Ramen">
	<h2>Ramen</h2>
	<div class="menu-item">
		<h3 class="menu-item__name">Yuzu Shio Ramen</h3>
		<p class="menu-item__description">Chicken broth with yuzu.</p>
		<span class="menu-item__price">¥1,390</span>
	</div>
</section>
<section>
	<h2>Side Dishes</h2>
	<div class="menu-item"><h3>Gyoza</h3><p>Pan-fried dumplings.</p></div>
</section>
</main>
</body></html>`

		p := goquery.NewMenuParser()
		records, err := p.Parse(html, "https://afuri.com/en/menu/")

		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "Yuzu Shio Ramen", records[0].Get("menu_item"))
		assert.Equal(t, "Yuzu Shio Ramen", records[0].Get("title"))
		assert.Equal(t, "Chicken broth with yuzu.", records[0].Get("content"))
		assert.Equal(t, "Chicken broth with yuzu.", records[0].Get("introduction"))
		assert.Equal(t, "¥1,390", records[0].Get("price"))
		assert.Equal(t, "Ramen", records[0].Get("menu_category"))
		assert.Equal(t, string(ramendex.SectionMenu), records[0].Get("section"))
		assert.Equal(t, "https://afuri.com/en/menu/", records[0].Get("url"))

		assert.Equal(t, "Gyoza", records[1].Get("menu_item"))
		assert.Equal(t, "Pan-fried dumplings.", records[1].Get("content"))
		assert.Equal(t, "Side Dishes", records[1].Get("menu_category"))
		assert.False(t, records[1].Has("price"))
	})

	t.Run("skips entries without a name", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="menu-item"><p>Seasonal special, ask staff.</p></div></body></html>`

		p := goquery.NewMenuParser()
		records, err := p.Parse(html, "https://afuri.com/menu")

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("renders unstructured menu as visible text lines", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head><title>Menu | AFURI</title><style>p { color: red; }</style></head>
<body>
<header><a href="/">AFURI</a></header>
<main>
	<h1>Menu</h1>
	<p>Yuzu Shio Ramen   ¥1,390</p>
	<ul>
		<li>Gyoza ¥500</li>
		<li>Nori 7 pieces ¥200</li>
	</ul>
	<script>track();</script>
</main>
<footer>© AFURI</footer>
</body>
</html>`

		p := goquery.NewMenuParser()
		records, err := p.Parse(html, "https://afuri.com/menu")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Menu", records[0].Get("title"))
		assert.Equal(t, "Menu\nYuzu Shio Ramen ¥1,390\nGyoza ¥500\nNori 7 pieces ¥200", records[0].Get("content"))
		assert.False(t, records[0].Has("menu_item"))
	})

	t.Run("returns no records for an empty page", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewMenuParser()
		records, err := p.Parse("<html><body></body></html>", "https://afuri.com/menu")

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
