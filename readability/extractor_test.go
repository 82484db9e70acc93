package readability_test

import (
	"testing"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyProfile = `<!DOCTYPE html>
<html>
<head><title>Company Profile</title></head>
<body>
<nav><a href="/menu">Menu Nav Link</a><a href="/stores">Stores Nav Link</a></nav>
<article>
<h2>Company Profile</h2>
<p>AFURI Co., Ltd. runs ramen shops across Japan and abroad, serving yuzu shio ramen made with spring water from Mount Afuri in Kanagawa.</p>
<ul>
<li>Founded in 2001 in Ebisu, Tokyo</li>
<li>Head office in Shibuya, Tokyo</li>
</ul>
</article>
<footer><p>Copyright AFURI</p></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns the document title", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(companyProfile)

		require.NoError(t, err)
		assert.Equal(t, "Company Profile", result.Title)
	})

	t.Run("keeps the profile text and its list", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(companyProfile)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "spring water from Mount Afuri")
		assert.Contains(t, result.ContentHTML, "<li>")
		assert.Contains(t, result.ContentHTML, "Founded in 2001")
	})

	t.Run("drops navigation links", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(companyProfile)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "Menu Nav Link")
		assert.NotContains(t, result.ContentHTML, "Stores Nav Link")
	})

	t.Run("reports an empty body for an image-only page", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(`<!DOCTYPE html>
<html><head><title>Gallery</title></head>
<body><div><img src="/images/yuzu-shio.jpg"><img src="/images/tsukemen.jpg"></div></body>
</html>`)

		// readability may also reject the page outright.
		if err == nil {
			assert.Empty(t, result.ContentHTML)
		}
	})

	t.Run("rejects blank input as invalid", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("\n\t ")

		require.Error(t, err)
		assert.Equal(t, ramendex.EINVALID, ramendex.ErrorCode(err))
	})
}
