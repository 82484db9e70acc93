package clean_test

import (
	"testing"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/clean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeDirectory = `Google map
AFURI Ebisu - Tokyo
117-0013 Tokyo, Shibuya-ku, Ebisu 1-1-7
Open 11:00-23:00
Tel 03-1234-5678
Open 11:00-23:00
Reservations not accepted
Google map
AFURI Harajuku
〒150-0001 Shibuya-ku Jingumae
Mon-Sun 10:30-23:00
Google map
AFURI Ebisu - Tokyo
Open 11:00-23:00`

func newSegmenter(t *testing.T) *clean.Segmenter {
	t.Helper()
	s, err := clean.NewSegmenter(clean.DefaultVocabulary())
	require.NoError(t, err)
	return s
}

func TestSegmenter_Segment(t *testing.T) {
	t.Parallel()

	t.Run("splits a directory into one block per store", func(t *testing.T) {
		t.Parallel()

		got := newSegmenter(t).Segment(storeDirectory)

		assert.True(t, got.Delimited)
		assert.Equal(t, []clean.StoreBlock{
			{
				Name: "AFURI Ebisu",
				Details: []string{
					"117-0013 Tokyo, Shibuya-ku, Ebisu 1-1-7",
					"Open 11:00-23:00",
					"Tel 03-1234-5678",
				},
			},
			{
				Name: "AFURI Harajuku",
				Details: []string{
					"〒150-0001 Shibuya-ku Jingumae",
					"Mon-Sun 10:30-23:00",
				},
			},
		}, got.Blocks)
	})

	t.Run("resolves names through the locale table", func(t *testing.T) {
		t.Parallel()

		got := newSegmenter(t).Segment("Google Map\n恵比寿店\n〒150-0013 東京都渋谷区恵比寿1-1-7\n11:00-23:00")

		require.Len(t, got.Blocks, 1)
		assert.Equal(t, "AFURI Ebisu", got.Blocks[0].Name)
		assert.Len(t, got.Blocks[0].Details, 2)
	})

	t.Run("keeps the address line that named the store", func(t *testing.T) {
		t.Parallel()

		got := newSegmenter(t).Segment("Google map\n〒150-0013 東京都渋谷区恵比寿1-1-7\nTEL 03-1234-5678\n11:00-23:00")

		require.Len(t, got.Blocks, 1)
		assert.Equal(t, "AFURI Ebisu\n〒150-0013 東京都渋谷区恵比寿1-1-7\nTEL 03-1234-5678\n11:00-23:00", got.Blocks[0].Content())
	})

	t.Run("waits for a name after the delimiter", func(t *testing.T) {
		t.Parallel()

		got := newSegmenter(t).Segment("Google map\nSee all stores\nAFURI Roppongi\nTel 03-0000-1111")

		require.Len(t, got.Blocks, 1)
		assert.Equal(t, "AFURI Roppongi", got.Blocks[0].Name)
	})

	t.Run("emits on the next delimiter even without details", func(t *testing.T) {
		t.Parallel()

		got := newSegmenter(t).Segment("Google map\nAFURI Ebisu\nGoogle map\nAFURI Harajuku\nTel 03-1111-2222")

		require.Len(t, got.Blocks, 2)
		assert.Equal(t, "AFURI Ebisu", got.Blocks[0].Content())
		assert.Equal(t, "AFURI Harajuku\nTel 03-1111-2222", got.Blocks[1].Content())
	})

	t.Run("drops a trailing store without details", func(t *testing.T) {
		t.Parallel()

		got := newSegmenter(t).Segment("Google map\nAFURI Ebisu")

		assert.True(t, got.Delimited)
		assert.Empty(t, got.Blocks)
	})

	t.Run("reports pages without a delimiter", func(t *testing.T) {
		t.Parallel()

		got := newSegmenter(t).Segment("AFURI Ebisu\nOpen 11:00-23:00")

		assert.False(t, got.Delimited)
		assert.Empty(t, got.Blocks)
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, clean.Segmentation{}, newSegmenter(t).Segment(""))
	})
}

func TestNewSegmenter_InvalidDelimiter(t *testing.T) {
	t.Parallel()

	v := clean.DefaultVocabulary()
	v.StoreDelimiter = "("

	_, err := clean.NewSegmenter(v)

	assert.Equal(t, ramendex.EINVALID, ramendex.ErrorCode(err))
}

func TestSegmentState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "scanning", clean.StateScanning.String())
	assert.Equal(t, "name_pending", clean.StateNamePending.String())
	assert.Equal(t, "collecting", clean.StateCollecting.String())
}
