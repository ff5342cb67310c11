package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/ibl"
	"github.com/fwojciec/ibl/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("keeps emphasis in descriptions", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>A <strong>very</strong> nice <em>product</em></p>`)

		require.NoError(t, err)
		assert.Equal(t, "A **very** nice *product*", md)
	})

	t.Run("renders feature lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>Waterproof</li><li>Two year warranty</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Waterproof")
		assert.Contains(t, md, "- Two year warranty")
	})

	t.Run("renders product detail tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table><tr><th>Weight</th><th>Colour</th></tr><tr><td>2kg</td><td>red</td></tr></table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Weight")
		assert.Contains(t, md, "2kg")
		assert.Contains(t, md, "|")
	})

	t.Run("tolerates unbalanced fragments", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("\nSL342\n<br/>\nNice product</p>")

		require.NoError(t, err)
		assert.Contains(t, md, "SL342")
		assert.Contains(t, md, "Nice product")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert(" \n")

		require.Error(t, err)
		assert.Equal(t, ibl.EINVALID, ibl.ErrorCode(err))
	})
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	validate := htmltomarkdown.Markdown()

	got, ok := validate(`<a href="/care">Care guide</a>`)
	assert.True(t, ok)
	assert.Equal(t, "[Care guide](/care)", got)

	_, ok = validate("")
	assert.False(t, ok)
}
