package text_test

import (
	"testing"

	"github.com/julien-sobczak/zenpad/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortLines(t *testing.T) {
	assert.Equal(t, "Banana\napple\ncherry", text.SortLines("cherry\nBanana\r\napple"))
	assert.Equal(t, "", text.SortLines(""))
}

func TestRemoveDuplicateLines(t *testing.T) {
	assert.Equal(t, "b\na\nc", text.RemoveDuplicateLines("b\na\nb\nc\na"))
}

func TestTrimLines(t *testing.T) {
	assert.Equal(t, "a\nb\n\nc", text.TrimLines("  a\t\n\tb  \n   \nc"))
}

func TestFormatJSON(t *testing.T) {
	actual, err := text.FormatJSON(`{"b": [1, 2.50], "a": {"html": "<b>"}}`)
	require.NoError(t, err)
	assert.Equal(t, `{
  "a": {
    "html": "<b>"
  },
  "b": [
    1,
    2.50
  ]
}`, actual)

	_, err = text.FormatJSON(`{"a": `)
	assert.Error(t, err)

	_, err = text.FormatJSON(`{} {}`)
	assert.Error(t, err)
}
