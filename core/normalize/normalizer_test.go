package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	md, err := New().Normalize(`<ul><li><h3>luna</h3><p>A scripting extension</p></li></ul>`)
	require.NoError(t, err)
	assert.Contains(t, md, "luna")
	assert.Contains(t, md, "A scripting extension")
}

func TestText(t *testing.T) {
	md, err := New().Text("A scripting extension")
	require.NoError(t, err)
	assert.Equal(t, "A scripting extension", md)

	md, err = New().Text("   ")
	require.NoError(t, err)
	assert.Empty(t, md)
}

func TestText_MarkupStaysLiteral(t *testing.T) {
	md, err := New().Text("<b>bold</b>")
	require.NoError(t, err)
	assert.Contains(t, md, "bold")
	assert.Contains(t, md, "b>")
}
