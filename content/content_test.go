package content_test

import (
	"corais/content"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	site, err := content.Get()
	require.NoError(t, err)

	assert.Len(t, site.Experiences.Items, 4)
	assert.Equal(t, "Piscinas Naturais", site.Experiences.Items[0].Title)
	assert.Len(t, site.Experiences.About, 2)

	assert.Len(t, site.Highlights.Items, 4)
	assert.Equal(t, "À Beira-Mar", site.Highlights.Items[0].Title)

	again, err := content.Get()
	require.NoError(t, err)
	assert.Same(t, site, again)
}
