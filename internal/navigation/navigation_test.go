package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialSection(t *testing.T) {
	assert.Equal(t, "home", InitialSection())
}

func TestScrolled(t *testing.T) {
	assert.False(t, Scrolled(0))
	assert.False(t, Scrolled(50))
	assert.True(t, Scrolled(51))
}

func TestLinkHref(t *testing.T) {
	assert.Equal(t, "#projects", Links[4].Href())
	assert.Len(t, Links, 7)
}
