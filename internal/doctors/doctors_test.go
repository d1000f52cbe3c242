package doctors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryContainsNineDoctors(t *testing.T) {
	assert.Len(t, Directory, 9)
}

func TestDirectoryEntriesAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Directory {
		assert.NotEmpty(t, strings.TrimSpace(d.Name))
		assert.True(t, strings.HasPrefix(d.Image, "/assets/images/dr-"))
		assert.True(t, strings.HasSuffix(d.Image, ".png"))
		assert.False(t, seen[d.Name], "duplicate doctor name: %s", d.Name)
		seen[d.Name] = true
	}
}

func TestFindByName(t *testing.T) {
	doc, ok := FindByName("Leila Cameron")
	assert.True(t, ok)
	assert.Equal(t, "/assets/images/dr-cameron.png", doc.Image)

	_, ok = FindByName("Nobody Here")
	assert.False(t, ok)
}
