package namegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/savekeeper/pkg/namegen"
)

func TestGenerate_Format(t *testing.T) {
	for i := 0; i < 50; i++ {
		name := namegen.Generate()
		parts := strings.SplitN(name, " ", 2)
		assert.Len(t, parts, 2, "name %q should be an adjective-noun pair", name)
		assert.NotEmpty(t, parts[0])
		assert.NotEmpty(t, parts[1])
	}
}

func TestGenerate_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[namegen.Generate()] = true
	}
	assert.Greater(t, len(seen), 1)
}
