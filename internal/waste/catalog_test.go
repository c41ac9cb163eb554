package waste

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisposalSuggestions(t *testing.T) {
	t.Run("every category has guidance", func(t *testing.T) {
		for _, c := range Categories {
			assert.NotEmpty(t, DisposalSuggestions(c), "category %s", c)
		}
	})

	t.Run("ordering is stable", func(t *testing.T) {
		got := DisposalSuggestions(Plastic)
		require.Len(t, got, 3)
		assert.Equal(t, "Check local recycling guidelines for specific plastic types", got[0])
	})

	t.Run("unrecognized category gets generic fallback", func(t *testing.T) {
		got := DisposalSuggestions(Category("styrofoam"))
		require.NotEmpty(t, got)
		assert.Equal(t, []string{"Follow local waste management guidelines"}, got)
	})
}

func TestAlternatives(t *testing.T) {
	t.Run("only organic plastic paper are non-empty", func(t *testing.T) {
		withAlternatives := map[Category]bool{Organic: true, Plastic: true, Paper: true}
		for _, c := range Categories {
			if withAlternatives[c] {
				assert.NotEmpty(t, Alternatives(c), "category %s", c)
			} else {
				assert.Empty(t, Alternatives(c), "category %s", c)
			}
		}
	})

	t.Run("unrecognized category is empty", func(t *testing.T) {
		assert.Empty(t, Alternatives(Category("styrofoam")))
	})
}

func TestDescribe(t *testing.T) {
	meta := Describe(Plastic)
	assert.Equal(t, "Plastic", meta.DisplayName)
	assert.Equal(t, "#6B8CAE", meta.Color)
	assert.NotEmpty(t, meta.Icon)

	unknown := Describe(Category("styrofoam"))
	assert.Equal(t, "styrofoam", unknown.DisplayName)
	assert.Equal(t, genericSuggestion, unknown.Suggestions)
}
