package utilcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinedClasses(t *testing.T) {
	content := `/* .commented { } */
body { margin: 0; padding: .5rem; }
.fb-card, .fb-card > .fb-card__title { color: #111827; }
a.link:hover { text-decoration: underline; }
.lg\:custom { display: block; }
@media (min-width: 768px) { .fb-sidebar { width: 16rem; } }
`
	got := DefinedClasses(content)

	for _, class := range []string{"fb-card", "fb-card__title", "link", "lg:custom", "fb-sidebar"} {
		assert.Contains(t, got, class)
	}
	assert.NotContains(t, got, "commented")
	assert.NotContains(t, got, "5rem")
	assert.Len(t, got, 5)
}

func TestReadBaseStylesheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.css")
	require.NoError(t, os.WriteFile(path, []byte(".fb-btn { padding: 0; }\n"), 0o644))

	base, err := ReadBaseStylesheet(path)
	require.NoError(t, err)
	assert.Equal(t, ".fb-btn { padding: 0; }\n", base.Content)
	assert.True(t, base.Defines("fb-btn"))
	assert.False(t, base.Defines("flex"))
}

func TestReadBaseStylesheet_Missing(t *testing.T) {
	_, err := ReadBaseStylesheet(filepath.Join(t.TempDir(), "nope.css"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestBaseStylesheet_NilDefines(t *testing.T) {
	var base *BaseStylesheet
	assert.False(t, base.Defines("anything"))
}
