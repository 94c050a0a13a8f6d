package utilcss_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flowbite-admin/utilcss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := utilcss.DefaultConfig()

	assert.Equal(t, ".", config.Root)
	assert.Equal(t, "tailwind.config.js", config.TailwindConfig)
	assert.Equal(t, []string{"node_modules"}, config.ExcludeDirs)
	assert.Contains(t, config.Ignore, "else")

	// Callers get their own copies of the default lists
	config.Ignore[0] = "changed"
	assert.NotEqual(t, "changed", utilcss.DefaultConfig().Ignore[0])
}

func TestCompile(t *testing.T) {
	root := t.TempDir()
	write := func(name, content string) {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("tailwind.config.js", `module.exports = { content: ["./templates/**/*.html"] }`)
	write("input.css", "body { margin: 0; }\n")
	write("templates/index.html", `<div class="flex totally-unknown-util"></div>`)

	config := utilcss.DefaultConfig()
	config.Root = root
	config.Input = "input.css"
	config.Output = "out.css"

	result, err := utilcss.Compile(config)
	require.NoError(t, err)
	assert.Equal(t, "Generated 1 utility rules for 2 classes.", result.Summary())

	check, err := utilcss.Check(utilcss.CheckConfig{Config: config})
	require.NoError(t, err)
	require.Len(t, check.Issues, 1)
	assert.Equal(t, "totally-unknown-util", check.Issues[0].Class)
}

func TestCompile_MissingInput(t *testing.T) {
	config := utilcss.DefaultConfig()
	config.Root = t.TempDir()

	_, err := utilcss.Compile(config)
	assert.ErrorIs(t, err, utilcss.ErrMissingInput)
}

func TestExplain(t *testing.T) {
	exp := utilcss.Explain("lg:block")
	require.NotNil(t, exp.Declaration)
	assert.Equal(t, []string{`@media (min-width: 1024px) { .lg\:block { display: block; } }`}, exp.Rules)

	assert.Nil(t, utilcss.Explain("totally-unknown-util").Declaration)
}
