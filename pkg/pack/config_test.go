package pack

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigMatchesExtension(t *testing.T) {
	cfg := DefaultConfig(".")
	tests := map[string]bool{
		"Program.cs":         true,
		"MainWindow.XAML":    true,
		"App.config":         true,
		"layout.xml":         true,
		"MainWindow.xaml.cs": true,
		"readme.md":          false,
		"Makefile":           false,
		".xml":               false,
		"cs":                 false,
	}
	for name, want := range tests {
		assert.Equal(t, want, cfg.MatchesExtension(name), name)
	}
}

func TestNewConfigNormalisesExtensions(t *testing.T) {
	cfg := NewConfig("root", "rules.md", "out.txt", []string{"GO", ".Md"}, []string{"vendor"})
	assert.True(t, cfg.MatchesExtension("main.go"))
	assert.True(t, cfg.MatchesExtension("README.md"))
	assert.False(t, cfg.MatchesExtension("main.cs"))
	assert.True(t, cfg.IsIgnoredDir("vendor"))
	assert.False(t, cfg.IsIgnoredDir("Vendor"))
	assert.Equal(t, filepath.Join("root", "rules.md"), cfg.RulesPath())
	assert.Equal(t, filepath.Join("root", "out.txt"), cfg.OutputPath())
}
