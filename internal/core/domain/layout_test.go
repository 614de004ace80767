package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/resweep/internal/core/domain"
)

func TestCompanionPath(t *testing.T) {
	assert.Equal(t, "src/Strings.Designer.cs", domain.CompanionPath("src/Strings.resx"))
	assert.Equal(t, "src/Strings.Designer.cs", domain.CompanionPath("src/Strings.RESX"))
	assert.Equal(t, "src/App.cs", domain.CompanionPath("src/App.cs"))
}

func TestResourceClassName(t *testing.T) {
	tests := map[string]string{
		"src/Strings.resx":    "Strings",
		"src/Strings.fr.resx": "Strings",
		"Labels":              "Labels",
	}
	for in, want := range tests {
		assert.Equal(t, want, domain.ResourceClassName(in), in)
	}
}

func TestIsResourceArtifact(t *testing.T) {
	assert.True(t, domain.IsResourceArtifact("a/Strings.resx"))
	assert.True(t, domain.IsResourceArtifact("a/Strings.ReSX"))
	assert.False(t, domain.IsResourceArtifact("a/Strings.Designer.cs"))
}
