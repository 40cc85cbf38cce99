package abstractfactory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patternsmith/gofkit/abstractfactory"
)

// TestAbstractFactory verifies each concrete factory yields its own
// coherent widget family.
func TestAbstractFactory(t *testing.T) {
	osx := abstractfactory.OSX{}
	assert.Equal(t, "OSXButton", osx.CreateButton().Paint())
	w, h := osx.CreateWindow().Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 800, h)

	linux := abstractfactory.Linux{}
	assert.Equal(t, "LinuxButton", linux.CreateButton().Paint())
	w, h = linux.CreateWindow().Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 400, h)
}

// TestFamilyConsistency drives both factories through the Factory
// interface alone, the way client code would.
func TestFamilyConsistency(t *testing.T) {
	families := map[string]abstractfactory.Factory{
		"LinuxButton": abstractfactory.Linux{},
		"OSXButton":   abstractfactory.OSX{},
	}
	for wantLabel, f := range families {
		// Both widgets come from the same factory, so they belong to
		// the same family by construction.
		assert.Equal(t, wantLabel, f.CreateButton().Paint())
		w, h := f.CreateWindow().Size()
		assert.Equal(t, w, h, "example windows are square")
	}
}
