package prototype_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternsmith/gofkit/prototype"
)

// TestClone_DeepCopy verifies a clone matches its original in everything
// but identity, and shares no mutable state with it.
func TestClone_DeepCopy(t *testing.T) {
	orig := prototype.NewDocument("Quarterly report", "finance", "draft")

	copyDoc, ok := orig.Clone().(*prototype.Document)
	require.True(t, ok)

	// Same content, ignoring identity.
	if diff := cmp.Diff(orig, copyDoc, cmpopts.IgnoreFields(prototype.Document{}, "ID")); diff != "" {
		t.Errorf("clone content mismatch (-orig +clone):\n%s", diff)
	}
	// Fresh identity.
	assert.NotEqual(t, orig.ID, copyDoc.ID)

	// Mutating the clone's tags must not leak into the original.
	copyDoc.Tags[0] = "hr"
	assert.Equal(t, "finance", orig.Tags[0])
}

// TestRegistry_CloneByName exercises the prototype manager.
func TestRegistry_CloneByName(t *testing.T) {
	reg := prototype.NewRegistry()
	reg.Register("memo", prototype.NewDocument("Untitled memo", "internal"))

	first, err := reg.Clone("memo")
	require.NoError(t, err)
	second, err := reg.Clone("memo")
	require.NoError(t, err)

	d1 := first.(*prototype.Document)
	d2 := second.(*prototype.Document)

	assert.Equal(t, d1.Title, d2.Title)
	// Every clone is a distinct instance.
	assert.NotEqual(t, d1.ID, d2.ID)
}

// TestRegistry_Unknown verifies unregistered names surface the sentinel.
func TestRegistry_Unknown(t *testing.T) {
	reg := prototype.NewRegistry()

	_, err := reg.Clone("ghost")
	assert.ErrorIs(t, err, prototype.ErrUnknownPrototype)
}
