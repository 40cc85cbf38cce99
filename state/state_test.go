package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patternsmith/gofkit/state"
)

// TestPost_Workflow walks a post through the full publishing workflow
// and checks the content stays hidden until the end.
func TestPost_Workflow(t *testing.T) {
	p := state.NewPost()

	p.AddText("I ate a salad for lunch today")
	assert.Equal(t, "", p.Content(), "draft hides content")
	assert.Equal(t, "draft", p.Stage())

	p.RequestReview()
	assert.Equal(t, "", p.Content(), "review hides content")
	assert.Equal(t, "pending review", p.Stage())

	p.Approve()
	assert.Equal(t, "I ate a salad for lunch today", p.Content())
	assert.Equal(t, "published", p.Stage())
}

// TestPost_IllegalTransitions verifies out-of-order requests leave the
// state unchanged rather than corrupting the machine.
func TestPost_IllegalTransitions(t *testing.T) {
	p := state.NewPost()
	p.AddText("text")

	// Approving a draft does nothing.
	p.Approve()
	assert.Equal(t, "draft", p.Stage())

	p.RequestReview()
	// Requesting review twice does nothing.
	p.RequestReview()
	assert.Equal(t, "pending review", p.Stage())

	p.Approve()
	// A published post stays published.
	p.RequestReview()
	p.Approve()
	assert.Equal(t, "published", p.Stage())
	assert.Equal(t, "text", p.Content())
}

// TestPost_TextAccumulates verifies AddText appends across stages.
func TestPost_TextAccumulates(t *testing.T) {
	p := state.NewPost()
	p.AddText("part one")
	p.AddText(" and part two")

	p.RequestReview()
	p.Approve()
	assert.Equal(t, "part one and part two", p.Content())
}
