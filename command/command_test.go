package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternsmith/gofkit/command"
)

// TestSwitch_Press verifies named requests dispatch to the right
// commands and accumulate in the history.
func TestSwitch_Press(t *testing.T) {
	sw := command.NewSwitch()

	for i, tc := range []struct{ name, want string }{
		{"ON", "light turned on"},
		{"OFF", "light turned off"},
		{"ON", "light turned on"},
		{"ON", "light turned on"},
	} {
		got, err := sw.Press(tc.name)
		require.NoError(t, err, "press %d", i)
		assert.Equal(t, tc.want, got)
	}
	assert.Equal(t, 4, sw.HistoryLen())
}

// TestSwitch_UnknownCommand verifies unbound names error instead of
// executing anything.
func TestSwitch_UnknownCommand(t *testing.T) {
	sw := command.NewSwitch()

	_, err := sw.Press("DIMMER")
	assert.ErrorIs(t, err, command.ErrUnknownCommand)
	assert.Equal(t, 0, sw.HistoryLen(), "failed press must not enter history")
}

// TestSwitch_Undo verifies undo replays inverses in reverse order of
// execution.
func TestSwitch_Undo(t *testing.T) {
	sw := command.NewSwitch()
	_, err := sw.Press("ON")
	require.NoError(t, err)
	_, err = sw.Press("OFF")
	require.NoError(t, err)

	// Undo the OFF: light goes back on.
	got, err := sw.Undo()
	require.NoError(t, err)
	assert.Equal(t, "light turned on", got)

	// Undo the ON: light goes off again.
	got, err = sw.Undo()
	require.NoError(t, err)
	assert.Equal(t, "light turned off", got)

	// History exhausted.
	_, err = sw.Undo()
	assert.ErrorIs(t, err, command.ErrNothingToUndo)
}
