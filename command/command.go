package command

import "errors"

var (
	// ErrUnknownCommand is returned by Switch.Press for names no command
	// is bound to.
	ErrUnknownCommand = errors.New("command: unknown command")
	// ErrNothingToUndo is returned by Switch.Undo on an empty history.
	ErrNothingToUndo = errors.New("command: nothing to undo")
)

// Light is the receiver: it knows how to perform the work.
type Light struct{}

// TurnOn switches the light on.
func (Light) TurnOn() string { return "light turned on" }

// TurnOff switches the light off.
func (Light) TurnOff() string { return "light turned off" }

// Command binds a receiver to one action and knows its own inverse.
type Command interface {
	Execute() string
	Undo() string
}

// TurnOn is the concrete command for switching a light on.
type TurnOn struct {
	Light Light
}

// Execute turns the light on.
func (c TurnOn) Execute() string { return c.Light.TurnOn() }

// Undo reverses Execute by turning the light off.
func (c TurnOn) Undo() string { return c.Light.TurnOff() }

// TurnOff is the concrete command for switching a light off.
type TurnOff struct {
	Light Light
}

// Execute turns the light off.
func (c TurnOff) Execute() string { return c.Light.TurnOff() }

// Undo reverses Execute by turning the light on.
func (c TurnOff) Undo() string { return c.Light.TurnOn() }

// Switch is the invoker: it dispatches named requests as command
// objects and keeps the executed ones for undo.
type Switch struct {
	light   Light
	history []Command
}

// NewSwitch returns a switch controlling one light.
func NewSwitch() *Switch {
	return &Switch{}
}

// Press executes the command bound to name ("ON" or "OFF") and records
// it. Returns ErrUnknownCommand for anything else.
func (s *Switch) Press(name string) (string, error) {
	var cmd Command
	switch name {
	case "ON":
		cmd = TurnOn{Light: s.light}
	case "OFF":
		cmd = TurnOff{Light: s.light}
	default:
		return "", ErrUnknownCommand
	}

	out := cmd.Execute()
	s.history = append(s.history, cmd)

	return out, nil
}

// Undo reverses the most recent command and drops it from the history.
// Returns ErrNothingToUndo when the history is empty.
func (s *Switch) Undo() (string, error) {
	n := len(s.history)
	if n == 0 {
		return "", ErrNothingToUndo
	}
	cmd := s.history[n-1]
	s.history = s.history[:n-1]

	return cmd.Undo(), nil
}

// HistoryLen reports how many commands are undoable.
func (s *Switch) HistoryLen() int { return len(s.history) }
