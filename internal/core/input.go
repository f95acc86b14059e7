package core

// Command is a single discrete player input for one turn. The platform
// layer maps keys (or SSH session input) to commands; exactly one command
// reaches the game per turn, and only once any running animation has
// finished.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdWait
	CmdUndo
	CmdReset
)

// Dir returns the movement direction for a directional command.
// Returns false for Wait/Undo/Reset/None.
func (c Command) Dir() (Dir4, bool) {
	switch c {
	case CmdUp:
		return North, true
	case CmdDown:
		return South, true
	case CmdLeft:
		return West, true
	case CmdRight:
		return East, true
	default:
		return North, false
	}
}

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdUp:
		return "Up"
	case CmdDown:
		return "Down"
	case CmdLeft:
		return "Left"
	case CmdRight:
		return "Right"
	case CmdWait:
		return "Wait"
	case CmdUndo:
		return "Undo"
	case CmdReset:
		return "Reset"
	default:
		return "Unknown"
	}
}
