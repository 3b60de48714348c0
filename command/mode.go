package command

// Mode is the command interpreter state
type Mode uint8

const (
	ModeSelect Mode = iota // Initial and default-return state
	ModeMove
	ModeAttack
	ModeHold
	ModeBuild
	ModeCtrl // Pending control group bind
	ModeAdd  // Pending control group append
)

var modeNames = [...]string{
	ModeSelect: "Select",
	ModeMove:   "Move",
	ModeAttack: "Attack",
	ModeHold:   "Hold",
	ModeBuild:  "Build",
	ModeCtrl:   "Ctrl",
	ModeAdd:    "Add",
}

// String returns the HUD label of the mode
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// Binding reports whether the mode waits for a group digit
func (m Mode) Binding() bool {
	return m == ModeCtrl || m == ModeAdd
}
