package parameter

// Screen and map defaults for a 60x30 terminal
const (
	// DefaultScreenWidth is the terminal width in cells assumed before the first resize
	DefaultScreenWidth = 60

	// DefaultScreenHeight is the terminal height in cells assumed before the first resize
	DefaultScreenHeight = 30

	// DefaultMapWidth is the playable width when a scenario does not set one
	DefaultMapWidth = 200

	// DefaultMapHeight is the playable height when a scenario does not set one
	DefaultMapHeight = 100

	// ControlGroupCount is the number of digit-addressed control groups (0-9)
	ControlGroupCount = 10

	// CameraBookmarkCount is the number of stored camera offsets (F1-F3)
	CameraBookmarkCount = 3

	// CursorGlyph is drawn at the pointer position
	CursorGlyph = '<'

	// GridGlyph fills empty cells
	GridGlyph = '.'
)
