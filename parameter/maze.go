package parameter

import "time"

// Maze Generation
const (
	// MazeDefaultWidth is the default grid width in cells (forced odd)
	MazeDefaultWidth = 31

	// MazeDefaultHeight is the default grid height in cells (forced odd)
	MazeDefaultHeight = 31

	// MazeMaxDimension is the largest supported grid edge in cells
	MazeMaxDimension = 127

	// MazeDefaultPadCount is the number of recharge pads placed per round
	MazeDefaultPadCount = 3

	// PadMinStartDistance is the minimum Euclidean distance (cells) between
	// a recharge pad and the start cell
	PadMinStartDistance = 4.0

	// PadMinExitDistance is the minimum Euclidean distance (cells) between
	// a recharge pad and the exit room cell
	PadMinExitDistance = 4.0

	// GenerateBudget is the soft time limit for a single generation at the
	// maximum supported size; callers log a warning past it, never an error
	GenerateBudget = 50 * time.Millisecond
)
