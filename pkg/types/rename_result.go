package types

import "fmt"

// Outcome describes what happened to a single file during a rename run
type Outcome int

const (
	// NoMatch means the filename fits none of the known conventions
	NoMatch Outcome = iota
	// SkippedNoChange means the filename is already padded
	SkippedNoChange
	// SkippedCollision means the padded name is already taken
	SkippedCollision
	// Renamed means the file now carries its padded name
	Renamed
	// Failed means the rename itself failed and the run continued
	Failed
)

func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no-match"
	case SkippedNoChange:
		return "no-change"
	case SkippedCollision:
		return "collision"
	case Renamed:
		return "renamed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// RenameResult holds the outcome of a rename attempt for a single file
type RenameResult struct {
	Dir     string  `json:"dir"`
	OldName string  `json:"old_name"`
	NewName string  `json:"new_name,omitempty"`
	Rule    string  `json:"rule,omitempty"`
	Outcome Outcome `json:"outcome"`
	Error   error   `json:"error,omitempty"`
}
