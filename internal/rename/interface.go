package rename

import "pagepad/pkg/types"

// Renamer defines the operations the commands and the watcher rely on.
// It allows the engine to be replaced in tests.
type Renamer interface {
	// ProcessFile pads a single file
	ProcessFile(path string) (types.RenameResult, error)

	// ProcessDirectory pads all image files directly inside dir
	ProcessDirectory(dir string) (int, error)

	// ProcessTree pads every book directory under root
	ProcessTree(root string) (int, error)
}

// Ensure Engine implements the Renamer interface
var _ Renamer = (*Engine)(nil)
