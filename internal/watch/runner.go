package watch

import (
	"context"

	"pagepad/internal/errors"
	"pagepad/internal/log"
	"pagepad/pkg/types"
)

// Processor pads a single file
type Processor interface {
	ProcessFile(path string) (types.RenameResult, error)
}

// Run hands new files to p one at a time until ctx is cancelled. Files that
// vanish before they are processed are ignored; any other error ends the run.
func Run(ctx context.Context, w *Watcher, p Processor) error {
	files := w.FileChannel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case mod := <-files:
			result, err := p.ProcessFile(mod.Path)
			if err != nil {
				if errors.IsFileNotFound(err) {
					log.Debugf("%s disappeared before processing", mod.Path)
					continue
				}
				return err
			}
			log.LogWithFields(log.F("file", mod.Path), log.F("outcome", result.Outcome.String())).Debug("Processed new file")
		}
	}
}
