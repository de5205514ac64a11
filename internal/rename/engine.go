package rename

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"pagepad/internal/config"
	"pagepad/internal/errors"
	"pagepad/internal/log"
	"pagepad/internal/pattern"
	"pagepad/pkg/types"

	"github.com/gobwas/glob"
)

// Reporter receives progress from the engine
type Reporter interface {
	StartDirectory(name string)
	Record(result types.RenameResult)
	FinishDirectory(name string, renamed int)
}

type nopReporter struct{}

func (nopReporter) StartDirectory(string)       {}
func (nopReporter) Record(types.RenameResult)   {}
func (nopReporter) FinishDirectory(string, int) {}

// Engine pads page numbers of image files, one file at a time.
type Engine struct {
	matcher    *pattern.Matcher
	images     glob.Glob
	skipDirs   []glob.Glob
	onError    string
	reporter   Reporter
	renameFile func(oldpath, newpath string) error
}

// NewWithConfig creates an engine from configuration. A nil reporter
// discards progress.
func NewWithConfig(cfg *config.Config, reporter Reporter) (*Engine, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	images, err := cfg.ImageGlob()
	if err != nil {
		return nil, err
	}
	skipDirs, err := cfg.SkipGlobs()
	if err != nil {
		return nil, err
	}
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Engine{
		matcher:    pattern.New(cfg.Settings.PadWidth),
		images:     images,
		skipDirs:   skipDirs,
		onError:    cfg.Settings.OnError,
		reporter:   reporter,
		renameFile: os.Rename,
	}, nil
}

// IsImage reports whether name has one of the configured extensions,
// ignoring case.
func (e *Engine) IsImage(name string) bool {
	return e.images.Match(strings.ToLower(name))
}

// ProcessFile pads a single file. Files that are not images are returned
// as NoMatch without being reported.
func (e *Engine) ProcessFile(path string) (types.RenameResult, error) {
	dir, name := filepath.Split(filepath.Clean(path))
	dir = filepath.Clean(dir)
	result := types.RenameResult{Dir: dir, OldName: name, Outcome: types.NoMatch}

	info, err := os.Lstat(path)
	if err != nil {
		return result, errors.FromOS("error accessing file", path, err)
	}
	if !isFile(path, fs.FileInfoToDirEntry(info)) || !e.IsImage(name) {
		return result, nil
	}

	result, err = e.evaluate(dir, name)
	if err != nil {
		return result, err
	}
	e.reporter.Record(result)
	return result, nil
}

// ProcessDirectory pads every image file directly inside dir and returns the
// number of files renamed. Subdirectories are not entered.
func (e *Engine) ProcessDirectory(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.FromOS("error reading directory", dir, err)
	}

	renamed := 0
	for _, entry := range entries {
		if !e.IsImage(entry.Name()) || !isFile(filepath.Join(dir, entry.Name()), entry) {
			continue
		}

		result, err := e.evaluate(dir, entry.Name())
		if err != nil {
			return renamed, err
		}
		e.reporter.Record(result)
		if result.Outcome == types.Renamed {
			renamed++
		}
	}

	log.LogWithFields(log.F("dir", dir), log.F("renamed", renamed)).Debug("Directory processed")
	return renamed, nil
}

// ProcessTree runs ProcessDirectory on every book directory directly under
// root, in name order, and returns the total number of files renamed.
// Hidden entries and names matching skip_dirs are ignored.
func (e *Engine) ProcessTree(root string) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, errors.FromOS("error reading directory", root, err)
	}

	total := 0
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || e.skipped(name) {
			continue
		}
		path := filepath.Join(root, name)
		if !isDir(path, entry) {
			continue
		}

		e.reporter.StartDirectory(name)
		renamed, err := e.ProcessDirectory(path)
		total += renamed
		if err != nil {
			return total, errors.Wrapf(err, "book %q", name)
		}
		e.reporter.FinishDirectory(name, renamed)
	}

	return total, nil
}

func (e *Engine) skipped(name string) bool {
	for _, g := range e.skipDirs {
		if g.Match(name) {
			log.Debugf("Skipping %s (skip_dirs)", name)
			return true
		}
	}
	return false
}

// isDir follows symlinks so linked book directories are processed too.
func isDir(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isFile follows symlinks as well. A linked page is renamed as a link and
// its target is left alone. Dangling links are not files.
func isFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// evaluate decides what happens to dir/name and performs the rename.
func (e *Engine) evaluate(dir, name string) (types.RenameResult, error) {
	result := types.RenameResult{Dir: dir, OldName: name}

	proposal, ok := e.matcher.Match(name)
	if !ok {
		result.Outcome = types.NoMatch
		log.Debugf("No convention matches %s", name)
		return result, nil
	}
	result.NewName = proposal.Name
	result.Rule = proposal.Rule

	if proposal.Name == name {
		result.Outcome = types.SkippedNoChange
		return result, nil
	}

	src := filepath.Join(dir, name)
	target := filepath.Join(dir, proposal.Name)

	// Anything at the target, even a dangling symlink, blocks the rename
	if _, err := os.Lstat(target); err == nil {
		collision := errors.NewCollisionError(name, proposal.Name)
		log.LogWithError(collision).Debug("Target exists, leaving source untouched")
		result.Outcome = types.SkippedCollision
		result.Error = collision
		return result, nil
	} else if !os.IsNotExist(err) {
		return e.fail(result, errors.FromOS("error checking target", target, err))
	}

	if err := e.renameFile(src, target); err != nil {
		return e.fail(result, errors.FromOS("rename failed", src, err))
	}

	log.LogWithFields(log.F("rule", proposal.Rule), log.F("dir", dir)).Debug(name + " -> " + proposal.Name)
	result.Outcome = types.Renamed
	return result, nil
}

func (e *Engine) fail(result types.RenameResult, err error) (types.RenameResult, error) {
	if e.onError == config.OnErrorContinue {
		log.LogWithError(err).Error("Rename failed, continuing")
		result.Outcome = types.Failed
		result.Error = err
		return result, nil
	}
	return result, err
}
