package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pagepad/internal/config"
	"pagepad/internal/rename"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, dir string, filter Filter) *Watcher {
	t.Helper()
	w, err := New(filter)
	require.NoError(t, err, "New watcher creation failed")
	require.NoError(t, w.AddDirectory(dir), "Failed to add directory to watcher")
	require.NoError(t, w.Start(), "Failed to start watcher")
	t.Cleanup(w.Stop)

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)
	return w
}

func TestWatcherReportsCreatedFiles(t *testing.T) {
	tempDir := t.TempDir()
	w := startWatcher(t, tempDir, func(name string) bool {
		return strings.HasSuffix(name, ".jpg")
	})

	assert.True(t, w.IsRunning())
	assert.Equal(t, []string{tempDir}, w.GetDirectories())

	// Filtered out: hidden, wrong extension, directory
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".1_1.jpg"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "notes.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "sub.jpg"), 0755))

	testFilePath := filepath.Join(tempDir, "1_1.jpg")
	require.NoError(t, os.WriteFile(testFilePath, []byte("scan"), 0644))

	select {
	case event := <-w.FileChannel():
		assert.Equal(t, testFilePath, event.Path, "Event path mismatch")
		assert.True(t, event.Op.Has(fsnotify.Create), "Expected Create operation")
		require.NotNil(t, event.Info)
		assert.Equal(t, "1_1.jpg", event.Info.Name())
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for CREATE event")
	}
}

func TestWatcherStartStop(t *testing.T) {
	w, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, w.Start())
	assert.Error(t, w.Start(), "second start must fail")

	w.Stop()
	assert.False(t, w.IsRunning())
	w.Stop()
}

func TestAddDirectoryRejectsFiles(t *testing.T) {
	w, err := New(nil)
	require.NoError(t, err)
	defer w.Stop()

	file := filepath.Join(t.TempDir(), "1_1.jpg")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	assert.Error(t, w.AddDirectory(file))
	assert.Error(t, w.AddDirectory(filepath.Join(t.TempDir(), "missing")))
}

func TestRunPadsNewScans(t *testing.T) {
	dir := t.TempDir()
	engine, err := rename.NewWithConfig(config.New(), nil)
	require.NoError(t, err)

	w := startWatcher(t, dir, engine.IsImage)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, w, engine) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "2_5.png"), []byte("scan"), 0644))

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "2_005.png"))
		return err == nil
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunPadsLinkedScans(t *testing.T) {
	dir := t.TempDir()
	scan := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(scan, []byte("scan"), 0644))

	engine, err := rename.NewWithConfig(config.New(), nil)
	require.NoError(t, err)
	w := startWatcher(t, dir, engine.IsImage)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = Run(ctx, w, engine) }()

	if err := os.Symlink(scan, filepath.Join(dir, "4_4.png")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	require.Eventually(t, func() bool {
		_, err := os.Lstat(filepath.Join(dir, "4_004.png"))
		return err == nil
	}, 3*time.Second, 20*time.Millisecond)
}
