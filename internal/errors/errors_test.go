package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndWrap(t *testing.T) {
	err := Newf("%s already exists", "config.yaml")
	assert.Equal(t, "config.yaml already exists", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())

	base := New("disk full")
	wrapped := Wrapf(Wrap(base, "rename failed"), "book %q", "Boek A")
	assert.Equal(t, `book "Boek A": rename failed: disk full`, wrapped.Error())
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(Unwrap(wrapped)))

	assert.Nil(t, Wrap(nil, "rename failed"))
	assert.Nil(t, Wrapf(nil, "book %q", "Boek A"))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("error reading directory", "/books/A", FileAccessDenied, nil)
	assert.Equal(t, "error reading directory: /books/A", fileErr.Error())
	assert.Equal(t, "/books/A", fileErr.Path())

	cause := fmt.Errorf("permission denied")
	fileErr = NewFileError("error reading directory", "/books/A", FileAccessDenied, cause)
	assert.Equal(t, "error reading directory: /books/A: permission denied", fileErr.Error())
	assert.Equal(t, cause, Unwrap(fileErr))

	assert.True(t, IsFileAccessDenied(fileErr))
	assert.False(t, IsFileNotFound(fileErr))
	assert.False(t, IsFileAccessDenied(New("plain")))
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("pad width must be >= 1", "pad_width", InvalidConfig, nil)
	assert.Equal(t, "pad width must be >= 1: pad_width", configErr.Error())
	assert.Equal(t, "pad_width", configErr.Param())
	assert.True(t, IsInvalidConfig(Wrap(configErr, "invalid configuration")))
	assert.False(t, IsConfigNotFound(configErr))

	missing := NewConfigError("config file not found", "/etc/pagepad.yaml", ConfigNotFound, fs.ErrNotExist)
	assert.Equal(t, "config file not found: /etc/pagepad.yaml: file does not exist", missing.Error())
	assert.True(t, IsConfigNotFound(missing))
	assert.False(t, IsInvalidConfig(missing))
	assert.True(t, Is(missing, fs.ErrNotExist))
}

func TestCollisionError(t *testing.T) {
	collisionErr := NewCollisionError("1_1.jpg", "1_001.jpg")
	assert.Equal(t, "target already exists: 1_1.jpg -> 1_001.jpg", collisionErr.Error())
	assert.Equal(t, "1_1.jpg", collisionErr.Source())
	assert.Equal(t, "1_001.jpg", collisionErr.Target())
	assert.Equal(t, RenameCollision, collisionErr.Kind())

	assert.True(t, IsCollision(collisionErr))
	assert.True(t, IsCollision(Wrap(collisionErr, "book 1")))
	assert.False(t, IsCollision(FromOS("rename failed", "1_1.jpg", fs.ErrNotExist)))
}

func TestFromOS(t *testing.T) {
	notFound := FromOS("rename failed", "/books/a/1_1.jpg", fs.ErrNotExist)
	assert.True(t, IsFileNotFound(notFound))
	assert.Equal(t, "/books/a/1_1.jpg", notFound.Path())

	denied := FromOS("rename failed", "/books/a/1_1.jpg", &fs.PathError{Op: "rename", Path: "/books/a/1_1.jpg", Err: fs.ErrPermission})
	assert.True(t, IsFileAccessDenied(denied))

	other := FromOS("rename failed", "/books/a/1_1.jpg", fmt.Errorf("disk on fire"))
	assert.Equal(t, FileOperationFailed, other.Kind())
	assert.Equal(t, "rename failed: /books/a/1_1.jpg: disk on fire", other.Error())
}

func TestErrorChains(t *testing.T) {
	// Create a chain of errors
	baseErr := errors.New("base error")
	fileErr := NewFileError("file error", "/path/to/file", FileNotFound, baseErr)
	configErr := NewConfigError("config error", "root", InvalidConfig, fileErr)
	wrapped := Wrap(configErr, "load")

	// Test complete error message
	assert.Equal(t, "load: config error: root: file error: /path/to/file: base error", wrapped.Error())

	// Test Is function through the chain
	assert.True(t, Is(wrapped, baseErr))
	assert.True(t, Is(wrapped, fileErr))
	assert.True(t, Is(wrapped, configErr))

	// Test As function through the chain
	var fe *FileError
	assert.True(t, As(wrapped, &fe))
	assert.Equal(t, "/path/to/file", fe.Path())

	var ce *ConfigError
	assert.True(t, As(wrapped, &ce))
	assert.Equal(t, "root", ce.Param())

	// Test error predicates through the chain
	assert.True(t, IsFileNotFound(wrapped))
	assert.True(t, IsInvalidConfig(wrapped))
	assert.False(t, IsCollision(wrapped))
}
