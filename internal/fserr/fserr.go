// Package fserr classifies filesystem failures raised by the traversal
// engine. Errors are wrapped, never replaced, so errors.Is against the
// io/fs sentinels keeps working on anything this package returns.
package fserr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// Kind is the coarse category of a filesystem failure.
type Kind int

const (
	KindIO Kind = iota
	KindNotFound
	KindNotADirectory
	KindPermission
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindNotADirectory:
		return "not a directory"
	case KindPermission:
		return "permission denied"
	case KindInvalid:
		return "invalid argument"
	default:
		return "i/o failure"
	}
}

// ErrSameDirectory is returned when a copy destination is the source
// directory itself.
var ErrSameDirectory = errors.New("destination is the source directory")

// Error records the operation and path that failed.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, cause)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap classifies err and annotates it with op and path. Nil stays nil and
// an error that already carries a classification is returned unchanged.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}
	return &Error{Op: op, Path: path, Kind: classify(path, err), Err: err}
}

// KindOf returns the classification of err, or KindIO for errors that did
// not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return classify("", err)
}

// IsNotFound reports whether err is a missing-path failure.
func IsNotFound(err error) bool { return err != nil && KindOf(err) == KindNotFound }

// IsNotADirectory reports whether err came from listing a non-directory.
func IsNotADirectory(err error) bool { return err != nil && KindOf(err) == KindNotADirectory }

// IsPermission reports whether err is an access failure.
func IsPermission(err error) bool { return err != nil && KindOf(err) == KindPermission }

// IsInvalid reports whether err was caused by the arguments rather than the
// filesystem.
func IsInvalid(err error) bool { return err != nil && KindOf(err) == KindInvalid }

func classify(path string, err error) Kind {
	switch {
	case errors.Is(err, ErrSameDirectory):
		return KindInvalid
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, syscall.ENOTDIR):
		return KindNotADirectory
	}
	// Some platforms report listing a regular file as a generic error.
	if path != "" {
		if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
			var pe *fs.PathError
			if errors.As(err, &pe) && (pe.Op == "readdirent" || pe.Op == "open" || pe.Op == "readdir") {
				return KindNotADirectory
			}
		}
	}
	return KindIO
}
