// Package transfer moves single files into place. A plain rename is tried
// first; when that fails (typically because source and destination sit on
// different filesystems) the file is copied and the source removed.
//
// There is no conflict handling: an existing destination is replaced the way
// the platform's rename replaces it.
package transfer

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSourceNotFound is returned when the source file doesn't exist
	ErrSourceNotFound = errors.New("source file not found")

	// ErrDestinationNotWritable is returned when the destination can't be created
	ErrDestinationNotWritable = errors.New("destination not writable")

	// ErrSourceNotRemoved is returned when a copy succeeded but the source
	// could not be deleted afterwards
	ErrSourceNotRemoved = errors.New("copied but source not removed")
)

// Result describes a completed move.
type Result struct {
	Source      string
	Destination string
	// Backend is the name of the mover that completed the move.
	Backend     string
	BytesCopied int64
	Duration    time.Duration
	// Warning is a non-fatal problem, such as a modification time that
	// could not be carried over to the copy.
	Warning error
}

// Mover moves one regular file from src to dst. dst's parent directory must
// already exist.
type Mover interface {
	Move(src, dst string) (*Result, error)
	Name() string
}

type Backend int

const (
	BackendAuto Backend = iota
	BackendRename
	BackendCopy
)

func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendRename:
		return "rename"
	case BackendCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// New returns the mover for backend. Auto renames and falls back to copying.
func New(backend Backend) Mover {
	switch backend {
	case BackendRename:
		return NewRenameMover()
	case BackendCopy:
		return NewCopyMover(0)
	default:
		return NewFallbackMover(NewRenameMover(), NewCopyMover(0))
	}
}

func ParseBackend(s string) (Backend, error) {
	switch s {
	case "", "auto":
		return BackendAuto, nil
	case "rename":
		return BackendRename, nil
	case "copy":
		return BackendCopy, nil
	default:
		return BackendAuto, fmt.Errorf("unknown move backend %q (want auto, rename or copy)", s)
	}
}
