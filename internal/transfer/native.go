package transfer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// RenameMover moves with os.Rename. It fails across filesystems.
type RenameMover struct{}

func NewRenameMover() *RenameMover {
	return &RenameMover{}
}

func (r *RenameMover) Name() string {
	return "rename"
}

func (r *RenameMover) Move(src, dst string) (*Result, error) {
	start := time.Now()
	if err := checkSource(src); err != nil {
		return nil, err
	}
	if err := os.Rename(src, dst); err != nil {
		return nil, fmt.Errorf("rename failed: %w", err)
	}
	return &Result{
		Source:      src,
		Destination: dst,
		Backend:     r.Name(),
		Duration:    time.Since(start),
	}, nil
}

// CopyMover copies the bytes, keeps the source mode, then deletes the source.
// A symlink is recreated at dst rather than followed.
type CopyMover struct {
	bufferSize int
}

func NewCopyMover(bufferSize int) *CopyMover {
	if bufferSize <= 0 {
		bufferSize = 1024 * 1024
	}
	return &CopyMover{bufferSize: bufferSize}
}

func (c *CopyMover) Name() string {
	return "copy"
}

func (c *CopyMover) Move(src, dst string) (*Result, error) {
	start := time.Now()
	if err := checkSource(src); err != nil {
		return nil, err
	}

	result := &Result{
		Source:      src,
		Destination: dst,
		Backend:     c.Name(),
	}

	info, err := os.Lstat(src)
	if err != nil {
		return nil, fmt.Errorf("unable to stat source: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		err = copySymlink(src, dst)
	} else {
		result.BytesCopied, err = c.copyFile(src, dst)
	}
	if err != nil {
		if rmErr := os.Remove(dst); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			err = errors.Join(err, fmt.Errorf("unable to remove partial copy: %w", rmErr))
		}
		return nil, err
	}

	if info.Mode().IsRegular() {
		if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
			result.Warning = fmt.Errorf("unable to keep modification time: %w", err)
		}
	}

	result.Duration = time.Since(start)
	if err := os.Remove(src); err != nil {
		return result, fmt.Errorf("%w: %v", ErrSourceNotRemoved, err)
	}
	return result, nil
}

func (c *CopyMover) copyFile(src, dst string) (int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat source: %w", err)
	}

	if err := checkDestinationDir(dst); err != nil {
		return 0, err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDestinationNotWritable, err)
	}

	n, err := io.CopyBuffer(dstFile, srcFile, make([]byte, c.bufferSize))
	if err != nil {
		dstFile.Close()
		return n, fmt.Errorf("copy error: %w", err)
	}
	if err := dstFile.Sync(); err != nil {
		dstFile.Close()
		return n, fmt.Errorf("sync error: %w", err)
	}
	if err := dstFile.Close(); err != nil {
		return n, fmt.Errorf("close error: %w", err)
	}
	return n, nil
}

// copySymlink recreates the link at dst with the same target, replacing an
// existing dst the way rename would.
func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("unable to read link: %w", err)
	}
	if err := checkDestinationDir(dst); err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrDestinationNotWritable, err)
	}
	if err := os.Symlink(target, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrDestinationNotWritable, err)
	}
	return nil
}

func checkDestinationDir(dst string) error {
	if _, err := os.Stat(filepath.Dir(dst)); err != nil {
		return fmt.Errorf("%w: %v", ErrDestinationNotWritable, err)
	}
	return nil
}

func checkSource(src string) error {
	if _, err := os.Lstat(src); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return fmt.Errorf("unable to stat source: %w", err)
	}
	return nil
}
