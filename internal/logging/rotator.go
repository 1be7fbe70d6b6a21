package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

const logFilePerm = 0o600

// RotatorConfig describes a size-rotated log file.
type RotatorConfig struct {
	Dir        string
	Name       string
	MaxSize    int64 // bytes; rotation happens before a write would exceed it
	MaxBackups int   // Name.1 is the newest backup, Name.<MaxBackups> the oldest
	Compress   bool  // gzip backups as Name.N.gz
}

// LogRotator is an io.Writer appending to Dir/Name. When the file would grow
// past MaxSize it is shifted to Name.1 and older backups move up by one.
type LogRotator struct {
	mu   sync.Mutex
	cfg  RotatorConfig
	file *os.File
	size int64
}

// NewLogRotator opens (or creates) the log file for appending.
func NewLogRotator(cfg RotatorConfig) (*LogRotator, error) {
	r := &LogRotator{cfg: cfg}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.cfg.Dir, r.cfg.Name)
}

func (r *LogRotator) plainBackupPath(n int) string {
	return r.Path() + "." + strconv.Itoa(n)
}

func (r *LogRotator) backupPath(n int) string {
	p := r.plainBackupPath(n)
	if r.cfg.Compress {
		p += ".gz"
	}
	return p
}

func (r *LogRotator) open() error {
	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

// Write implements io.Writer. A single write larger than MaxSize still lands
// in a fresh file.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.cfg.MaxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	if r.cfg.MaxBackups <= 0 {
		if err := os.Remove(r.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("drop log file: %w", err)
		}
		return r.open()
	}

	for n := r.cfg.MaxBackups - 1; n >= 1; n-- {
		if err := shiftFile(r.backupPath(n), r.backupPath(n+1)); err != nil {
			return fmt.Errorf("shift log backup %d: %w", n, err)
		}
		// A backup whose compression failed keeps its plain name.
		if r.cfg.Compress {
			if err := shiftFile(r.plainBackupPath(n), r.plainBackupPath(n+1)); err != nil {
				return fmt.Errorf("shift log backup %d: %w", n, err)
			}
		}
	}

	newest := r.plainBackupPath(1)
	if err := os.Rename(r.Path(), newest); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if r.cfg.Compress {
		if err := gzipFile(newest, newest+".gz"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to compress %s: %v\n", newest, err)
		} else if err := os.Remove(newest); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove %s: %v\n", newest, err)
		}
	}

	return r.open()
}

// shiftFile renames src to dst. A missing src is not an error.
func shiftFile(src, dst string) error {
	if err := os.Rename(src, dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func gzipFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

// Close closes the active file. A later Write reopens it.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
