package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"github.com/agentstation/marquee/pkg/catalogs"
	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
)

// File stores the catalog in a single file on disk.
//
// A sibling "<path>.lock" file is locked shared while reading and
// exclusively while writing. The lock only guards a single read or write;
// two processes that each load, modify and save can still overwrite each
// other's changes, and the last save wins.
type File struct {
	path        string
	format      Format
	lock        *flock.Flock
	lockTimeout time.Duration
	logger      *zerolog.Logger
}

// FileOption configures a File store.
type FileOption func(*File)

// WithFormat overrides the format inferred from the file extension.
func WithFormat(f Format) FileOption {
	return func(s *File) {
		if f.IsValid() {
			s.format = f
		}
	}
}

// WithLockTimeout sets how long to wait for the lock file.
func WithLockTimeout(d time.Duration) FileOption {
	return func(s *File) {
		s.lockTimeout = d
	}
}

// WithLogger sets the logger. Without one the logger in the call context is used.
func WithLogger(logger *zerolog.Logger) FileOption {
	return func(s *File) {
		s.logger = logger
	}
}

// NewFile returns a store backed by path. An empty path uses
// constants.DefaultDataFile.
func NewFile(path string, opts ...FileOption) *File {
	if path == "" {
		path = constants.DefaultDataFile
	}
	s := &File{
		path:        path,
		format:      FormatFromPath(path),
		lock:        flock.New(path + constants.LockSuffix),
		lockTimeout: constants.LockTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the catalog file path.
func (s *File) Path() string {
	return s.path
}

// Format returns the file format.
func (s *File) Format() Format {
	return s.format
}

// Load reads the catalog file. Any failure yields an empty catalog.
func (s *File) Load(ctx context.Context) catalogs.Catalog {
	logger := s.log(ctx)

	if unlock, err := s.acquire(ctx, false); err != nil {
		logger.Warn().Err(err).Msg("Reading catalog without lock")
	} else {
		defer unlock()
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("Catalog file does not exist, starting empty")
		} else {
			logger.Warn().Err(errors.WrapIO("read", s.path, err)).Msg("Catalog unreadable, starting empty")
		}
		return catalogs.New()
	}

	if len(bytes.TrimSpace(data)) == 0 {
		logger.Debug().Msg("Catalog file is empty")
		return catalogs.New()
	}

	c, err := s.format.Unmarshal(data)
	if err != nil {
		logger.Warn().
			Err(errors.WrapParse(s.format.String(), s.path, err)).
			Msg("Catalog could not be parsed, starting empty")
		return catalogs.New()
	}

	logger.Debug().Int("count", c.Len()).Msg("Loaded catalog")
	return c
}

// Save writes c to a temporary file in the same directory and renames it
// over the catalog file, so readers see either the old or the new content.
func (s *File) Save(ctx context.Context, c catalogs.Catalog) error {
	logger := s.log(ctx)

	data, err := s.format.Marshal(c)
	if err != nil {
		return errors.WrapIO("encode", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		logger.Error().Err(err).Msg("Failed to create catalog directory")
		return errors.WrapIO("mkdir", dir, err)
	}

	unlock, err := s.acquire(ctx, true)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to lock catalog")
		return err
	}
	defer unlock()

	if err := writeAtomic(s.path, data); err != nil {
		logger.Error().Err(err).Msg("Failed to write catalog")
		return err
	}

	logger.Debug().Int("count", len(c)).Msg("Saved catalog")
	return nil
}

// log returns the store's own logger, else the context logger, tagged with the path.
func (s *File) log(ctx context.Context) *zerolog.Logger {
	if s.logger != nil {
		ctx = logging.WithLogger(ctx, s.logger)
	}
	return logging.Ctx(logging.WithPath(ctx, s.path))
}

// acquire takes the lock file, shared or exclusive, within lockTimeout.
func (s *File) acquire(ctx context.Context, exclusive bool) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = s.lock.TryLockContext(ctx, constants.LockRetryDelay)
	} else {
		locked, err = s.lock.TryRLockContext(ctx, constants.LockRetryDelay)
	}
	if err != nil {
		return nil, errors.WrapIO("lock", s.lock.Path(), err)
	}
	if !locked {
		return nil, errors.NewIOError("lock", s.lock.Path(), errors.New("could not acquire file lock"))
	}
	return func() { _ = s.lock.Unlock() }, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("write", path, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.WrapIO("sync", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		cleanup()
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
