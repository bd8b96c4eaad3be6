// Package pdb reads molecular structure files from the local filesystem.
package pdb

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/molviewer/molviewd/pkg/errors"
	"github.com/molviewer/molviewd/pkg/metrics"
)

// File is the content of a structure file read from disk.
type File struct {
	// Path is the path the file was read from, echoed as given.
	Path string `json:"path"`
	// Content is the file's full text, returned verbatim.
	Content string `json:"content"`
}

// Service reads structure files on behalf of the API. Paths are not
// sandboxed; the viewer is intended for trusted local use only.
type Service interface {
	Read(ctx context.Context, path string) (*File, error)
}

// NewService creates a new PDB read service.
func NewService(logger *zap.Logger) Service {
	return &service{logger: logger}
}

type service struct {
	logger *zap.Logger
}

// Read loads the whole file at path into memory. It fails with a
// validation error when path is empty, a not-found error when the path
// does not exist, and an internal error for anything else (permission
// denial, IO failure, non-text content).
func (s *service) Read(ctx context.Context, path string) (*File, error) {
	if path == "" {
		metrics.PDBReads.WithLabelValues("error").Inc()
		return nil, errors.Validation("pdb_path required")
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("pdb file not found", zap.String("path", path))
			metrics.PDBReads.WithLabelValues("not_found").Inc()
			return nil, errors.NotFoundf("File not found: %s", path)
		}
		metrics.PDBReads.WithLabelValues("error").Inc()
		return nil, errors.Internal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("pdb read failed", zap.String("path", path), zap.Error(err))
		metrics.PDBReads.WithLabelValues("error").Inc()
		return nil, errors.Internal(err)
	}

	// The file must be text; returning invalid UTF-8 would be silently
	// mangled by the JSON encoder.
	if !utf8.Valid(data) {
		s.logger.Warn("pdb file is not valid utf-8", zap.String("path", path))
		metrics.PDBReads.WithLabelValues("error").Inc()
		return nil, errors.Internal(fmt.Errorf("file is not valid UTF-8 text: %s", path))
	}

	s.logger.Info("pdb file read", zap.String("path", path), zap.Int("bytes", len(data)))
	metrics.PDBReads.WithLabelValues("ok").Inc()
	metrics.PDBReadBytes.Observe(float64(len(data)))

	return &File{Path: path, Content: string(data)}, nil
}
