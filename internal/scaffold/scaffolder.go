package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrMissingPath     = errors.New("scaffold: missing path")
	ErrCreateDir       = errors.New("scaffold: directory creation failed")
	ErrWriteFile       = errors.New("scaffold: file write failed")
	ErrBaseDirConflict = errors.New("scaffold: base dir is not a directory")
)

// Scaffold package batch configuration for one create invocation.
type Config struct {
	// BaseDir anchors relative descriptor paths. Empty means the
	// current working directory.
	BaseDir string
	// DryRun resolves and reports targets without touching the
	// filesystem.
	DryRun bool
	// Overwrite replaces existing files instead of skipping them.
	Overwrite bool
	// DefaultContent fills descriptors that carry no content.
	DefaultContent string
	// Logger receives one event per descriptor decision. Nil disables
	// logging.
	Logger *zerolog.Logger
}

// Scaffold package executor applying descriptors against the base directory.
type Scaffolder struct {
	baseDir        string
	dryRun         bool
	overwrite      bool
	defaultContent string
	logger         zerolog.Logger
}

// Scaffold package constructor with base directory resolution and validation.
func New(cfg Config) (*Scaffolder, error) {
	baseDir := strings.TrimSpace(cfg.BaseDir)
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		baseDir = wd
	}
	baseAbs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(baseAbs); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrBaseDirConflict, baseAbs)
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Scaffolder{
		baseDir:        baseAbs,
		dryRun:         cfg.DryRun,
		overwrite:      cfg.Overwrite,
		defaultContent: cfg.DefaultContent,
		logger:         logger,
	}, nil
}

// BaseDir reports the resolved directory relative descriptor paths join to.
func (s *Scaffolder) BaseDir() string {
	return s.baseDir
}

// Create applies every descriptor in order and reports one outcome per
// descriptor. A failed or skipped entry never aborts the batch; later
// descriptors still run.
func (s *Scaffolder) Create(descriptors []Descriptor) []Outcome {
	outcomes := make([]Outcome, 0, len(descriptors))
	for _, desc := range descriptors {
		outcomes = append(outcomes, s.createOne(desc))
	}
	return outcomes
}

func (s *Scaffolder) createOne(desc Descriptor) Outcome {
	path := strings.TrimSpace(desc.Path)
	if path == "" {
		s.logger.Error().Err(ErrMissingPath).Msg("descriptor rejected")
		return Outcome{Path: path, Status: StatusFailed, Err: ErrMissingPath}
	}

	target := s.resolveTarget(path)
	content := s.defaultContent
	if desc.Content != nil {
		content = *desc.Content
	}

	if s.dryRun {
		s.logger.Info().Str("target", target).Msg("dry-run: would create")
		return Outcome{Path: path, Target: target, Status: StatusPlanned}
	}

	s.logger.Info().Str("target", target).Msg("preparing to create")

	parent := filepath.Dir(target)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		s.logger.Error().Err(err).Str("dir", parent).Msg("failed to create directory")
		return Outcome{
			Path:   path,
			Target: target,
			Status: StatusFailed,
			Err:    fmt.Errorf("%w: %s: %v", ErrCreateDir, parent, err),
		}
	}

	if !s.overwrite {
		if _, err := os.Stat(target); err == nil {
			s.logger.Info().Str("target", target).Msg("skipping existing file (overwrite disabled)")
			return Outcome{Path: path, Target: target, Status: StatusSkipped}
		}
	}

	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		s.logger.Error().Err(err).Str("target", target).Msg("failed to write file")
		return Outcome{
			Path:   path,
			Target: target,
			Status: StatusFailed,
			Err:    fmt.Errorf("%w: %s: %v", ErrWriteFile, target, err),
		}
	}

	s.logger.Info().Str("target", target).Msg("created file")
	return Outcome{Path: path, Target: target, Status: StatusCreated}
}

// resolveTarget normalizes one descriptor path lexically (no symlink
// resolution). Relative paths join to the base directory; absolute
// paths are used as-is.
func (s *Scaffolder) resolveTarget(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(s.baseDir, path))
}
