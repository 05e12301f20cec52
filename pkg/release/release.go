// Package release orchestrates the relkit release workflow: test, bump,
// build, and upload, driven by the project configuration.
package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/wisefood/relkit/pkg/bump"
	"github.com/wisefood/relkit/pkg/config"
	"github.com/wisefood/relkit/pkg/run"
)

// ErrNoArtifacts indicates the upload step found nothing to publish.
var ErrNoArtifacts = errors.New("no artifacts to upload")

// Runner executes release steps for one project.
type Runner struct {
	cfg    *config.Config
	out    io.Writer
	dryRun bool
}

// New creates a Runner. Tool output is streamed to out as it is produced.
func New(cfg *config.Config, out io.Writer, dryRun bool) *Runner {
	return &Runner{
		cfg:    cfg,
		out:    out,
		dryRun: dryRun,
	}
}

func (r *Runner) opts() run.Opts {
	return run.Opts{
		Timeout: time.Duration(r.cfg.Timeout),
		Stream:  r.out,
	}
}

// Test runs the configured test suite, propagating its failure unchanged.
func (r *Runner) Test(ctx context.Context) error {
	_, err := run.Command(ctx, r.opts(), r.cfg.Test.Command...)
	if err != nil {
		return fmt.Errorf("test: %w", err)
	}

	return nil
}

// Clean removes the configured artifact paths and globs. Absent paths are
// not an error.
func (r *Runner) Clean(ctx context.Context) error {
	err := Clean(ctx, r.cfg.Clean.Paths, r.cfg.Clean.Globs)
	if err != nil {
		return fmt.Errorf("clean: %w", err)
	}

	return nil
}

// Build cleans previous artifacts, then runs the configured package builder.
func (r *Runner) Build(ctx context.Context) error {
	err := r.Clean(ctx)
	if err != nil {
		return err
	}

	_, err = run.Command(ctx, r.opts(), r.cfg.Build.Command...)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	return nil
}

// Upload publishes the built artifacts with the configured uploader. The
// artifact glob is expanded here rather than by a shell.
func (r *Runner) Upload(ctx context.Context) error {
	artifacts, err := filepath.Glob(r.cfg.Upload.Artifacts)
	if err != nil {
		return fmt.Errorf("upload: expand %q: %w", r.cfg.Upload.Artifacts, err)
	}

	if len(artifacts) == 0 {
		return fmt.Errorf("upload: %w: %s", ErrNoArtifacts, r.cfg.Upload.Artifacts)
	}

	if r.dryRun {
		slog.Info("dry run, skipping upload", "artifacts", artifacts)

		return nil
	}

	argv := append(append([]string{}, r.cfg.Upload.Command...), artifacts...)

	_, err = run.Command(ctx, r.opts(), argv...)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	return nil
}

// Bump increments the version stored in the configured version file and
// reports the old and new versions. In dry-run mode the file is not written.
func (r *Runner) Bump(_ context.Context, level bump.Level) (bump.Result, error) {
	if r.dryRun {
		return bump.DryRun(r.cfg.VersionFile, level)
	}

	return bump.File(r.cfg.VersionFile, level)
}

// All runs the full release sequence: test, bump patch, build, upload. The
// sequence stops at the first failure.
func (r *Runner) All(ctx context.Context) error {
	p := Pipeline{
		{Name: "test", Run: r.Test},
		{Name: "bump", Run: func(ctx context.Context) error {
			res, err := r.Bump(ctx, bump.Patch)
			if err != nil {
				return err
			}

			slog.Info("bumped version", "old", res.Old, "new", res.New)

			return nil
		}},
		{Name: "build", Run: r.Build},
		{Name: "upload", Run: r.Upload},
	}

	return p.Run(ctx)
}

// Step is one named stage of a release pipeline.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Pipeline executes steps in order, stopping at the first failure.
type Pipeline []Step

func (p Pipeline) Run(ctx context.Context) error {
	for _, step := range p {
		slog.Info("running step", "step", step.Name)

		err := step.Run(ctx)
		if err != nil {
			return fmt.Errorf("step %s: %w", step.Name, err)
		}
	}

	return nil
}
