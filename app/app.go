// Package app wires the cbr services into the single edit-rename-execute
// flow and renders the per-entry outcome report.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tristan-harris/cbr/internal/config"
	"github.com/tristan-harris/cbr/internal/domain"
	"github.com/tristan-harris/cbr/internal/port"
)

// Option configures the App.
type Option func(*App)

// WithLogger sets a custom logger for the App.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithReporter sets a custom outcome reporter for the App.
func WithReporter(reporter *Reporter) Option {
	return func(a *App) {
		a.reporter = reporter
	}
}

// App composes the ports into one run of the bulk rename flow.
type App struct {
	cfg        *config.Config
	fs         port.FileSystem
	scanner    port.Scanner
	validator  port.Validator
	classifier port.Classifier
	planner    port.Planner
	executor   port.Executor
	editor     port.Editor
	trasher    port.Trasher
	reporter   *Reporter
	logger     *slog.Logger
}

// NewApp creates an App with injected service dependencies.
func NewApp(
	cfg *config.Config,
	fs port.FileSystem,
	scanner port.Scanner,
	validator port.Validator,
	classifier port.Classifier,
	planner port.Planner,
	executor port.Executor,
	editor port.Editor,
	trasher port.Trasher,
	opts ...Option,
) *App {
	a := &App{
		cfg:        cfg,
		fs:         fs,
		scanner:    scanner,
		validator:  validator,
		classifier: classifier,
		planner:    planner,
		executor:   executor,
		editor:     editor,
		trasher:    trasher,
		reporter:   NewDiscardReporter(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes one full invocation: collect the batch, hand it to the
// editor, validate the edit, and apply it. Validation failures abort with
// zero filesystem changes; once execution starts, a failure stops the run
// in whatever partial state has been reached.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Trash && !a.trasher.Available() {
		return fmt.Errorf("%w: gio (part of GLib) is required for trash support",
			domain.ErrExternalProcess)
	}

	originals, err := a.collect()
	if err != nil {
		return err
	}
	if originals.Len() == 0 {
		a.logger.Info("nothing to rename", "file_count", 0)
		return nil
	}
	originals.SortInPlace()

	targets, err := a.editNames(ctx, originals)
	if err != nil {
		return err
	}

	if err := a.validator.Validate(originals, targets); err != nil {
		return err
	}

	actions, err := a.classifier.Classify(originals, targets)
	if err != nil {
		return err
	}
	plan := a.planner.Plan(actions)
	a.logger.Info("plan computed",
		"file_count", originals.Len(),
		"phase1_ops", len(plan.Phase1),
		"staged_renames", len(plan.Phase2),
		"trash_count", plan.Trash.Len(),
	)

	if plan.Empty() {
		a.logger.Info("no changes requested")
		return nil
	}

	if a.cfg.DryRun {
		a.reporter.Preview(actions)
		return nil
	}

	results, err := a.executor.Execute(ctx, plan)
	if !a.cfg.Silent {
		for _, result := range results {
			a.reporter.Result(result)
		}
	}
	if err != nil {
		return err
	}
	a.logger.Info("run finished", "op_count", len(results))
	return nil
}

// collect builds the original batch from the positional arguments, or from
// the working directory when none were given.
func (a *App) collect() (*domain.NameList, error) {
	if len(a.cfg.Files) > 0 {
		return a.scanner.FromArgs(a.cfg.Files, a.cfg.DelChar)
	}
	return a.scanner.Scan(".", a.cfg.DelChar)
}

// editNames round-trips the sorted original list through the user's
// editor and returns the parsed target list.
func (a *App) editNames(ctx context.Context, originals *domain.NameList) (*domain.NameList, error) {
	path, err := a.fs.CreateTemp("cbr_edit_*.list")
	if err != nil {
		return nil, fmt.Errorf("could not create edit list: %w", err)
	}
	defer func() {
		if a.fs.Exists(path) {
			_ = a.fs.Remove(path)
		}
	}()

	if err := writeNameFile(a.fs, path, originals); err != nil {
		return nil, err
	}
	a.logger.Info("edit list written", "path", path, "file_count", originals.Len())

	if err := a.editor.Edit(ctx, path); err != nil {
		return nil, err
	}

	targets, err := readNameFile(a.fs, path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("edit list read back", "path", path, "line_count", targets.Len())
	return targets, nil
}
