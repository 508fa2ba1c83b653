package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tristan-harris/cbr/app"
	"github.com/tristan-harris/cbr/internal/adapter/editor"
	osfs "github.com/tristan-harris/cbr/internal/adapter/fs"
	"github.com/tristan-harris/cbr/internal/adapter/trash"
	"github.com/tristan-harris/cbr/internal/config"
	"github.com/tristan-harris/cbr/internal/domain"
	"github.com/tristan-harris/cbr/internal/service"
)

const version = "0.1"

func main() {
	var (
		delChar    string
		editorFlag string
		force      bool
		silent     bool
		trashFlag  bool
		dryRun     bool
	)

	rootCmd := &cobra.Command{
		Use:     "cbr [FILE]...",
		Short:   "Bulk renaming utility",
		Long:    "cbr renames, deletes, or trashes files by letting you edit a list of\nfilenames in your preferred text editor, then applying the edits back\nto the filesystem.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(delChar, editorFlag, force, silent, trashFlag, dryRun, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&delChar, "delchar", "d", config.DefaultDelChar, "deletion mark character")
	rootCmd.Flags().StringVarP(&editorFlag, "editor", "e", "", "editor to use")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "allow overwriting of existing files")
	rootCmd.Flags().BoolVarP(&silent, "silent", "s", false, "only report errors")
	rootCmd.Flags().BoolVarP(&trashFlag, "trash", "t", false, "send marked files to trash instead of deleting them")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would happen without touching any file")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("cbr failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	editorCmd, err := editor.Resolve(cfg.Editor)
	if err != nil {
		return err
	}

	fileSystem := &osfs.OSFileSystem{}
	scanner := service.NewScannerService(fileSystem)
	validator := service.NewValidatorService(fileSystem, cfg.DelChar, cfg.Force)
	classifier := service.NewClassifierService(service.NewTempNamer(fileSystem), cfg.DelChar, cfg.Trash)
	planner := service.NewPlannerService()
	trasher := trash.NewGioTrasher()
	executor := service.NewExecutorService(fileSystem, trasher, domain.DefaultTrashChunkSize)

	color := term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	reporter := app.NewReporter(os.Stdout, color)

	application := app.NewApp(
		cfg,
		fileSystem,
		scanner,
		validator,
		classifier,
		planner,
		executor,
		editor.NewCommandEditor(editorCmd),
		trasher,
		app.WithReporter(reporter),
	)
	return application.Run(ctx)
}
