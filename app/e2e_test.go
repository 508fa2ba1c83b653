package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tristan-harris/cbr/internal/adapter/fs"
	"github.com/tristan-harris/cbr/internal/config"
	"github.com/tristan-harris/cbr/internal/domain"
	"github.com/tristan-harris/cbr/internal/service"
)

// scriptedEditor stands in for the external editor: it rewrites the edit
// list in place with the supplied transform.
type scriptedEditor struct {
	transform func(lines []string) []string
}

func (e *scriptedEditor) Edit(_ context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	edited := e.transform(lines)
	return os.WriteFile(path, []byte(strings.Join(edited, "\n")+"\n"), 0o644)
}

// unusedTrasher fails the test if the run ever reaches it.
type unusedTrasher struct{ t *testing.T }

func (u *unusedTrasher) Available() bool { return true }
func (u *unusedTrasher) Trash(context.Context, []string) error {
	u.t.Fatal("trasher must not be invoked")
	return nil
}

func newE2EApp(t *testing.T, cfg *config.Config, transform func(lines []string) []string) *App {
	t.Helper()
	fileSystem := &fs.OSFileSystem{}
	return NewApp(
		cfg,
		fileSystem,
		service.NewScannerService(fileSystem),
		service.NewValidatorService(fileSystem, cfg.DelChar, cfg.Force),
		service.NewClassifierService(service.NewTempNamer(fileSystem), cfg.DelChar, cfg.Trash),
		service.NewPlannerService(),
		service.NewExecutorService(fileSystem, &unusedTrasher{t: t}, domain.DefaultTrashChunkSize),
		&scriptedEditor{transform: transform},
		&unusedTrasher{t: t},
	)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
}

func readNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestApp_E2E(t *testing.T) {
	t.Run("rotation cycle on a real filesystem", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "a", "b", "c")
		chdir(t, dir)

		application := newE2EApp(t, &config.Config{DelChar: '#'}, func([]string) []string {
			return []string{"b", "c", "a"}
		})
		require.NoError(t, application.Run(context.Background()))

		assert.ElementsMatch(t, []string{"a", "b", "c"}, readNames(t, dir))
		for original, target := range map[string]string{"a": "b", "b": "c", "c": "a"} {
			data, err := os.ReadFile(filepath.Join(dir, target))
			require.NoError(t, err)
			assert.Equal(t, original, string(data), "no intermediate state survives")
		}
	})

	t.Run("rename and delete in one batch", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "doc.txt", "tmp.log")
		chdir(t, dir)

		application := newE2EApp(t, &config.Config{DelChar: '#'}, func([]string) []string {
			return []string{"notes.txt", "#tmp.log"}
		})
		require.NoError(t, application.Run(context.Background()))

		assert.ElementsMatch(t, []string{"notes.txt"}, readNames(t, dir))
	})

	t.Run("dangling symlink still occupies its name", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "a")
		require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), filepath.Join(dir, "broken")))
		chdir(t, dir)

		// Renaming "a" onto the dangling symlink's name must be refused
		// without force.
		application := newE2EApp(t, &config.Config{DelChar: '#', Files: []string{"a"}}, func([]string) []string {
			return []string{"broken"}
		})
		err := application.Run(context.Background())
		assert.ErrorIs(t, err, domain.ErrTargetExists)
	})
}
