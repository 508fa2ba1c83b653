package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tristan-harris/cbr/internal/domain"
	"github.com/tristan-harris/cbr/internal/mock"
	"github.com/tristan-harris/cbr/internal/testutil"
)

// runPipeline classifies, plans, and executes an edit against memFS,
// mirroring one full run of the engine.
func runPipeline(t *testing.T, memFS *testutil.MemFS, trasher *mock.MockTrasher, originals, targets []string) ([]domain.OpResult, error) {
	t.Helper()
	classifier := NewClassifierService(NewTempNamer(memFS), '#', trasher != nil)
	actions, err := classifier.Classify(makeList(t, originals...), makeList(t, targets...))
	require.NoError(t, err)
	plan := NewPlannerService().Plan(actions)

	executor := NewExecutorService(memFS, trasher, domain.DefaultTrashChunkSize)
	return executor.Execute(context.Background(), plan)
}

func TestExecutorService_Execute(t *testing.T) {
	t.Run("identity performs zero mutations", func(t *testing.T) {
		memFS := testutil.NewMemFS("a", "b")

		results, err := runPipeline(t, memFS, nil, []string{"a", "b"}, []string{"a", "b"})
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.True(t, memFS.SnapshotEqual("a", "b"))
	})

	t.Run("swap exchanges contents without loss", func(t *testing.T) {
		memFS := testutil.NewMemFS("a", "b")

		results, err := runPipeline(t, memFS, nil, []string{"a", "b"}, []string{"b", "a"})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, memFS.SnapshotEqual("a", "b"))

		// Contents followed the renames: the file once called "a" is now "b".
		contents, ok := memFS.Contents("b")
		require.True(t, ok)
		assert.Equal(t, "a", contents)
		contents, ok = memFS.Contents("a")
		require.True(t, ok)
		assert.Equal(t, "b", contents)
	})

	t.Run("rotation cycle of three", func(t *testing.T) {
		memFS := testutil.NewMemFS("a", "b", "c")

		_, err := runPipeline(t, memFS, nil, []string{"a", "b", "c"}, []string{"b", "c", "a"})
		require.NoError(t, err)
		assert.True(t, memFS.SnapshotEqual("a", "b", "c"))

		for original, target := range map[string]string{"a": "b", "b": "c", "c": "a"} {
			contents, ok := memFS.Contents(target)
			require.True(t, ok)
			assert.Equal(t, original, contents, "file %q should now be named %q", original, target)
		}
	})

	t.Run("long cycle leaves no temp files behind", func(t *testing.T) {
		var originals, targets []string
		for i := 0; i < 20; i++ {
			originals = append(originals, fmt.Sprintf("f%02d", i))
			targets = append(targets, fmt.Sprintf("f%02d", (i+1)%20))
		}
		memFS := testutil.NewMemFS(originals...)

		_, err := runPipeline(t, memFS, nil, originals, targets)
		require.NoError(t, err)
		assert.ElementsMatch(t, originals, memFS.Names())
	})

	t.Run("mixed batch of rename delete and unchanged", func(t *testing.T) {
		memFS := testutil.NewMemFS("keep", "gone", "old")

		results, err := runPipeline(t, memFS, nil,
			[]string{"keep", "gone", "old"},
			[]string{"keep", "#", "new"},
		)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, domain.OpRemoved, results[0].Kind)
		assert.Equal(t, "gone", results[0].Original)
		assert.Equal(t, domain.OpRenamed, results[1].Kind)
		assert.True(t, memFS.SnapshotEqual("keep", "new"))
	})

	t.Run("first failure aborts leaving partial state", func(t *testing.T) {
		memFS := testutil.NewMemFS("a", "b", "c")
		memFS.RenameHook = func(oldpath, _ string) error {
			if oldpath == "b" {
				return errors.New("permission denied")
			}
			return nil
		}

		results, err := runPipeline(t, memFS, nil,
			[]string{"a", "b", "c"},
			[]string{"x", "y", "z"},
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFilesystemOp)
		assert.Contains(t, err.Error(), `"b"`)

		// "a" was already renamed and stays that way; "c" was never reached.
		require.Len(t, results, 1)
		assert.True(t, memFS.SnapshotEqual("x", "b", "c"))
	})

	t.Run("trash batches respect the chunk size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		trasher := mock.NewMockTrasher(ctrl)

		var names []string
		for i := 0; i < 5; i++ {
			names = append(names, fmt.Sprintf("t%d", i))
		}
		plan := &domain.RenamePlan{Trash: domain.TrashBatch{Names: names}}

		gomock.InOrder(
			trasher.EXPECT().Trash(gomock.Any(), []string{"t0", "t1"}).Return(nil),
			trasher.EXPECT().Trash(gomock.Any(), []string{"t2", "t3"}).Return(nil),
			trasher.EXPECT().Trash(gomock.Any(), []string{"t4"}).Return(nil),
		)

		executor := NewExecutorService(testutil.NewMemFS(), trasher, 2)
		results, err := executor.Execute(context.Background(), plan)
		require.NoError(t, err)
		require.Len(t, results, 5)
		for i, result := range results {
			assert.Equal(t, domain.OpTrashed, result.Kind)
			assert.Equal(t, names[i], result.Original)
		}
	})

	t.Run("failed trash chunk is fatal but earlier chunks stand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		trasher := mock.NewMockTrasher(ctrl)

		plan := &domain.RenamePlan{Trash: domain.TrashBatch{Names: []string{"a", "b", "c", "d"}}}

		gomock.InOrder(
			trasher.EXPECT().Trash(gomock.Any(), []string{"a", "b"}).Return(nil),
			trasher.EXPECT().Trash(gomock.Any(), []string{"c", "d"}).
				Return(fmt.Errorf("%w: gio trash", domain.ErrExternalProcess)),
		)

		executor := NewExecutorService(testutil.NewMemFS(), trasher, 2)
		results, err := executor.Execute(context.Background(), plan)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrExternalProcess)

		// Only the first chunk is reported as trashed.
		require.Len(t, results, 2)
		assert.Equal(t, "a", results[0].Original)
		assert.Equal(t, "b", results[1].Original)
	})

	t.Run("trash runs after phase one and before phase two", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		trasher := mock.NewMockTrasher(ctrl)
		memFS := testutil.NewMemFS("a", "b", "junk")

		var order []string
		memFS.RenameHook = func(oldpath, newpath string) error {
			order = append(order, "rename "+oldpath+">"+newpath)
			return nil
		}
		trasher.EXPECT().Trash(gomock.Any(), []string{"junk"}).DoAndReturn(
			func(context.Context, []string) error {
				order = append(order, "trash")
				return nil
			})

		// a<->b swap plus trashing "junk".
		classifier := NewClassifierService(NewTempNamer(memFS), '#', true)
		actions, err := classifier.Classify(
			makeList(t, "a", "b", "junk"),
			makeList(t, "b", "a", "#"),
		)
		require.NoError(t, err)
		plan := NewPlannerService().Plan(actions)

		executor := NewExecutorService(memFS, trasher, domain.DefaultTrashChunkSize)
		_, err = executor.Execute(context.Background(), plan)
		require.NoError(t, err)

		require.Len(t, order, 5)
		assert.Equal(t, "trash", order[2], "trash chunks run between the phases")
	})
}
