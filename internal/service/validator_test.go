package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tristan-harris/cbr/internal/domain"
	"github.com/tristan-harris/cbr/internal/mock"
)

func makeList(t *testing.T, names ...string) *domain.NameList {
	t.Helper()
	list := domain.NewNameList()
	for _, name := range names {
		require.NoError(t, list.Add(name))
	}
	return list
}

func TestValidatorService_Validate(t *testing.T) {
	t.Run("count mismatch fails before anything else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := mock.NewMockFileSystem(ctrl)
		v := NewValidatorService(mockFS, '#', false)

		err := v.Validate(makeList(t, "a", "b"), makeList(t, "a"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMismatchedCount))
		assert.Contains(t, err.Error(), "1")
		assert.Contains(t, err.Error(), "2")
	})

	t.Run("identity edit passes without filesystem probes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := mock.NewMockFileSystem(ctrl)
		v := NewValidatorService(mockFS, '#', false)

		err := v.Validate(makeList(t, "a", "b"), makeList(t, "a", "b"))
		assert.NoError(t, err)
	})

	t.Run("target outside batch existing on disk is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := mock.NewMockFileSystem(ctrl)
		mockFS.EXPECT().Exists("existing.txt").Return(true)
		v := NewValidatorService(mockFS, '#', false)

		err := v.Validate(makeList(t, "a"), makeList(t, "existing.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrTargetExists))
		assert.Contains(t, err.Error(), "existing.txt")
	})

	t.Run("force allows overwriting files outside the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := mock.NewMockFileSystem(ctrl)
		v := NewValidatorService(mockFS, '#', true)

		err := v.Validate(makeList(t, "a"), makeList(t, "existing.txt"))
		assert.NoError(t, err)
	})

	t.Run("swap targets are not clobbers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := mock.NewMockFileSystem(ctrl)
		v := NewValidatorService(mockFS, '#', false)

		// "b" and "a" both exist on disk, but both belong to the batch:
		// Exists must never be consulted for them.
		err := v.Validate(makeList(t, "a", "b"), makeList(t, "b", "a"))
		assert.NoError(t, err)
	})

	t.Run("duplicate targets are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := mock.NewMockFileSystem(ctrl)
		mockFS.EXPECT().Exists("x").Return(false).Times(2)
		v := NewValidatorService(mockFS, '#', false)

		err := v.Validate(makeList(t, "a", "b"), makeList(t, "x", "x"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateTarget))
		assert.Contains(t, err.Error(), `"x"`)
	})

	t.Run("delete markers are exempt from uniqueness", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := mock.NewMockFileSystem(ctrl)
		v := NewValidatorService(mockFS, '#', false)

		err := v.Validate(makeList(t, "a", "b", "c"), makeList(t, "#", "#", "c"))
		assert.NoError(t, err)
	})

	t.Run("marker lines skip existence checks entirely", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := mock.NewMockFileSystem(ctrl)
		v := NewValidatorService(mockFS, '#', false)

		// "#existing.txt" is a deletion mark, not a target name.
		err := v.Validate(makeList(t, "a"), makeList(t, "#existing.txt"))
		assert.NoError(t, err)
	})

	t.Run("custom marker character", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockFS := mock.NewMockFileSystem(ctrl)
		v := NewValidatorService(mockFS, '!', false)

		err := v.Validate(makeList(t, "a", "b"), makeList(t, "!", "!gone"))
		assert.NoError(t, err)
	})
}
