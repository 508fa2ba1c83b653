package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tristan-harris/cbr/internal/domain"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := New(DefaultDelChar, "", false, false, false, false, nil)
		require.NoError(t, err)
		assert.Equal(t, byte('#'), cfg.DelChar)
		assert.False(t, cfg.Force)
		assert.False(t, cfg.Trash)
	})

	t.Run("custom marker", func(t *testing.T) {
		cfg, err := New("!", "vim", true, true, true, false, []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, byte('!'), cfg.DelChar)
		assert.Equal(t, "vim", cfg.Editor)
		assert.Equal(t, []string{"a", "b"}, cfg.Files)
	})

	t.Run("multi-character marker rejected", func(t *testing.T) {
		_, err := New("##", "", false, false, false, false, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("empty marker rejected", func(t *testing.T) {
		_, err := New("", "", false, false, false, false, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("path separator rejected", func(t *testing.T) {
		_, err := New("/", "", false, false, false, false, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("control character rejected", func(t *testing.T) {
		_, err := New("\t", "", false, false, false, false, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}
