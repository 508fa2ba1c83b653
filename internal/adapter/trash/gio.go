// Package trash moves files to the system trash by delegating to the gio
// utility (part of GLib). The executor hands over pre-chunked batches; one
// gio invocation runs per chunk.
package trash

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/tristan-harris/cbr/internal/domain"
)

const gioBinary = "gio"

// GioTrasher implements port.Trasher on top of `gio trash`.
type GioTrasher struct{}

func NewGioTrasher() *GioTrasher {
	return &GioTrasher{}
}

// Available reports whether gio is on PATH. Trash mode is refused up front
// when it is not, before any other work happens.
func (t *GioTrasher) Available() bool {
	_, err := exec.LookPath(gioBinary)
	return err == nil
}

// Trash moves the named files to the trash in a single gio invocation.
func (t *GioTrasher) Trash(ctx context.Context, names []string) error {
	args := append([]string{"trash"}, names...)
	cmd := exec.CommandContext(ctx, gioBinary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: gio trash: %v: %s", domain.ErrExternalProcess, err, output)
	}
	return nil
}
