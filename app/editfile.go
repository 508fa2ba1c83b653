package app

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/tristan-harris/cbr/internal/domain"
	"github.com/tristan-harris/cbr/internal/port"
)

// The edit-list protocol: one filename per line, written in sorted order.
// After editing, line i (newline-stripped) is the target for original
// entry i in the same order. A line whose first character is the deletion
// marker designates the entry for deletion or trashing regardless of the
// rest of the line. Targets are taken literally; no path normalization.

func writeNameFile(fs port.FileSystem, path string, names *domain.NameList) error {
	var b strings.Builder
	for _, name := range names.Names() {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	if err := fs.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("could not write edit list: %w", err)
	}
	return nil
}

func readNameFile(fs port.FileSystem, path string) (*domain.NameList, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read edit list: %w", err)
	}

	list := domain.NewNameList()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := list.Add(scanner.Text()); err != nil {
			return nil, fmt.Errorf("edit list line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read edit list: %w", err)
	}
	return list, nil
}
