package domain

import (
	"fmt"
	"slices"
)

// NameList is an ordered, append-only sequence of filenames. Insertion
// order is the alignment key between the original listing and the edited
// listing, so it is never reordered implicitly. A byte-lexicographically
// sorted copy is maintained lazily for membership lookups only.
type NameList struct {
	names  []string
	sorted []string // lookup view; nil when stale
}

// NewNameList creates an empty NameList.
func NewNameList() *NameList {
	return &NameList{}
}

// Add appends name, preserving insertion order. Empty names are rejected.
func (l *NameList) Add(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty filename", ErrInputNaming)
	}
	l.names = append(l.names, name)
	l.sorted = nil
	return nil
}

// Len returns the number of entries.
func (l *NameList) Len() int {
	return len(l.names)
}

// At returns the entry at position i in insertion order.
func (l *NameList) At(i int) string {
	return l.names[i]
}

// Names returns the entries in insertion order. The returned slice is the
// list's backing storage and must not be mutated.
func (l *NameList) Names() []string {
	return l.names
}

// SortedView returns a byte-lexicographically sorted copy of the entries.
// It is valid for lookups only; positions carry no correspondence to the
// insertion order.
func (l *NameList) SortedView() []string {
	if l.sorted == nil {
		l.sorted = slices.Clone(l.names)
		slices.Sort(l.sorted)
	}
	return l.sorted
}

// Contains reports whether name is present, using a binary search against
// the sorted view. The view is rebuilt if the list mutated after sorting.
func (l *NameList) Contains(name string) bool {
	_, found := slices.BinarySearch(l.SortedView(), name)
	return found
}

// SortInPlace sorts the primary order byte-lexicographically. It is used
// once on the original listing before it is written out for editing, so
// that the edited lines align with a stable, predictable order.
func (l *NameList) SortInPlace() {
	slices.Sort(l.names)
	l.sorted = nil
}
