package journal

import (
	"fmt"
	"strings"

	"github.com/go-leo/gox/slicex"
)

// Journal is an ordered list of numbered text entries.
// Entry numbers are issued by the journal itself, starting at 1, and are never reused.
type Journal struct {
	entries []string
	count   int
}

func New() *Journal {
	return &Journal{}
}

// AddEntry appends text as "<n>: <text>" and returns n.
func (j *Journal) AddEntry(text string) int {
	j.count++
	j.entries = append(j.entries, fmt.Sprintf("%d: %s", j.count, text))
	return j.count
}

// RemoveEntry removes the entry at the current positional index.
// Numbers of the remaining entries are left unchanged.
func (j *Journal) RemoveEntry(index int) error {
	if index < 0 || index >= len(j.entries) {
		return fmt.Errorf("%w: %d, journal has %d entries", ErrIndexOutOfRange, index, len(j.entries))
	}
	j.entries = slicex.DeleteAll(j.entries, index)
	return nil
}

// Entries returns a copy of the entries in order.
func (j *Journal) Entries() []string {
	return append([]string(nil), j.entries...)
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// Count returns the last number issued by AddEntry.
func (j *Journal) Count() int {
	return j.count
}

func (j *Journal) String() string {
	return strings.Join(j.entries, "\n")
}
