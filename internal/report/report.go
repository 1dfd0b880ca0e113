// Package report prints filter results for humans.
package report

import (
	"fmt"
	"io"
	"iter"
)

// Print writes title followed by one " - <describe(item)>" line per item.
// items is ranged over exactly once. It returns the number of items printed.
func Print[T any](w io.Writer, title string, items iter.Seq[T], describe func(T) string) (int, error) {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return 0, err
	}
	n := 0
	var err error
	items(func(item T) bool {
		if _, err = fmt.Fprintf(w, " - %s\n", describe(item)); err != nil {
			return false
		}
		n++
		return true
	})
	return n, err
}
