package report

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	n, err := Print(&buf, "Large items:", slices.Values([]string{"Tree", "House"}), func(s string) string {
		return s + " is large"
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Large items:\n - Tree is large\n - House is large\n", buf.String())
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	n, err := Print(&buf, "Nothing:", slices.Values([]int(nil)), func(int) string { return "" })
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "Nothing:\n", buf.String())
}

func TestPrintSinglePass(t *testing.T) {
	passes := 0
	seq := func(yield func(int) bool) {
		passes++
		for _, v := range []int{1, 2, 3} {
			if !yield(v) {
				return
			}
		}
	}
	var buf bytes.Buffer
	_, err := Print(&buf, "Numbers:", seq, func(int) string { return "n" })
	require.NoError(t, err)
	assert.Equal(t, 1, passes)
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("closed")
	}
	w.after--
	return len(p), nil
}

func TestPrintWriteError(t *testing.T) {
	n, err := Print(&failingWriter{after: 2}, "Items:", slices.Values([]int{1, 2, 3}), func(int) string { return "x" })
	assert.EqualError(t, err, "closed")
	assert.Equal(t, 1, n)

	_, err = Print(&failingWriter{}, "Items:", slices.Values([]int{1}), func(int) string { return "x" })
	assert.Error(t, err)
}
