package journal

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Journal {
	j := New()
	j.AddEntry("I cried today")
	j.AddEntry("I ate a bug")
	return j
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	p := NewPersistence(WithLogger(zerolog.New(zerolog.NewTestWriter(t))))

	require.NoError(t, p.Save(context.Background(), sample(), path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# count: 2\n1: I cried today\n2: I ate a bug", string(data))
}

func TestSaveSkipsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o600))

	launched := 0
	p := NewPersistence(WithLauncher(LauncherFunc(func(context.Context, string) error {
		launched++
		return nil
	})))
	require.NoError(t, p.Save(context.Background(), sample(), path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
	assert.Zero(t, launched)
}

func TestSaveOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	require.NoError(t, os.WriteFile(path, []byte("an older and much longer journal"), 0o600))

	p := NewPersistence()
	require.NoError(t, p.Save(context.Background(), sample(), path, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# count: 2\n1: I cried today\n2: I ate a bug", string(data))
}

func TestSaveIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "journal.txt")
	for _, overwrite := range []bool{false, true} {
		err := NewPersistence().Save(context.Background(), sample(), path, overwrite)
		var e Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, IO, e.Code)
		assert.Equal(t, path, e.Path)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	}
}

func TestSaveLaunches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	var opened []string
	p := NewPersistence(WithLauncher(LauncherFunc(func(_ context.Context, name string) error {
		opened = append(opened, name)
		return nil
	})))
	require.NoError(t, p.Save(context.Background(), sample(), path, false))
	assert.Equal(t, []string{path}, opened)

	boom := errors.New("no opener")
	p = NewPersistence(WithLauncher(LauncherFunc(func(context.Context, string) error { return boom })))
	err := p.Save(context.Background(), sample(), path, true)
	var e Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, Launch, e.Code)
	assert.ErrorIs(t, err, boom)
}

func TestFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	require.NoError(t, NewPersistence(WithFileMode(0o600)).Save(context.Background(), sample(), path, false))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	p := NewPersistence()

	j := sample()
	j.AddEntry("first line\nsecond line")
	require.NoError(t, j.RemoveEntry(0))
	require.NoError(t, p.Save(context.Background(), j, path, false))

	loaded, err := p.Load(path)
	require.NoError(t, err)
	assert.Equal(t, j.Entries(), loaded.Entries())
	assert.Equal(t, 3, loaded.Count())
	assert.Equal(t, 4, loaded.AddEntry("next"))
}

func TestLoadKeepsCountAfterRemovingLastEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	p := NewPersistence()

	j := New()
	j.AddEntry("a")
	j.AddEntry("b")
	j.AddEntry("c")
	require.NoError(t, j.RemoveEntry(2))
	require.NoError(t, p.Save(context.Background(), j, path, false))

	loaded, err := p.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1: a", "2: b"}, loaded.Entries())
	assert.Equal(t, 3, loaded.Count())
	assert.Equal(t, j.AddEntry("d"), loaded.AddEntry("d"))
	assert.Equal(t, j.Entries(), loaded.Entries())
}

func TestLoadNumberedContinuationLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	p := NewPersistence()

	j := New()
	j.AddEntry("shopping list\n7: eggs\n\tindented")
	require.NoError(t, p.Save(context.Background(), j, path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# count: 1\n1: shopping list\n\t7: eggs\n\t\tindented", string(data))

	loaded, err := p.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1: shopping list\n7: eggs\n\tindented"}, loaded.Entries())
	assert.Equal(t, 1, loaded.Count())
	assert.Equal(t, 2, loaded.AddEntry("milk"))
}

type brokenFile struct {
	io.WriteCloser
}

func (f brokenFile) Write(p []byte) (int, error) {
	n, _ := f.WriteCloser.Write(p[:len(p)/2])
	return n, errors.New("disk full")
}

func TestSaveRemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	p := NewPersistence()
	open := p.openFile
	p.openFile = func(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
		f, err := open(name, flag, perm)
		if err != nil {
			return nil, err
		}
		return brokenFile{WriteCloser: f}, nil
	}

	err := p.Save(context.Background(), sample(), path, false)
	var e Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, IO, e.Code)
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// a later save is not mistaken for an existing journal
	p.openFile = open
	require.NoError(t, p.Save(context.Background(), sample(), path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# count: 2\n1: I cried today\n2: I ate a bug", string(data))
}

func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	p := NewPersistence()
	require.NoError(t, p.Save(context.Background(), New(), path, false))

	loaded, err := p.Load(path)
	require.NoError(t, err)
	assert.Zero(t, loaded.Len())
	assert.Equal(t, 1, loaded.AddEntry("hello"))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	p := NewPersistence()

	_, err := p.Load(filepath.Join(dir, "nope.txt"))
	var e Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, IO, e.Code)

	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("no number here\n1: ok"), 0o600))
	_, err = p.Load(path)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, Parse, e.Code)
	assert.Contains(t, err.Error(), "parse line 1")

	require.NoError(t, os.WriteFile(path, []byte("# count: many\n1: ok"), 0o600))
	_, err = p.Load(path)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, Parse, e.Code)

	require.NoError(t, os.WriteFile(path, []byte("# count: 1\n\tdangling"), 0o600))
	_, err = p.Load(path)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, Parse, e.Code)
	assert.Contains(t, err.Error(), "parse line 2")
}

func TestOpenCommand(t *testing.T) {
	name, args := openCommand("linux", "/tmp/j.txt")
	assert.Equal(t, "xdg-open", name)
	assert.Equal(t, []string{"/tmp/j.txt"}, args)

	name, args = openCommand("darwin", "/tmp/j.txt")
	assert.Equal(t, "open", name)
	assert.Equal(t, []string{"/tmp/j.txt"}, args)

	name, args = openCommand("windows", `C:\j.txt`)
	assert.Equal(t, "cmd", name)
	assert.Equal(t, []string{"/c", "start", "", `C:\j.txt`}, args)
}
