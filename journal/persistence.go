package journal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

const (
	// countHeader starts the first line of a journal file and carries the last issued entry number.
	countHeader = "# count: "
	// continuation prefixes every line of an entry after its first one.
	continuation = "\t"
)

// Persistence saves journals to and loads them from text files.
//
// A file starts with a "# count: <n>" line followed by one entry per line.
// Entries spanning several lines continue on lines prefixed with a tab.
type Persistence struct {
	options  *options
	openFile func(name string, flag int, perm os.FileMode) (io.WriteCloser, error)
}

func NewPersistence(opts ...Option) *Persistence {
	return &Persistence{
		options: newOptions(opts...),
		openFile: func(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
			return os.OpenFile(name, flag, perm)
		},
	}
}

// Save writes j to filename.
// If filename exists and overwrite is false, Save does nothing and returns nil.
func (p *Persistence) Save(ctx context.Context, j *Journal, filename string, overwrite bool) error {
	logger := p.options.Logger.With().Str("path", filename).Logger()

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := p.openFile(filename, flag, p.options.FileMode)
	if err != nil {
		if !overwrite && errors.Is(err, fs.ErrExist) {
			logger.Debug().Msg("journal file exists, save skipped")
			return nil
		}
		return newIOError("open", filename, err)
	}
	_, err = io.WriteString(f, encode(j))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if !overwrite {
			// the file was created by this call, a partial one would block the next save
			_ = os.Remove(filename)
		}
		return newIOError("write", filename, err)
	}
	logger.Info().Int("entries", j.Len()).Bool("overwrite", overwrite).Msg("journal saved")

	if p.options.Launcher == nil {
		return nil
	}
	if err := p.options.Launcher.Launch(ctx, filename); err != nil {
		return newLaunchError(filename, err)
	}
	return nil
}

// Load reads a journal written by Save. The loaded journal continues
// numbering after the count recorded in the file.
func (p *Persistence) Load(filename string) (*Journal, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, newIOError("read", filename, err)
	}
	j := New()
	if len(data) == 0 {
		return j, nil
	}
	for i, line := range strings.Split(string(data), "\n") {
		if i == 0 && strings.HasPrefix(line, countHeader) {
			count, err := strconv.Atoi(strings.TrimPrefix(line, countHeader))
			if err != nil || count < 0 {
				return nil, newParseError(filename, i+1, fmt.Errorf("invalid count in %q", line))
			}
			j.count = count
			continue
		}
		if strings.HasPrefix(line, continuation) {
			if len(j.entries) == 0 {
				return nil, newParseError(filename, i+1, fmt.Errorf("continuation without entry in %q", line))
			}
			j.entries[len(j.entries)-1] += "\n" + strings.TrimPrefix(line, continuation)
			continue
		}
		n, ok := parseNumber(line)
		if !ok {
			return nil, newParseError(filename, i+1, fmt.Errorf("missing entry number in %q", line))
		}
		j.entries = append(j.entries, line)
		j.count = max(j.count, n)
	}
	p.options.Logger.Debug().Str("path", filename).Int("entries", j.Len()).Msg("journal loaded")
	return j, nil
}

func encode(j *Journal) string {
	var b strings.Builder
	b.WriteString(countHeader)
	b.WriteString(strconv.Itoa(j.count))
	for _, entry := range j.entries {
		b.WriteByte('\n')
		b.WriteString(strings.ReplaceAll(entry, "\n", "\n"+continuation))
	}
	return b.String()
}

func parseNumber(line string) (int, bool) {
	prefix, _, found := strings.Cut(line, ": ")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(prefix)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
