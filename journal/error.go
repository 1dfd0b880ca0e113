package journal

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange RemoveEntry index does not address an entry
var ErrIndexOutOfRange = errors.New("journal: index out of range")

type Code int

const (
	// IO the journal file could not be read or written
	IO Code = 1
	// Parse the journal file is not made of "<n>: <text>" lines
	Parse Code = 2
	// Launch the saved file could not be opened
	Launch Code = 3
)

func (c Code) String() string {
	switch c {
	case IO:
		return "io"
	case Parse:
		return "parse"
	case Launch:
		return "launch"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

type Error struct {
	Code Code
	Op   string
	Path string
	err  error
}

func (e Error) Error() string {
	if e.err == nil {
		return fmt.Sprintf("journal: %s error, %s %s", e.Code, e.Op, e.Path)
	}
	return fmt.Sprintf("journal: %s error, %s %s, %v", e.Code, e.Op, e.Path, e.err)
}

func (e Error) Unwrap() error {
	return e.err
}

func newIOError(op string, path string, err error) error {
	return Error{Code: IO, Op: op, Path: path, err: err}
}

func newParseError(path string, line int, err error) error {
	return Error{Code: Parse, Op: fmt.Sprintf("parse line %d", line), Path: path, err: err}
}

func newLaunchError(path string, err error) error {
	return Error{Code: Launch, Op: "launch", Path: path, err: err}
}
