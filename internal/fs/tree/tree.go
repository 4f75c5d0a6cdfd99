package tree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

type Descriptor string

type Exception error

var (
	ExceptionNotExist     Exception = errors.New("does not exist")
	ExceptionNotDirectory Exception = errors.New("is not a directory")
)

const (
	File      Descriptor = "FILE"
	Directory Descriptor = "DIRECTORY"
	Symbolic  Descriptor = "SYMBOLIC"
	Special   Descriptor = "SPECIAL"
	Unknown   Descriptor = "UNKNOWN"
)

// PreconditionError reports a root path that cannot be rendered at all.
type PreconditionError struct {
	Path string
	Err  error
}

func (e *PreconditionError) Error() string {
	switch {
	case errors.Is(e.Err, ExceptionNotExist), errors.Is(e.Err, ExceptionNotDirectory):
		return fmt.Sprintf("Path '%s' %s", e.Path, e.Err.Error())
	default:
		return fmt.Sprintf("Path '%s' cannot be accessed: %s", e.Path, e.Err.Error())
	}
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Validate checks that path exists and is a directory.
func Validate(path string) error {
	descriptor, e := os.Stat(path)
	if e != nil {
		if errors.Is(e, fs.ErrNotExist) {
			return &PreconditionError{Path: path, Err: ExceptionNotExist}
		}

		return &PreconditionError{Path: path, Err: e}
	}

	if !(descriptor.IsDir()) {
		return &PreconditionError{Path: path, Err: ExceptionNotDirectory}
	}

	return nil
}

// Entry is a single item of a directory listing.
type Entry struct {
	Name string
	Path string
	Type Descriptor
}

func (e Entry) IsDirectory() bool {
	return e.Type == Directory
}

func (e Entry) IsFile() bool {
	return e.Type == File
}

type Option func(*Renderer)

// WithFiles includes regular files in the output.
func WithFiles(show bool) Option {
	return func(r *Renderer) {
		r.showFiles = show
	}
}

func WithStyle(style Style) Option {
	return func(r *Renderer) {
		r.style = style
	}
}

// Renderer writes a directory hierarchy as a tree diagram.
type Renderer struct {
	out    io.Writer
	logger *log.Logger

	style     Style
	showFiles bool
}

// New returns a Renderer printing the tree to out and diagnostics to errs.
func New(out, errs io.Writer, options ...Option) *Renderer {
	r := &Renderer{
		out:    out,
		logger: log.New(errs, "", 0),
		style:  DefaultStyle(),
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// RenderRoot prints path as given followed by its contents.
//
//   - The caller is expected to have checked path with Validate.
//   - Unreadable subdirectories are reported and skipped.
func (r *Renderer) RenderRoot(path string) {
	fmt.Fprintln(r.out, display(path))

	r.render(path, "")
}

func (r *Renderer) render(directory string, prefix string) {
	entries, e := r.list(directory)
	if e != nil {
		r.logger.Printf("Error reading directory %s: %s", display(directory), e.Error())
		return
	}

	slices.SortFunc(entries, compare)

	visible := r.filter(entries)
	total := len(visible)

	for i, entry := range visible {
		last := i == total-1

		branch := r.style.Branch
		if last {
			branch = r.style.LastBranch
		}

		fmt.Fprintf(r.out, "%s%s%s\n", prefix, branch, display(entry.Name))

		if entry.IsDirectory() {
			indent := r.style.Indent
			if last {
				indent = r.style.LastIndent
			}

			r.render(entry.Path, prefix+indent)
		}
	}
}

// list reads the immediate children of directory.
func (r *Renderer) list(directory string) ([]Entry, error) {
	listing, e := os.ReadDir(directory)
	if e != nil {
		return nil, e
	}

	entries := make([]Entry, 0, len(listing))
	for _, item := range listing {
		path := filepath.Join(directory, item.Name())

		descriptor, e := classify(item)
		if e != nil {
			r.logger.Printf("Error reading entry %s: %s", display(path), e.Error())
		}

		entries = append(entries, Entry{
			Name: item.Name(),
			Path: path,
			Type: descriptor,
		})
	}

	return entries, nil
}

func (r *Renderer) filter(entries []Entry) []Entry {
	var partials = make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDirectory() || (r.showFiles && entry.IsFile()) {
			partials = append(partials, entry)
		}
	}

	return partials
}

// classify resolves an entry's type without following symbolic links.
func classify(entry fs.DirEntry) (Descriptor, error) {
	mode := entry.Type()
	if mode&fs.ModeIrregular != 0 {
		info, e := entry.Info()
		if e != nil {
			return Unknown, e
		}

		mode = info.Mode().Type()
	}

	switch {
	case mode&fs.ModeSymlink != 0:
		return Symbolic, nil
	case mode.IsDir():
		return Directory, nil
	case mode.IsRegular():
		return File, nil
	default:
		return Special, nil
	}
}

// compare orders directories first, then names byte-wise.
func compare(a, b Entry) int {
	if a.IsDirectory() != b.IsDirectory() {
		if a.IsDirectory() {
			return -1
		}

		return 1
	}

	return strings.Compare(a.Name, b.Name)
}

func display(name string) string {
	return strings.ToValidUTF8(name, "\uFFFD")
}
