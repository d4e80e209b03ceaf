package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdinName is the path that makes NewSourceFetcher read standard input.
const StdinName = "-"

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrNilReader is returned by NewReaderFetcher for a nil reader.
var ErrNilReader = errors.New("nil reader")

// Fetcher implements config.DataFetcher over a file or stream read once at
// construction.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor that reads fpath. Returning the
// constructor lets an fx container decide when the file is read.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			path: cleanPath,
			data: data,
		}, nil
	}
}

// NewReaderFetcher reads r to the end. name is reported by Path.
func NewReaderFetcher(name string, r io.Reader) (*Fetcher, error) {
	if r == nil {
		return nil, fmt.Errorf("source %q: %w", name, ErrNilReader)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return &Fetcher{
		path: name,
		data: data,
	}, nil
}

// NewSourceFetcher reads standard input when fpath is StdinName and the
// file otherwise.
func NewSourceFetcher(fpath string, stdin io.Reader) (*Fetcher, error) {
	if fpath == StdinName {
		return NewReaderFetcher("<stdin>", stdin)
	}

	return NewFetcher(fpath)()
}

// Path returns the cleaned file path or the name given to NewReaderFetcher.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the bytes read at construction.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
