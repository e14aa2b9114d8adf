package dataset

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source feeds raw connection record lines to a scan.
type Source interface {
	// Scan calls fn for every record line in order.
	// It returns the first error from fn, a read failure, or the
	// context cancellation, so a corrupt source fails the whole scan.
	Scan(ctx context.Context, fn func(line string) error) error
}

// FileSource reads records from a comma-separated text file,
// transparently decompressing gzip input.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Scan streams the file contents line by line.
func (s *FileSource) Scan(ctx context.Context, fn func(line string) error) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("could not open source: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	if strings.HasSuffix(s.path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("could not open gzip source: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read source %s: %w", s.path, err)
	}

	return nil
}

// SliceSource serves an in-memory set of lines. It is mostly useful in tests.
type SliceSource struct {
	lines []string
}

// NewSliceSource creates a source over the given lines.
func NewSliceSource(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

// Scan feeds the in-memory lines.
func (s *SliceSource) Scan(ctx context.Context, fn func(line string) error) error {
	for _, line := range s.lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}
