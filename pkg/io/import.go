package io

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/graph"
)

// maxLineSize bounds a single GFA line. Segment lines of assembled
// chromosomes run to hundreds of megabases.
const maxLineSize = 1 << 30

// ReadGFA parses GFA text from r into a new graph configured by opts.
//
// Lines are streamed; the whole input is never held as one string. Blank
// lines are skipped and a trailing carriage return is dropped from each
// line. Errors name the 1-based line that failed. ReadGFA does not close r.
func ReadGFA(r io.Reader, opts graph.Options) (*graph.Graph, error) {
	return read(r, "stream", opts)
}

// ImportGFA reads the GFA file at path. A path ending in ".gz" is
// decompressed on the fly. A missing file fails with FILE_NOT_FOUND.
func ImportGFA(path string, opts graph.Options) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decompress %s", path)
		}
		defer zr.Close()
		r = zr
	}

	g, err := read(r, path, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func read(r io.Reader, source string, opts graph.Options) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	g := graph.New(opts)
	err := g.Load(source, scanLines(sc))
	// A read error truncates the input, which makes any load error moot.
	if serr := sc.Err(); serr != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, serr, "read %s", source)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func scanLines(sc *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for sc.Scan() {
			if !yield(strings.TrimSuffix(sc.Text(), "\r")) {
				return
			}
		}
	}
}
