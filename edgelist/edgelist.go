package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/socmetrics/core"
)

// commentPrefix marks lines the loader skips.
const commentPrefix = "#"

// gzipSuffix triggers transparent decompression in Open.
const gzipSuffix = ".gz"

// ErrBadRecord is returned when a non-comment line does not hold two
// parseable integer node ids.
var ErrBadRecord = errors.New("edgelist: malformed record")

// Read parses an edge list from r into a fresh core.Graph.
// Complexity: O(lines) time, O(V+E) space.
func Read(r io.Reader) (*core.Graph, error) {
	g := core.New()
	scanner := bufio.NewScanner(r)
	// lines in the wild occasionally exceed the default 64 KiB token cap
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadRecord, lineNo, line)
		}
		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, lineNo, err)
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, lineNo, err)
		}

		if err = g.AddEdge(g.Ensure(u), g.Ensure(v)); err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return g, nil
}

// Open loads the edge list at path, decoding gzip transparently when the
// name ends in ".gz".
func Open(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, gzipSuffix) {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("edgelist: gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	return Read(r)
}
