package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Drift describes a generated file that differs from the one on disk.
type Drift struct {
	Path    string
	Missing bool
	// Diff lists changed lines, "-" for disk and "+" for generated.
	Diff string
}

// String returns a printable report.
func (d Drift) String() string {
	if d.Missing {
		return d.Path + ": missing, run the generator"
	}

	return d.Path + ": out of date\n" + d.Diff
}

// Check compares the generated file with its version in dir.
// It returns nil when they are identical.
func Check(file *GeneratedFile, dir string) (*Drift, error) {
	path := filepath.Join(dir, file.Filename)

	onDisk, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Drift{Path: path, Missing: true}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if bytes.Equal(onDisk, file.Content) {
		return nil, nil
	}

	return &Drift{Path: path, Diff: LineDiff(string(onDisk), string(file.Content))}, nil
}

// LineDiff renders a line based diff of two texts. Unchanged runs are
// collapsed to a single "..." line.
func LineDiff(old, updated string) string {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(old, updated)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for _, d := range diffs {
		var prefix string

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			sb.WriteString(" ...\n")
			continue
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
