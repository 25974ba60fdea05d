// Package gridio reads and writes boards as whitespace-separated integer
// text, one row per line. Lines that are blank or start with '#' are
// skipped, so saved boards can carry comments.
//
// Parsing preserves row lengths as found; rectangularity is the grid
// package's concern and ragged input surfaces there as grid.ErrRagged.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// Parse reads a board from r. It fails on the first token that is not an
// integer, reporting the 1-based line number.
func Parse(r io.Reader) ([][]int, error) {
	var values [][]int

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("gridio: line %d: bad cell %q: %w", lineNo, f, err)
			}
			row[i] = v
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read board: %w", err)
	}
	return values, nil
}

// Load reads a board from the file at path.
func Load(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: open %s: %w", path, err)
	}
	defer f.Close()

	values, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("gridio: %s: %w", path, err)
	}
	return values, nil
}

// Write serializes a board to w in the same format Parse accepts.
func Write(w io.Writer, values [][]int) error {
	bw := bufio.NewWriter(w)
	for _, row := range values {
		for i, v := range row {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("gridio: write board: %w", err)
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
				return fmt.Errorf("gridio: write board: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("gridio: write board: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gridio: write board: %w", err)
	}
	return nil
}

// Save writes a board to the file at path, creating or truncating it.
func Save(path string, values [][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio: create %s: %w", path, err)
	}
	if err := Write(f, values); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("gridio: close %s: %w", path, err)
	}
	return nil
}

// Random builds a rows x cols board where each cell is a seed with the
// given probability. Seed values are uniform in 1..3, matching the demo
// boards. Density is clamped to [0, 1].
func Random(rng *rand.Rand, rows, cols int, density float64) [][]int {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}

	values := make([][]int, rows)
	for r := range values {
		row := make([]int, cols)
		for c := range row {
			if rng.Float64() < density {
				row[c] = 1 + rng.Intn(3)
			}
		}
		values[r] = row
	}
	return values
}
