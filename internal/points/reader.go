package points

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Read parses whitespace-separated x y pairs until end of input and returns
// the first count samples.
func Read(r io.Reader, count int) (*PointSet, error) {
	if count <= 0 {
		return nil, fmt.Errorf("point count must be positive, got %d", count)
	}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	values := make([]float64, 0, 2*count)
	for scanner.Scan() && len(values) < 2*count {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed point value %q: %w", scanner.Text(), err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read points: %w", err)
	}
	if len(values) < 2*count {
		return nil, fmt.Errorf("input holds %d values, need %d for %d points", len(values), 2*count, count)
	}

	xs := make([]float64, count)
	ys := make([]float64, count)
	for i := 0; i < count; i++ {
		xs[i] = values[2*i]
		ys[i] = values[2*i+1]
	}
	return New(xs, ys)
}

// ReadFile reads count samples from a whitespace-separated point file.
func ReadFile(path string, count int) (*PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open point file %s: %w", path, err)
	}
	defer f.Close()

	ps, err := Read(f, count)
	if err != nil {
		return nil, fmt.Errorf("failed to parse point file %s: %w", path, err)
	}
	return ps, nil
}

// WriteFile writes a point set as whitespace-separated x y pairs, one pair
// per line, in the format Read consumes.
func WriteFile(path string, ps *PointSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create point file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < ps.Len(); i++ {
		if _, err := fmt.Fprintf(w, "%g %g\n", ps.X(i), ps.Y(i)); err != nil {
			return fmt.Errorf("failed to write point file %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write point file %s: %w", path, err)
	}
	return nil
}
