package points

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/polyfit/approximation-core/pkg/utils"
)

func TestNewPointSet(t *testing.T) {
	ps, err := New([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ps.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", ps.Len())
	}
	if ps.X(1) != 2 || ps.Y(1) != 5 {
		t.Errorf("unexpected sample: (%f, %f)", ps.X(1), ps.Y(1))
	}
}

func TestNewPointSetRejectsBadInput(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Error("expected error for empty set")
	}
	if _, err := New([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestNewPointSetCopiesInput(t *testing.T) {
	xs := []float64{1, 2}
	ys := []float64{3, 4}
	ps, err := New(xs, ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	xs[0] = 99
	if ps.X(0) != 1 {
		t.Error("point set must not alias caller slices")
	}
}

func TestRead(t *testing.T) {
	input := "0.5 1.5\n-1 2.25\n3 4\n"
	ps, err := Read(strings.NewReader(input), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ps.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", ps.Len())
	}
	if ps.X(1) != -1 || ps.Y(1) != 2.25 {
		t.Errorf("unexpected sample: (%f, %f)", ps.X(1), ps.Y(1))
	}
}

func TestReadStopsAtCount(t *testing.T) {
	input := "1 2 3 4 5 6"
	ps, err := Read(strings.NewReader(input), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ps.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", ps.Len())
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read(strings.NewReader("1 2"), 2); err == nil {
		t.Error("expected error for too few values")
	}
	if _, err := Read(strings.NewReader("1 abc"), 1); err == nil {
		t.Error("expected error for malformed value")
	}
	if _, err := Read(strings.NewReader("1 2"), 0); err == nil {
		t.Error("expected error for zero count")
	}
}

func TestWriteFileReadFileRoundTrip(t *testing.T) {
	original, err := New([]float64{0.25, -1.5}, []float64{3, 4.125})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "points.txt")
	if err := WriteFile(path, original); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	loaded, err := ReadFile(path, original.Len())
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	for i := 0; i < original.Len(); i++ {
		if loaded.X(i) != original.X(i) || loaded.Y(i) != original.Y(i) {
			t.Errorf("sample %d changed in round trip: (%f, %f) vs (%f, %f)",
				i, loaded.X(i), loaded.Y(i), original.X(i), original.Y(i))
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("/nonexistent/points.txt", 10); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGenerateNoiseFree(t *testing.T) {
	coeffs := []float64{1, 2, 3, 4}
	rng := utils.NewRandSource(7)

	ps, err := Generate(coeffs, 50, -2, 2, 0, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ps.Len() != 50 {
		t.Fatalf("expected 50 samples, got %d", ps.Len())
	}

	for i := 0; i < ps.Len(); i++ {
		x := ps.X(i)
		if x < -2 || x >= 2 {
			t.Errorf("x outside range: %f", x)
		}
		want := utils.EvalPolynomial(coeffs, x)
		if math.Abs(ps.Y(i)-want) > 1e-12 {
			t.Errorf("noise-free sample %d should lie on the polynomial", i)
		}
	}
}

func TestGenerateWithNoise(t *testing.T) {
	coeffs := []float64{0, 1}
	rng := utils.NewRandSource(7)

	ps, err := Generate(coeffs, 200, -1, 1, 0.5, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	offPolynomial := 0
	for i := 0; i < ps.Len(); i++ {
		if math.Abs(ps.Y(i)-ps.X(i)) > 1e-12 {
			offPolynomial++
		}
	}
	if offPolynomial == 0 {
		t.Error("noisy samples should not all lie on the polynomial")
	}
}

func TestGenerateErrors(t *testing.T) {
	rng := utils.NewRandSource(7)

	if _, err := Generate(nil, 10, -1, 1, 0, rng); err == nil {
		t.Error("expected error for no coefficients")
	}
	if _, err := Generate([]float64{1}, 0, -1, 1, 0, rng); err == nil {
		t.Error("expected error for zero count")
	}
	if _, err := Generate([]float64{1}, 10, 1, -1, 0, rng); err == nil {
		t.Error("expected error for inverted x range")
	}
	if _, err := Generate([]float64{1}, 10, -1, 1, -0.5, rng); err == nil {
		t.Error("expected error for negative noise")
	}
}
