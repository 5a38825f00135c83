// Package statefile reads and writes simulation snapshots as plain text.
//
// The format is line oriented: four header lines with the physics
// parameters (dt, g, softening, theta), one line with the body count,
// then one "mass x y vx vy" line per body. All floats are written with
// 16 significant digits so a snapshot round-trips exactly.
package statefile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-gravity/internal/physics"
)

// State is a full 2D simulation snapshot.
type State struct {
	Dt        float64
	G         float64
	Softening float64
	Theta     float64
	Bodies    []physics.Body
}

// Write saves a snapshot, creating parent directories as needed.
func Write(path string, st State) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("statefile: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("statefile: cannot create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%.16e\n", st.Dt)
	fmt.Fprintf(w, "%.16e\n", st.G)
	fmt.Fprintf(w, "%.16e\n", st.Softening)
	fmt.Fprintf(w, "%.16e\n", st.Theta)
	fmt.Fprintf(w, "%d\n", len(st.Bodies))
	for _, b := range st.Bodies {
		fmt.Fprintf(w, "%.16e %.16e %.16e %.16e %.16e\n",
			b.Mass, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("statefile: cannot write %s: %w", path, err)
	}
	return nil
}

// Read loads a snapshot written by Write.
func Read(path string) (State, error) {
	var st State

	f, err := os.Open(path)
	if err != nil {
		return st, fmt.Errorf("statefile: cannot open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header := []struct {
		name string
		dst  *float64
	}{
		{"dt", &st.Dt},
		{"g", &st.G},
		{"softening", &st.Softening},
		{"theta", &st.Theta},
	}
	for _, h := range header {
		v, err := scanFloat(sc, h.name)
		if err != nil {
			return st, err
		}
		*h.dst = v
	}

	if !sc.Scan() {
		return st, fmt.Errorf("statefile: missing body count")
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return st, fmt.Errorf("statefile: invalid body count %q", sc.Text())
	}

	st.Bodies = make([]physics.Body, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return st, fmt.Errorf("statefile: expected %d bodies, got %d", n, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 5 {
			return st, fmt.Errorf("statefile: body %d: expected 5 values, got %d", i, len(fields))
		}
		vals := make([]float64, 5)
		for j, s := range fields {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return st, fmt.Errorf("statefile: body %d: invalid value %q: %w", i, s, err)
			}
			vals[j] = v
		}
		b := physics.NewBody(vals[0], vals[1], vals[2], vals[3], vals[4])
		b.ID = i
		st.Bodies = append(st.Bodies, b)
	}

	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("statefile: cannot read %s: %w", path, err)
	}
	return st, nil
}

func scanFloat(sc *bufio.Scanner, name string) (float64, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("statefile: missing %s", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("statefile: invalid %s %q: %w", name, sc.Text(), err)
	}
	return v, nil
}
