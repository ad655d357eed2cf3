package maneuver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// tokenScanner reads whitespace-separated tokens from the instance file.
// The grammar is fixed and mechanical (see spec §6); no third-party parser
// in the example corpus targets this ad hoc whitespace-token format, so a
// bufio.Scanner in word-split mode is the idiomatic, dependency-free choice
// here.
type tokenScanner struct {
	scanner *bufio.Scanner
	err     error
}

func newTokenScanner(r io.Reader) *tokenScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	s.Split(bufio.ScanWords)
	return &tokenScanner{scanner: s}
}

func (ts *tokenScanner) next() string {
	if ts.err != nil {
		return ""
	}
	if !ts.scanner.Scan() {
		ts.err = ts.scanner.Err()
		if ts.err == nil {
			ts.err = io.ErrUnexpectedEOF
		}
		return ""
	}
	return ts.scanner.Text()
}

func (ts *tokenScanner) nextInt() int {
	v, err := strconv.Atoi(ts.next())
	if err != nil && ts.err == nil {
		ts.err = err
	}
	return v
}

func (ts *tokenScanner) nextFloat() float64 {
	v, err := strconv.ParseFloat(ts.next(), 64)
	if err != nil && ts.err == nil {
		ts.err = err
	}
	return v
}

// Load parses an instance from r using the grammar pinned in spec §6:
//
//	header:      n  m  density-token
//	switches:    id  tech  p_i                (n records)
//	precedence:  id  nprec  pred_1 .. pred_k  (n records)
//	travel:      s[i][j][l] for l=1..m, i=0..n, j=0..n
func Load(r io.Reader) (*Problem, error) {
	ts := newTokenScanner(r)

	n := ts.nextInt()
	m := ts.nextInt()
	ts.next() // density token, parsed and ignored

	technology := make([]Technology, n+1)
	p := make([]float64, n+1)

	for i := 1; i <= n; i++ {
		ts.next() // advisory switch ID, ignored; position determines the index
		technology[i] = ParseTechnology(ts.next())
		p[i] = ts.nextFloat()
	}

	predecessors := make([][]int, n+1)
	for j := 1; j <= n; j++ {
		ts.next() // advisory switch ID, ignored
		nprec := ts.nextInt()
		preds := make([]int, 0, nprec)
		for c := 0; c < nprec; c++ {
			preds = append(preds, ts.nextInt())
		}
		predecessors[j] = preds
	}

	s := make([][][]float64, n+1)
	for i := range s {
		s[i] = make([][]float64, n+1)
		for j := range s[i] {
			s[i][j] = make([]float64, m+1)
		}
	}
	for l := 1; l <= m; l++ {
		for i := 0; i <= n; i++ {
			for j := 0; j <= n; j++ {
				s[i][j][l] = ts.nextFloat()
			}
		}
	}

	if ts.err != nil {
		return nil, fmt.Errorf("maneuver: malformed instance file: %w", ts.err)
	}

	return NewProblem(n, m, technology, p, s, predecessors)
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maneuver: cannot open instance file: %w", err)
	}
	defer f.Close()
	return Load(f)
}
