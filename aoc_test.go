package aoc

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=42`,
			want: sample{
				want: "42",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample("foo", tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestParseSampleNone(t *testing.T) {
	if got, ok := parseSample("foo", "// just a comment"); ok {
		t.Errorf("ParseSample = %v, want none", got)
	}
}

const solverSrc = `package main

/*
want=3

a
b
*/
func (s solver) D1p1() any { return nil }

// want=7
func (s solver) D1p2() any { return nil }

// helper has no sample.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(solverSrc))
	want := map[string]sample{
		"D1p1": {want: "3", input: "a\nb\n"},
		"D1p2": {want: "7", input: "a\nb\n"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractSamples = %v, want %v", got, want)
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D3p2() any { return 2 }
func (s testSolver) D3p1() any { return 1 }
func (s testSolver) D10p1() any {
	return s.Day()
}
func (s testSolver) Other() any { return nil }

func TestExtractMethods(t *testing.T) {
	slvr := &testSolver{}
	days := extractMethods(slvr)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	d3 := days[3]
	if len(d3.parts) != 2 || d3.parts[0].Part != "1" || d3.parts[1].Part != "2" {
		t.Fatalf("day 3 parts = %+v", d3.parts)
	}
	if got := d3.parts[1].fn(); got != 2 {
		t.Errorf("D3p2() = %v, want 2", got)
	}

	// Methods read the Puzzle set after extraction.
	slvr.Puzzle = &Puzzle{day: 10}
	if got := days[10].parts[0].fn(); got != 10 {
		t.Errorf("D10p1() = %v, want 10", got)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if got := Lines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestForLines(t *testing.T) {
	p := &Puzzle{input: []byte("a\r\nb\n\nc")}
	var ys []int
	var lines []string
	p.ForLinesY(func(y int, l string) {
		ys = append(ys, y)
		lines = append(lines, l)
	})
	assert.Equal(t, []int{0, 1, 2, 3}, ys)
	assert.Equal(t, []string{"a", "b", "", "c"}, lines)

	n := 0
	p.ForLines(func(string) { n++ })
	assert.Equal(t, 4, n)
}

// lineSolver answers part 1 with the number of input lines and part 2 with
// the input length.
type lineSolver struct {
	*Puzzle
}

func (s lineSolver) D7p1() any {
	n := 0
	s.ForLines(func(string) { n++ })
	return n
}

func (s lineSolver) D7p2() any { return len(s.Input()) }

// setRunFlags points the runner at dir and restores the flags when t ends.
func setRunFlags(t *testing.T, dir string, verify, skipSample bool) {
	oldDir, oldVerify, oldSkip, oldOnly, oldPart := flagInputDir, flagVerify, flagSkipSample, flagOnlySample, flagPart
	t.Cleanup(func() {
		flagInputDir, flagVerify, flagSkipSample, flagOnlySample, flagPart = oldDir, oldVerify, oldSkip, oldOnly, oldPart
	})
	flagInputDir = dir
	flagVerify = verify
	flagSkipSample = skipSample
	flagOnlySample = false
	flagPart = ""
}

// writeInput writes the input file for day under the current -input
// directory.
func writeInput(t *testing.T, day int, input string) {
	t.Helper()
	path := inputPath(day)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(input), 0644))
}

func TestRunDay(t *testing.T) {
	tests := []struct {
		name       string
		input      string // empty means no input file
		verify     bool
		want       Answers
		wantPassed bool
		wantGot    Answers
	}{
		{
			name:       "no input file",
			verify:     true,
			want:       Answers{7: {"2", "4"}},
			wantPassed: true,
			wantGot:    Answers{},
		},
		{
			name:       "match",
			input:      "a\nb\n",
			verify:     true,
			want:       Answers{7: {"2", "4"}},
			wantPassed: true,
			wantGot:    Answers{7: {"2", "4"}},
		},
		{
			name:       "mismatch",
			input:      "a\nb\n",
			verify:     true,
			want:       Answers{7: {"2", "5"}},
			wantPassed: false,
			wantGot:    Answers{7: {"2", "4"}},
		},
		{
			name:       "no expected answer",
			input:      "abc\n",
			verify:     true,
			want:       Answers{},
			wantPassed: true,
			wantGot:    Answers{7: {"1", "4"}},
		},
		{
			name:       "mismatch without verify",
			input:      "a\nb\n",
			want:       Answers{7: {"9", "9"}},
			wantPassed: true,
			wantGot:    Answers{7: {"2", "4"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			setRunFlags(t, dir, tt.verify, true)
			if tt.input != "" {
				writeInput(t, 7, tt.input)
			}
			slvr := &lineSolver{}
			days := extractMethods(slvr)
			got := make(Answers)
			passed := runDay(slvr, days[7], nil, tt.want, got)
			assert.Equal(t, tt.wantPassed, passed)
			assert.Equal(t, tt.wantGot, got)
		})
	}
}

func TestRunDaySamples(t *testing.T) {
	tests := []struct {
		name       string
		samples    map[string]sample
		wantPassed bool
	}{
		{
			name: "pass",
			samples: map[string]sample{
				"D7p1": {want: "3", input: "x\ny\nz\n"},
				"D7p2": {want: "6", input: "x\ny\nz\n"},
			},
			wantPassed: true,
		},
		{
			name: "fail",
			samples: map[string]sample{
				"D7p1": {want: "3", input: "x\ny\nz\n"},
				"D7p2": {want: "7", input: "x\ny\nz\n"},
			},
			wantPassed: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRunFlags(t, t.TempDir(), false, false)
			slvr := &lineSolver{}
			days := extractMethods(slvr)
			got := make(Answers)
			assert.Equal(t, tt.wantPassed, runDay(slvr, days[7], tt.samples, Answers{}, got))
			// Samples never reach the answers.
			assert.Empty(t, got)
		})
	}
}

func TestRunDaySave(t *testing.T) {
	dir := t.TempDir()
	setRunFlags(t, dir, false, true)
	writeInput(t, 7, "a\n")

	slvr := &lineSolver{}
	got := Answers{3: {"x", "y"}}
	require.True(t, runDay(slvr, extractMethods(slvr)[7], nil, Answers{}, got))

	path := filepath.Join(dir, "answers.txt")
	require.NoError(t, got.Save(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3: x, y\n7: 1, 2\n", string(b))
}

func TestExitCode(t *testing.T) {
	old := flagVerify
	t.Cleanup(func() { flagVerify = old })

	flagVerify = false
	assert.Equal(t, 0, exitCode(true))
	assert.Equal(t, 0, exitCode(false))
	flagVerify = true
	assert.Equal(t, 0, exitCode(true))
	assert.Equal(t, 1, exitCode(false))
}
