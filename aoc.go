// Package aoc are quick & dirty utilities for solving the Advent of Code 2025
// puzzles: a runner that checks embedded samples and stored answers, plus the
// grid, point, range and union-find helpers the puzzles share.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(funcName, comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without an input reuses
// the input of the previous sample.
func extractSamples(src []byte) map[string]sample {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "main.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(funcName, c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

type Puzzle struct {
	day        int
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte
}

// Day returns the day number being solved.
func (p *Puzzle) Day() int {
	return p.day
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return p.input
}

// InputString returns the input as a string.
func (p *Puzzle) InputString() string {
	return string(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods finds the methods of x named D{day}p{part}. The methods
// must have the signature func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("method %s has type %v; want func() any", mn, mt.Type)
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputDir   string
	flagAnswers    string
	flagVerify     bool
	flagSave       bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputDir, "input", "input", "directory holding day<N>/input.txt")
	flag.StringVar(&flagAnswers, "answers", "answers.txt", "answers file")
	flag.BoolVar(&flagVerify, "verify", false, "verify answers against the answers file")
	flag.BoolVar(&flagSave, "save", false, "save answers to the answers file")
}

var initFlags = sync.OnceFunc(flag.Parse)

func inputPath(day int) string {
	return filepath.Join(flagInputDir, fmt.Sprintf("day%d", day), "input.txt")
}

// runDay runs all parts of day. It records real answers into got and
// reports whether every check passed.
func runDay(slvr any, day day, samples map[string]sample, want Answers, got Answers) (passed bool) {
	p := Puzzle{
		day:     day.day,
		samples: samples,
	}
	fmt.Printf("=== Day %02d ===\n", day.day)

	haveInput := true
	if !flagOnlySample {
		b, err := os.ReadFile(inputPath(day.day))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			haveInput = false
		case err != nil:
			log.Fatalf("reading input for day %d: %v", day.day, err)
		}
		p.input = b
	}

	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	passed = true
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			if !sm && !haveInput {
				fmt.Printf("part %s: skipped (no input file)\n", ps.Part)
				continue
			}
			p.SampleMode = sm
			t0 := time.Now()
			res := fmt.Sprint(ps.fn())
			elapsed := time.Since(t0).Round(time.Microsecond)
			if sm {
				sample := p.Sample()
				if res != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, res, sample.want)
					return false
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, res, elapsed)
				continue
			}

			a := got[day.day]
			a.Set(ps.Part, res)
			got[day.day] = a

			if !flagVerify {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, res, elapsed)
				continue
			}
			exp, ok := want[day.day].Get(ps.Part)
			switch {
			case !ok:
				fmt.Printf("part %s: %v (took %v) [no expected answer]\n", ps.Part, res, elapsed)
			case exp == res:
				fmt.Printf("part %s: %v ✅ (took %v)\n", ps.Part, res, elapsed)
			default:
				fmt.Printf("part %s: %v ❌; want %v (took %v)\n", ps.Part, res, exp, elapsed)
				passed = false
			}
		}
	}
	return passed
}

// Run runs the solvers defined on slvr, a pointer to a struct embedding
// *Puzzle with methods named D{day}p{part}. src is the source of the file
// defining those methods; its doc comments hold the samples.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	want, skipped, err := LoadAnswers(flagAnswers)
	if err != nil {
		log.Fatalf("loading answers: %v", err)
	}
	for _, l := range skipped {
		log.Printf("%s:%d: skipping malformed answer line", flagAnswers, l)
	}
	got := make(Answers)
	for d, a := range want {
		got[d] = a
	}

	var dayNums []int
	if flagCurDay != -1 {
		if _, ok := days[flagCurDay]; !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		dayNums = []int{flagCurDay}
	} else {
		dayNums = maps.Keys(days)
		slices.Sort(dayNums)
	}

	fmt.Println("Advent of Code", year)
	t0 := time.Now()
	allPassed := true
	for _, d := range dayNums {
		if !runDay(slvr, days[d], samples, want, got) {
			allPassed = false
		}
		fmt.Println()
	}
	if len(dayNums) > 1 {
		fmt.Printf("=== Total: %v ===\n", time.Since(t0).Round(time.Microsecond))
	}

	if flagSave {
		MustDo(got.Save(flagAnswers))
		fmt.Println("Answers saved to", flagAnswers)
	}
	if code := exitCode(allPassed); code != 0 {
		os.Exit(code)
	}
}

// exitCode returns the process exit status for a run. Failures only affect
// it when -verify is set.
func exitCode(allPassed bool) int {
	if flagVerify && !allPassed {
		return 1
	}
	return 0
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Lines splits s into lines, dropping a trailing newline and any carriage
// returns.
func Lines(s string) []string {
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
