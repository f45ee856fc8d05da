package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Answer holds the known answers for the two parts of a day.
type Answer struct {
	Part1, Part2 string
}

// Get returns the answer for part ("1" or "2").
func (a Answer) Get(part string) (string, bool) {
	var v string
	switch part {
	case "1":
		v = a.Part1
	case "2":
		v = a.Part2
	}
	return v, v != ""
}

// Set records the answer for part ("1" or "2").
func (a *Answer) Set(part, v string) {
	switch part {
	case "1":
		a.Part1 = v
	case "2":
		a.Part2 = v
	}
}

// Answers maps a day number to its answers.
type Answers map[int]Answer

// ParseAnswers parses lines of the form "day: part1, part2". Blank lines are
// ignored. Lines that do not parse are skipped and their 1-based line
// numbers returned in skipped.
func ParseAnswers(text string) (a Answers, skipped []int) {
	a = make(Answers)
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		day, ans, ok := parseAnswerLine(line)
		if !ok {
			skipped = append(skipped, i+1)
			continue
		}
		a[day] = ans
	}
	return a, skipped
}

func parseAnswerLine(line string) (day int, a Answer, ok bool) {
	d, rest, ok := strings.Cut(line, ":")
	if !ok {
		return 0, a, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(d))
	if err != nil {
		return 0, a, false
	}
	p1, p2, ok := strings.Cut(rest, ",")
	if !ok {
		return 0, a, false
	}
	return day, Answer{strings.TrimSpace(p1), strings.TrimSpace(p2)}, true
}

// LoadAnswers reads the answers file at path. A missing file yields no
// answers. Malformed lines are reported through skipped, as in ParseAnswers.
func LoadAnswers(path string) (a Answers, skipped []int, err error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(Answers), nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	a, skipped = ParseAnswers(string(b))
	return a, skipped, nil
}

// String formats a in the format read by ParseAnswers, ordered by day.
func (a Answers) String() string {
	days := maps.Keys(a)
	slices.Sort(days)
	var sb strings.Builder
	for _, d := range days {
		fmt.Fprintf(&sb, "%d: %s, %s\n", d, a[d].Part1, a[d].Part2)
	}
	return sb.String()
}

// Save writes a to path.
func (a Answers) Save(path string) error {
	return os.WriteFile(path, []byte(a.String()), 0644)
}
