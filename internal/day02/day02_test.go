package day02

import (
	"testing"

	"github.com/maisem/aoc2025"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224," +
	"1698522-1698528,446443-446449,38593856-38593862,565653-565659," +
	"824824821-824824827,2121212118-2121212124\n"

func TestInvalidTwice(t *testing.T) {
	tests := []struct {
		id   int
		want bool
	}{
		{5, false},
		{12, false},
		{55, true},
		{101, false},
		{6464, true},
		{123123, true},
		{1231234, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InvalidTwice(tt.id), "InvalidTwice(%d)", tt.id)
	}
}

func TestInvalidRepeated(t *testing.T) {
	tests := []struct {
		id   int
		want bool
	}{
		{5, false},
		{69, false},
		{100, false},
		{99, true},
		{111, true},
		{12341234, true},
		{1111111, true},
		{121212, true},
		{1212121, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InvalidRepeated(tt.id), "InvalidRepeated(%d)", tt.id)
	}
}

func invalidIDs(r aoc.Range, invalid func(int) bool) []int {
	var out []int
	r.ForEach(func(id int) bool {
		if invalid(id) {
			out = append(out, id)
		}
		return true
	})
	return out
}

func TestInvalidIDsInRange(t *testing.T) {
	assert.Equal(t, []int{11, 22}, invalidIDs(aoc.Range{Lo: 11, Hi: 22}, InvalidTwice))
	assert.Equal(t, []int{99}, invalidIDs(aoc.Range{Lo: 95, Hi: 115}, InvalidTwice))
	assert.Equal(t, []int{99, 111}, invalidIDs(aoc.Range{Lo: 95, Hi: 115}, InvalidRepeated))
	assert.Equal(t, []int{2121212121}, invalidIDs(aoc.Range{Lo: 2121212118, Hi: 2121212124}, InvalidRepeated))
}

func TestParts(t *testing.T) {
	p1, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 1227775554, p1)

	p2, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 4174379265, p2)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"11-x", "1122", "5-6,abc"} {
		_, err := Parse(in)
		assert.Error(t, err, "Parse(%q)", in)
	}
}

func TestRangeEndingAtMaxInt(t *testing.T) {
	const in = "9223372036854775806-9223372036854775807"
	p1, err := Part1(in)
	require.NoError(t, err)
	assert.Zero(t, p1)
	p2, err := Part2(in)
	require.NoError(t, err)
	assert.Zero(t, p2)
}
