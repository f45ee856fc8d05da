package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The operator line keeps its trailing spaces.
const sample = "123 328  51 64\n" +
	" 45 64  387 23\n" +
	"  6 98  215 314\n" +
	"*   +   *   +  \n"

func TestParseRows(t *testing.T) {
	ps, err := ParseRows(sample)
	require.NoError(t, err)
	require.Len(t, ps, 4)
	assert.Equal(t, "123 * 45 * 6", ps[0].String())
	assert.Equal(t, Problem{Nums: []int{64, 23, 314}, Op: Add}, ps[3])
	assert.Equal(t, 4277556, Solve(ps))
}

func TestParseColumns(t *testing.T) {
	ps, err := ParseColumns(sample)
	require.NoError(t, err)
	require.Len(t, ps, 4)
	assert.Equal(t, "4 + 431 + 623", ps[0].String())
	assert.Equal(t, "175 * 581 * 32", ps[1].String())
	assert.Equal(t, 3263827, Solve(ps))
}

func TestParts(t *testing.T) {
	p1, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 4277556, p1)
	p2, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 3263827, p2)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no operators", "1 2 3\n"},
		{"ragged", "1 2\n3\n* +\n"},
		{"operator count", "1 2\n3 4\n*\n"},
		{"bad operator", "1 2\n3 4\n* -\n"},
		{"bad number", "1 x\n3 4\n* +\n"},
	}
	for _, tt := range tests {
		_, err := Part1(tt.in)
		assert.Error(t, err, tt.name)
	}

	_, err := Part1("")
	assert.ErrorIs(t, err, ErrNoOperators)
	_, err = Part2("12\n")
	assert.ErrorIs(t, err, ErrNoOperators)
	_, err = Part2("12\n  \n")
	assert.Error(t, err, "numbers without operator")
	_, err = Part2("12\n-\n")
	assert.Error(t, err, "bad operator")
}

func TestApply(t *testing.T) {
	assert.Equal(t, 6, Add.Apply([]int{1, 2, 3}))
	assert.Equal(t, 24, Mul.Apply([]int{2, 3, 4}))
	assert.Equal(t, 0, Add.Apply(nil))
}
