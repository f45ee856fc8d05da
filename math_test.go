package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivisors(t *testing.T) {
	assert.Equal(t, []int{1}, Divisors(1))
	assert.Equal(t, []int{1, 2, 3, 6}, Divisors(6))
	assert.Equal(t, []int{1, 3, 9}, Divisors(9))
	assert.Equal(t, []int{1, 13}, Divisors(13))
	assert.Equal(t, []int{1, 2, 3, 4, 6, 12}, Divisors(12))
}

func TestDigitHelpers(t *testing.T) {
	assert.Equal(t, 1, NumDigits(0))
	assert.Equal(t, 1, NumDigits(9))
	assert.Equal(t, 2, NumDigits(10))
	assert.Equal(t, 10, NumDigits(1188511880))
	assert.Equal(t, uint64(1), Pow10(0))
	assert.Equal(t, uint64(1000), Pow10(3))

	d, err := ParseDigits("9870")
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7, 0}, d)
	_, err = ParseDigits("12a")
	assert.Error(t, err)
	assert.Panics(t, func() { Digits("x") })
	assert.Equal(t, 7, Digit('7'))
}

func TestArith(t *testing.T) {
	assert.Equal(t, 10, Sum(1, 2, 3, 4))
	assert.Equal(t, 24, Product(1, 2, 3, 4))
	assert.Equal(t, 1, Product[int]())
	assert.Equal(t, 3, AbsDiff(2, 5))
	assert.Equal(t, 3, AbsDiff(5, 2))

	assert.Equal(t, []int{1, -2, 30}, Ints("1", " -2", "30 "))
	_, err := ParseInts("1", "x")
	assert.Error(t, err)
}
