package memo

import (
	"errors"
	"fmt"
)

// ErrNegativeBlinks is returned when Stones is asked for fewer than zero blinks.
var ErrNegativeBlinks = errors.New("memo: blinks must be non-negative")

// ErrNegativeStone is returned for a stone engraved with a negative number.
var ErrNegativeStone = errors.New("memo: stone values must be non-negative")

const stoneFactor = 2024

type stoneKey struct {
	value, blinks int
}

// Stones returns how many stones the row holds after the given number of
// blinks. On each blink every stone changes at once:
//
//	0              → 1
//	even digit count → left half, right half (leading zeros dropped)
//	otherwise      → value × 2024
func Stones(stones []int, blinks int) (int, error) {
	if blinks < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeBlinks, blinks)
	}
	t := NewTable[stoneKey, int]()
	count := Memoize(t, func(self func(stoneKey) int, k stoneKey) int {
		if k.blinks == 0 {
			return 1
		}
		next := k.blinks - 1
		if k.value == 0 {
			return self(stoneKey{1, next})
		}
		if left, right, ok := split(k.value); ok {
			return self(stoneKey{left, next}) + self(stoneKey{right, next})
		}
		return self(stoneKey{k.value * stoneFactor, next})
	})

	total := 0
	for _, s := range stones {
		if s < 0 {
			return 0, fmt.Errorf("%w: %d", ErrNegativeStone, s)
		}
		total += count(stoneKey{s, blinks})
	}
	return total, nil
}

// split halves v's decimal digits when their count is even.
func split(v int) (left, right int, ok bool) {
	digits, pow := 0, 1
	for n := v; n > 0; n /= 10 {
		digits++
	}
	if digits%2 != 0 {
		return 0, 0, false
	}
	for i := 0; i < digits/2; i++ {
		pow *= 10
	}
	return v / pow, v % pow, true
}
