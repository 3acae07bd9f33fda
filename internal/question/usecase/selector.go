package usecase

import (
	"slices"
	"unicode/utf16"
)

// DefaultDailyCount is how many questions a user answers per day.
const DefaultDailyCount = 5

// SelectDaily picks the first count items of a shuffle seeded by date. Every call
// with the same date string and bank returns the same items in the same order.
func SelectDaily[T any](bank []T, date string, count int) []T {
	shuffled := seededShuffle(bank, hashDateSeed(date))
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// hashDateSeed folds the UTF-16 code units of s with hash*31+c in 32-bit
// two's-complement arithmetic and returns the absolute value.
func hashDateSeed(s string) int64 {
	var hash int32
	for _, c := range utf16.Encode([]rune(s)) {
		hash = hash*31 + int32(c)
	}
	return abs64(int64(hash))
}

// seededShuffle is a Fisher-Yates shuffle driven by the LCG
// seed = seed*1664525 + 1013904223 (mod 2^32), swap index |int32(seed)| mod (i+1).
func seededShuffle[T any](items []T, seed int64) []T {
	shuffled := slices.Clone(items)
	current := uint32(seed)

	for i := len(shuffled) - 1; i > 0; i-- {
		current = current*1664525 + 1013904223
		j := abs64(int64(int32(current))) % int64(i+1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
