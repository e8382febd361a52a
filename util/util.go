package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys is GetKeys in ascending order, for stable iteration.
func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	slices.Sort(keys)
	return keys
}

func Sum[A constraints.Integer](nums []A) int {
	var total int
	for _, v := range nums {
		total += int(v)
	}
	return total
}

// PrefixSums returns, for each position, the sum of everything before it.
func PrefixSums[A constraints.Integer](nums []A) []int {
	res := make([]int, len(nums))
	var total int
	for i, v := range nums {
		res[i] = total
		total += int(v)
	}
	return res
}

func Chunk[A any](items []A, size int) [][]A {
	if size <= 0 {
		size = 1
	}
	var res [][]A
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		res = append(res, items[i:end])
	}
	return res
}
