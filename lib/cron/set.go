// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "math/bits"

// Set is an ascending, duplicate-free set of field values. It covers
// the full unsigned 8-bit domain as a 256-bit bitset. The zero value
// is an empty set.
type Set struct {
	words [4]uint64
}

// Add inserts value into the set.
func (s *Set) Add(value uint8) { s.words[value>>6] |= 1 << (value & 63) }

// Has reports whether value is in the set.
func (s Set) Has(value uint8) bool { return s.words[value>>6]&(1<<(value&63)) != 0 }

// Len returns the number of values in the set.
func (s Set) Len() int {
	count := 0
	for _, word := range s.words {
		count += bits.OnesCount64(word)
	}
	return count
}

// Values returns the members of the set in ascending order.
func (s Set) Values() []int {
	values := make([]int, 0, s.Len())
	for index, word := range s.words {
		for word != 0 {
			values = append(values, index*64+bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
	return values
}

// Union adds every member of other to s.
func (s *Set) Union(other Set) {
	for index := range s.words {
		s.words[index] |= other.words[index]
	}
}
