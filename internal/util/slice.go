// SPDX-License-Identifier: GPL-3.0-or-later

package util

/**
 * Generic shared utilities
 */

// SliceIncludes helper for detecting if a slice includes a value
func SliceIncludes[T comparable](s []T, val T) bool {
	for _, v := range s {
		if v == val {
			return true
		}
	}
	return false
}

// FindFunc returns the first element for which f returns true
func FindFunc[T any](s []T, f func(v T) bool) (T, bool) {
	for _, v := range s {
		if f(v) {
			return v, true
		}
	}

	var zero T

	return zero, false
}

// FilterSlice filters a slice into a new slice
func FilterSlice[T any](s []T, f func(v T) bool) []T {
	newSlice := []T{}

	for _, v := range s {
		if f(v) {
			newSlice = append(newSlice, v)
		}
	}

	return newSlice
}

// TruncateSlice returns at most limit leading elements of s, a non positive
// limit leaves s untouched
func TruncateSlice[T any](s []T, limit int) []T {
	if limit <= 0 || len(s) <= limit {
		return s
	}

	return s[:limit]
}
