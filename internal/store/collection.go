package store

import (
	"slices"

	"movie-rental/internal/data/entity"
)

// Collections are copy-on-write: every mutation builds a new slice so that
// snapshots handed to views never change underneath them.

func indexOf[T entity.Record](items []T, id int64) int {
	return slices.IndexFunc(items, func(item T) bool { return item.Key() == id })
}

func appendItem[T entity.Record](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// replaceOrAppend swaps the element with item's id, or appends item when no
// element matches.
func replaceOrAppend[T entity.Record](items []T, item T) ([]T, bool) {
	i := indexOf(items, item.Key())
	if i < 0 {
		return appendItem(items, item), false
	}
	out := slices.Clone(items)
	out[i] = item
	return out, true
}

// removeByID drops the element with the given id and reports what it was and
// where it sat.
func removeByID[T entity.Record](items []T, id int64) ([]T, T, int, bool) {
	i := indexOf(items, id)
	if i < 0 {
		var zero T
		return items, zero, -1, false
	}
	removed := items[i]
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out, removed, i, true
}

// insertAt places item at index i (clamped to the end). It is a no-op when
// the id is already present.
func insertAt[T entity.Record](items []T, i int, item T) []T {
	if indexOf(items, item.Key()) >= 0 {
		return items
	}
	i = min(max(i, 0), len(items))
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, item)
	return append(out, items[i:]...)
}

func clone[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}
