// Package sorting implements elementary comparison sorts.
//
// Insertion sort is stable and runs in linear time on nearly-sorted input;
// selection sort always performs exactly n*(n-1)/2 comparisons but moves each
// element at most once. Both sort in place. The Func variants take an
// explicit comparator for element types that are not naturally ordered.
package sorting

import "cmp"

// Comparator returns a negative number when a sorts before b, zero when they
// are equivalent, and a positive number when a sorts after b.
type Comparator[T any] func(a, b T) int

// Insertion sorts items in ascending order using insertion sort.
func Insertion[T cmp.Ordered](items []T) {
	InsertionFunc(items, cmp.Compare[T])
}

// InsertionFunc sorts items in the order given by compare using insertion
// sort. The sort is stable.
func InsertionFunc[T any](items []T, compare Comparator[T]) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && compare(items[j], items[j-1]) < 0; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// Selection sorts items in ascending order using selection sort.
func Selection[T cmp.Ordered](items []T) {
	SelectionFunc(items, cmp.Compare[T])
}

// SelectionFunc sorts items in the order given by compare using selection
// sort.
func SelectionFunc[T any](items []T, compare Comparator[T]) {
	for i := 0; i < len(items); i++ {
		min := i
		for j := i + 1; j < len(items); j++ {
			if compare(items[j], items[min]) < 0 {
				min = j
			}
		}
		items[i], items[min] = items[min], items[i]
	}
}

// IsSorted reports whether items are in ascending order.
func IsSorted[T cmp.Ordered](items []T) bool {
	return IsSortedFunc(items, cmp.Compare[T])
}

// IsSortedFunc reports whether items are in the order given by compare.
func IsSortedFunc[T any](items []T, compare Comparator[T]) bool {
	for i := 1; i < len(items); i++ {
		if compare(items[i], items[i-1]) < 0 {
			return false
		}
	}
	return true
}
