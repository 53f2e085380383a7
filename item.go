package multivec

import (
	"fmt"
	"reflect"
)

// ColumnItem is a value tagged with the column it came from. It is what the
// runtime-indexed accessors (Column, Item, ItemMut) return: the variant
// ItemN carries column N's slice, value or pointer.
//
// Switch on the concrete type to recover the static type:
//
//	switch it := v.Item(3, col).(type) {
//	case multivec.Item0[int]:
//	    use(it.V)
//	case multivec.Item1[string]:
//	    use(it.V)
//	}
type ColumnItem interface {
	// Column returns the column index the value belongs to.
	Column() int
	// Value returns the payload.
	Value() any

	columnItem()
}

// EqualItems reports whether a and b are the same variant holding deeply
// equal payloads. Items from different columns are never equal, even when
// their payloads are.
func EqualItems(a, b ColumnItem) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Column() != b.Column() {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// Item0 is a value from column 0.
type Item0[T any] struct{ V T }

// Item1 is a value from column 1.
type Item1[T any] struct{ V T }

// Item2 is a value from column 2.
type Item2[T any] struct{ V T }

// Item3 is a value from column 3.
type Item3[T any] struct{ V T }

// Item4 is a value from column 4.
type Item4[T any] struct{ V T }

// Item5 is a value from column 5.
type Item5[T any] struct{ V T }

func (Item0[T]) Column() int { return 0 }
func (Item1[T]) Column() int { return 1 }
func (Item2[T]) Column() int { return 2 }
func (Item3[T]) Column() int { return 3 }
func (Item4[T]) Column() int { return 4 }
func (Item5[T]) Column() int { return 5 }

func (i Item0[T]) Value() any { return i.V }
func (i Item1[T]) Value() any { return i.V }
func (i Item2[T]) Value() any { return i.V }
func (i Item3[T]) Value() any { return i.V }
func (i Item4[T]) Value() any { return i.V }
func (i Item5[T]) Value() any { return i.V }

func (i Item0[T]) String() string { return fmt.Sprintf("Item0(%v)", i.V) }
func (i Item1[T]) String() string { return fmt.Sprintf("Item1(%v)", i.V) }
func (i Item2[T]) String() string { return fmt.Sprintf("Item2(%v)", i.V) }
func (i Item3[T]) String() string { return fmt.Sprintf("Item3(%v)", i.V) }
func (i Item4[T]) String() string { return fmt.Sprintf("Item4(%v)", i.V) }
func (i Item5[T]) String() string { return fmt.Sprintf("Item5(%v)", i.V) }

func (Item0[T]) columnItem() {}
func (Item1[T]) columnItem() {}
func (Item2[T]) columnItem() {}
func (Item3[T]) columnItem() {}
func (Item4[T]) columnItem() {}
func (Item5[T]) columnItem() {}
