// Package hashtable is a fixed-capacity open-addressed map keyed by
// ordered word tuples. Collisions are resolved by stepping backwards
// (index-1, wrapping to capacity-1). The table never grows and has no
// delete operation.
package hashtable

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCapacity is returned by New for a capacity below one.
	ErrInvalidCapacity = errors.New("table capacity must be positive")
	// ErrTableFull is returned by Put when every slot holds another key.
	ErrTableFull = errors.New("hash table is full")
)

// Prefix is an ordered tuple of words used as a key.
type Prefix []string

// Equal reports whether p and q hold the same words in the same order.
func (p Prefix) Equal(q Prefix) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func (p Prefix) String() string {
	return "(" + strings.Join(p, ", ") + ")"
}

type slot[V any] struct {
	key   Prefix
	value V
	used  bool
}

// Table maps a Prefix to a value of type V.
type Table[V any] struct {
	slots []slot[V]
	count int
}

// New returns an empty table with capacity slots.
func New[V any](capacity int) (*Table[V], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &Table[V]{slots: make([]slot[V], capacity)}, nil
}

// Hash returns the home slot of key: h = 31*h + rune over every rune of
// every word, reduced modulo the capacity. The reduction is applied at each
// step, which is congruent to reducing the unbounded sum once at the end.
func (t *Table[V]) Hash(key Prefix) int {
	m := uint64(len(t.slots))
	h := uint64(0)
	for _, word := range key {
		for _, r := range word {
			h = (31*h + uint64(r)) % m
		}
	}
	return int(h)
}

func (t *Table[V]) prev(index int) int {
	if index == 0 {
		return len(t.slots) - 1
	}
	return index - 1
}

// find walks backwards from the home slot of key. It returns the slot
// holding key, or the first empty slot with found == false. index is -1
// when the whole table was visited without reaching either.
func (t *Table[V]) find(key Prefix) (index int, visits int, found bool) {
	index = t.Hash(key)
	for visits = 1; visits <= len(t.slots); visits++ {
		s := &t.slots[index]
		if !s.used {
			return index, visits, false
		}
		if s.key.Equal(key) {
			return index, visits, true
		}
		index = t.prev(index)
	}
	return -1, len(t.slots), false
}

// Put stores value under key, replacing any previous value.
func (t *Table[V]) Put(key Prefix, value V) error {
	index, _, found := t.find(key)
	if index < 0 {
		return errors.Wrapf(ErrTableFull, "put %v into %d slots", key, len(t.slots))
	}
	s := &t.slots[index]
	if !found {
		s.key = append(Prefix(nil), key...)
		s.used = true
		t.count++
	}
	s.value = value
	return nil
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key Prefix) (V, bool) {
	index, _, found := t.find(key)
	if !found {
		var zero V
		return zero, false
	}
	return t.slots[index].value, true
}

// Contains reports whether key is present.
func (t *Table[V]) Contains(key Prefix) bool {
	_, _, found := t.find(key)
	return found
}

// Visits returns how many slots are visited to resolve key, whether or not
// it is present.
func (t *Table[V]) Visits(key Prefix) int {
	_, visits, _ := t.find(key)
	return visits
}

// Slot returns the index of the slot holding key.
func (t *Table[V]) Slot(key Prefix) (int, bool) {
	index, _, found := t.find(key)
	return index, found
}

// Restore places key and value directly in slot index, as recorded by Each.
// It fails if index is out of range or already occupied. Restore does not
// check that key is reachable from its home slot; callers confirm that with
// Slot once every entry is in place.
func (t *Table[V]) Restore(index int, key Prefix, value V) error {
	if index < 0 || index >= len(t.slots) {
		return errors.Errorf("slot %d out of range [0, %d)", index, len(t.slots))
	}
	s := &t.slots[index]
	if s.used {
		return errors.Errorf("slot %d already holds %v", index, s.key)
	}
	s.key = append(Prefix(nil), key...)
	s.value = value
	s.used = true
	t.count++
	return nil
}

// Len returns the number of occupied slots.
func (t *Table[V]) Len() int { return t.count }

// Cap returns the fixed number of slots.
func (t *Table[V]) Cap() int { return len(t.slots) }

// LoadFactor returns occupied slots divided by capacity.
func (t *Table[V]) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.slots))
}

// Each calls fn for every occupied slot in slot order.
func (t *Table[V]) Each(fn func(index int, key Prefix, value V)) {
	for i := range t.slots {
		if t.slots[i].used {
			fn(i, t.slots[i].key, t.slots[i].value)
		}
	}
}

func (t *Table[V]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, s := range t.slots {
		if i > 0 {
			sb.WriteString(", ")
		}
		if !s.used {
			sb.WriteString("None")
			continue
		}
		sb.WriteString(s.key.String())
	}
	sb.WriteString("]")
	return sb.String()
}
