// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jsontree

import (
	"iter"
)

// Kind is the kind of a JSON [Value].
type Kind int

// All JSON value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Member is a single key value pair of a JSON object.
type Member struct {
	Key   string
	Value *Value
}

// Value is a single node of a JSON value tree.
//
// The zero value is JSON null. A nil *Value behaves like null as well, so
// lookups never need to check for nil.
type Value struct {
	kind    Kind
	boolean bool
	// Literal number text or raw string content.
	text    string
	items   []*Value
	members []Member
	keys    map[string]int
}

// Null returns a new null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a new boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, boolean: b}
}

// Number returns a new number value with the given literal text.
//
// The text is not validated. Use [Parse] for untrusted input.
func Number(text string) *Value {
	return &Value{kind: KindNumber, text: text}
}

// String returns a new string value.
func String(s string) *Value {
	return &Value{kind: KindString, text: s}
}

// Array returns a new array value with the given items in order.
func Array(items ...*Value) *Value {
	return &Value{
		kind:  KindArray,
		items: append([]*Value(nil), items...),
	}
}

// Object returns a new object value with the given members in order.
//
// If a key occurs more than once, the later value replaces the earlier one
// and the member keeps the position of the first occurrence.
func Object(members ...Member) *Value {
	obj := &Value{
		kind: KindObject,
		keys: make(map[string]int, len(members)),
	}

	for _, member := range members {
		obj.set(member.Key, member.Value)
	}

	return obj
}

func (v *Value) set(key string, value *Value) {
	if idx, exists := v.keys[key]; exists {
		v.members[idx].Value = value
		return
	}

	v.keys[key] = len(v.members)
	v.members = append(v.members, Member{Key: key, Value: value})
}

// Kind returns the kind of the value.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}

	return v.kind
}

// IsComposite returns true for arrays and objects.
func (v *Value) IsComposite() bool {
	switch v.Kind() {
	case KindArray, KindObject:
		return true
	default:
		return false
	}
}

// Bool returns the boolean value. It is false for any other kind.
func (v *Value) Bool() bool {
	return v.Kind() == KindBool && v.boolean
}

// Text returns the literal text of a number or the content of a string. It
// is empty for any other kind.
func (v *Value) Text() string {
	switch v.Kind() {
	case KindNumber, KindString:
		return v.text
	default:
		return ""
	}
}

// Len returns the number of items of an array or members of an object. It is
// 0 for any other kind.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Index returns the array item at the given index. It returns false if the
// value is not an array or the index is out of range.
func (v *Value) Index(idx int) (*Value, bool) {
	if v.Kind() != KindArray || idx < 0 || idx >= len(v.items) {
		return nil, false
	}

	return v.items[idx], true
}

// Lookup returns the object member value for the given key. It returns false
// if the value is not an object or the key does not exist. Keys are matched
// exactly.
func (v *Value) Lookup(key string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}

	idx, exists := v.keys[key]
	if !exists {
		return nil, false
	}

	return v.members[idx].Value, true
}

// Items iterates over the items of an array in order. It yields nothing for
// any other kind.
func (v *Value) Items() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		if v.Kind() != KindArray {
			return
		}

		for idx, item := range v.items {
			if !yield(idx, item) {
				return
			}
		}
	}
}

// Members iterates over the members of an object in document order. It
// yields nothing for any other kind.
func (v *Value) Members() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.Kind() != KindObject {
			return
		}

		for _, member := range v.members {
			if !yield(member.Key, member.Value) {
				return
			}
		}
	}
}
