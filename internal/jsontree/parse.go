// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jsontree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/jtree"
)

// MaxDepth is the maximum nesting depth of arrays and objects [Parse]
// accepts.
const MaxDepth = 10000

// Parse reads exactly one JSON value from the reader and returns its tree.
//
// Whitespace around the value is ignored. Another value following the first
// one is an error wrapping [ErrTrailingData]. Malformed input returns a
// [SyntaxError].
func Parse(reader io.Reader) (*Value, error) {
	stream := jtree.NewStream(reader)
	b := &builder{}

	err := stream.ParseOne(b)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}

		return nil, syntaxError(err)
	}

	err = stream.ParseOne(trailer{})
	switch {
	case errors.Is(err, io.EOF):
		return b.root, nil
	case errors.Is(err, ErrTrailingData):
		return nil, err
	default:
		return nil, syntaxError(err)
	}
}

// ParseString parses the given JSON text. Surrounding whitespace is trimmed.
func ParseString(text string) (*Value, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	return Parse(strings.NewReader(text))
}

// ParseFile parses the JSON file at the given path.
func ParseFile(path string) (*Value, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	value, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return value, nil
}

// syntaxError converts errors of the stream parser. Errors the handlers
// already reported as [SyntaxError] pass unchanged.
func syntaxError(err error) error {
	var own *SyntaxError
	if errors.As(err, &own) {
		return err
	}

	var streamErr *jtree.SyntaxError
	if errors.As(err, &streamErr) {
		return &SyntaxError{
			Line:   streamErr.Location.Line,
			Column: streamErr.Location.Column + 1,
			Err:    errors.New(streamErr.Message),
		}
	}

	return &SyntaxError{Err: err}
}

func errorAt(loc jtree.Anchor, err error) *SyntaxError {
	pos := loc.Location().First

	return &SyntaxError{
		Line:   pos.Line,
		Column: pos.Column + 1,
		Err:    err,
	}
}

// builder assembles the [Value] tree from stream events. The stream parser
// keeps objects and arrays balanced, so the stacks never underflow.
type builder struct {
	root  *Value
	stack []*Value
	keys  []string
}

func (b *builder) attach(value *Value) {
	if len(b.stack) == 0 {
		b.root = value
		return
	}

	parent := b.stack[len(b.stack)-1]
	if parent.kind == KindArray {
		parent.items = append(parent.items, value)
		return
	}

	parent.set(b.keys[len(b.keys)-1], value)
}

func (b *builder) open(loc jtree.Anchor, value *Value) error {
	if len(b.stack) >= MaxDepth {
		return errorAt(loc, ErrTooDeep)
	}

	b.attach(value)
	b.stack = append(b.stack, value)

	return nil
}

func (b *builder) close() error {
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *builder) BeginObject(loc jtree.Anchor) error {
	return b.open(loc, &Value{
		kind: KindObject,
		keys: make(map[string]int),
	})
}

func (b *builder) EndObject(jtree.Anchor) error {
	return b.close()
}

func (b *builder) BeginArray(loc jtree.Anchor) error {
	return b.open(loc, &Value{kind: KindArray})
}

func (b *builder) EndArray(jtree.Anchor) error {
	return b.close()
}

func (b *builder) BeginMember(loc jtree.Anchor) error {
	key, err := jtree.Unquote(loc.Text())
	if err != nil {
		return errorAt(loc, err)
	}

	b.keys = append(b.keys, string(key))

	return nil
}

func (b *builder) EndMember(jtree.Anchor) error {
	b.keys = b.keys[:len(b.keys)-1]
	return nil
}

func (b *builder) Value(loc jtree.Anchor) error {
	switch loc.Token() {
	case jtree.String:
		text, err := jtree.Unquote(loc.Text())
		if err != nil {
			return errorAt(loc, err)
		}

		b.attach(String(string(text)))
	case jtree.Integer, jtree.Number:
		b.attach(Number(string(loc.Text())))
	case jtree.True:
		b.attach(Bool(true))
	case jtree.False:
		b.attach(Bool(false))
	default:
		b.attach(Null())
	}

	return nil
}

func (*builder) EndOfInput(jtree.Anchor) {}

// trailer fails on the first value the stream delivers after the document.
type trailer struct{}

func (trailer) fail(loc jtree.Anchor) error {
	pos := loc.Location().First
	return fmt.Errorf("%w at line %d, column %d",
		ErrTrailingData, pos.Line, pos.Column+1)
}

func (t trailer) BeginObject(loc jtree.Anchor) error { return t.fail(loc) }
func (t trailer) BeginArray(loc jtree.Anchor) error  { return t.fail(loc) }
func (t trailer) Value(loc jtree.Anchor) error       { return t.fail(loc) }
func (trailer) EndObject(jtree.Anchor) error         { return nil }
func (trailer) EndArray(jtree.Anchor) error          { return nil }
func (trailer) BeginMember(jtree.Anchor) error       { return nil }
func (trailer) EndMember(jtree.Anchor) error         { return nil }
func (trailer) EndOfInput(jtree.Anchor)              {}
