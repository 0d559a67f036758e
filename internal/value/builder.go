package value

import "github.com/pkg/errors"

// builderState is one of the states the fluent Builder can be in. Each
// Builder method is only valid in a subset of states; calling it elsewhere
// is a programmer error and panics, the way an invalid state transition in
// a hand-rolled state machine should.
type builderState int

const (
	stateTop builderState = iota
	stateInArray
	stateExpectingKey
	stateExpectingValueForKey
	stateDone
)

// frame is one level of nesting: either an in-progress array or an
// in-progress dict (with the key currently awaiting a value, if any).
type frame struct {
	isArray bool
	arr     []Value
	dict    map[string]Value
	key     string
	hasKey  bool
}

// Builder assembles a Value through a sequence of valid state transitions.
// The zero Builder is ready to use.
type Builder struct {
	root    *Value
	stack   []frame
	state   builderState
	started bool
}

func (b *Builder) top() *frame {
	return &b.stack[len(b.stack)-1]
}

func (b *Builder) fail(method string) {
	panic(errors.Errorf("value.Builder: %s called in invalid state", method))
}

// StartDict begins a dict. Valid at top level, inside an array, or as the
// value for a pending key.
func (b *Builder) StartDict() *Builder {
	switch b.state {
	case stateTop, stateInArray, stateExpectingValueForKey:
	default:
		b.fail("StartDict")
	}
	b.stack = append(b.stack, frame{dict: map[string]Value{}})
	b.state = stateExpectingKey
	b.started = true
	return b
}

// StartArray begins an array. Valid at top level, inside an array, or as
// the value for a pending key.
func (b *Builder) StartArray() *Builder {
	switch b.state {
	case stateTop, stateInArray, stateExpectingValueForKey:
	default:
		b.fail("StartArray")
	}
	b.stack = append(b.stack, frame{isArray: true})
	b.state = stateInArray
	b.started = true
	return b
}

// Key opens a field of the current dict. Valid only immediately after
// StartDict or EndDict/EndArray/Value while still inside a dict.
func (b *Builder) Key(key string) *Builder {
	if b.state != stateExpectingKey {
		b.fail("Key")
	}
	f := b.top()
	f.key = key
	f.hasKey = true
	b.state = stateExpectingValueForKey
	return b
}

// Value appends a scalar value: as the sole document (top level), as the
// next array element, or as the value for the currently open key.
func (b *Builder) Value(v Value) *Builder {
	switch b.state {
	case stateTop:
		b.root = &v
		b.state = stateDone
	case stateInArray:
		f := b.top()
		f.arr = append(f.arr, v)
	case stateExpectingValueForKey:
		f := b.top()
		f.dict[f.key] = v
		f.hasKey = false
		b.state = stateExpectingKey
	default:
		b.fail("Value")
	}
	b.started = true
	return b
}

// EndDict closes the innermost dict and folds it into its parent context
// (or makes it the finished document, at top level).
func (b *Builder) EndDict() *Builder {
	f := b.top()
	if f.isArray {
		b.fail("EndDict")
	}
	v := Dict(f.dict)
	b.stack = b.stack[:len(b.stack)-1]
	b.closeValue(v)
	return b
}

// EndArray closes the innermost array and folds it into its parent context
// (or makes it the finished document, at top level).
func (b *Builder) EndArray() *Builder {
	f := b.top()
	if !f.isArray {
		b.fail("EndArray")
	}
	v := Array(f.arr...)
	b.stack = b.stack[:len(b.stack)-1]
	b.closeValue(v)
	return b
}

func (b *Builder) closeValue(v Value) {
	if len(b.stack) == 0 {
		b.root = &v
		b.state = stateDone
		return
	}
	parent := b.top()
	if parent.isArray {
		parent.arr = append(parent.arr, v)
		b.state = stateInArray
		return
	}
	parent.dict[parent.key] = v
	parent.hasKey = false
	b.state = stateExpectingKey
}

// Build finalizes the document. Panics if the builder never started or has
// unclosed arrays/dicts.
func (b *Builder) Build() Value {
	if !b.started || b.state != stateDone || len(b.stack) != 0 {
		b.fail("Build")
	}
	return *b.root
}
