package aoc

import (
	"reflect"

	"tailscale.com/util/deephash"
)

type cacheKey struct {
	input deephash.Sum
	typ   reflect.Type
	parse uintptr
}

// Parsed returns parse(p.Input()), parsing each distinct input only once per
// parse function. Both parts of a day share the result, so callers must not
// mutate it.
func Parsed[T any](p *Puzzle, parse func([]byte) (T, error)) (T, error) {
	in := p.Input()
	key := cacheKey{
		input: deephash.Hash(&in),
		typ:   reflect.TypeOf((*T)(nil)).Elem(),
		parse: reflect.ValueOf(parse).Pointer(),
	}
	if v, ok := p.cache[key]; ok {
		return v.(T), nil
	}
	v, err := parse(in)
	if err != nil {
		var zero T
		return zero, err
	}
	if p.cache == nil {
		p.cache = make(map[cacheKey]any)
	}
	p.cache[key] = v
	return v, nil
}
