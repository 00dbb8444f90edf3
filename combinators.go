//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

// Map applies f to the result of p unconditionally. It never fails on
// its own and propagates p's failure unchanged (spec §4.4).
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	meta := metaDecorated(p.meta, DecorationMap)
	return newParser(meta, func(b *ArgBuffer) (U, error) {
		v, err := p.run(b)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	})
}

// ParseWith applies f to the result of p, failing the whole parser
// user-visibly when f returns an error (spec §4.4). Use this for
// value-level conversions such as integer parsing; the conversion itself
// is outside the scope of this package.
func ParseWith[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	meta := metaDecorated(p.meta, DecorationParse)
	return newParser(meta, func(b *ArgBuffer) (U, error) {
		var zero U
		v, err := p.run(b)
		if err != nil {
			return zero, err
		}
		u, convErr := f(v)
		if convErr != nil {
			current := ""
			if w, ok := b.Current(); ok {
				current = w.String()
			}
			return zero, ParseValueError{Value: current, Reason: convErr.Error()}
		}
		return u, nil
	})
}

// Guard fails p user-visibly with message when pred rejects its result
// (spec §4.4).
func Guard[T any](p Parser[T], pred func(T) bool, message string) Parser[T] {
	meta := metaDecorated(p.meta, DecorationGuard)
	return newParser(meta, func(b *ArgBuffer) (T, error) {
		v, err := p.run(b)
		if err != nil {
			var zero T
			return zero, err
		}
		if !pred(v) {
			var zero T
			return zero, GuardError{Message: message}
		}
		return v, nil
	})
}

// Maybe is the result of [Optional]: either a present value, or nothing.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Optional runs p on a clone of the buffer. On success, it commits the
// clone's state and returns a present [Maybe]; on a recoverable failure,
// it discards the clone and returns an absent one; a fatal failure
// propagates unchanged (spec §4.4).
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	meta := metaDecorated(p.meta, DecorationOptional)
	return newParser(meta, func(b *ArgBuffer) (Maybe[T], error) {
		clone := b.Clone()
		v, err := p.run(clone)
		if err == nil {
			b.adopt(clone)
			return Maybe[T]{Value: v, Present: true}, nil
		}
		if IsMissing(err) {
			return Maybe[T]{}, nil
		}
		return Maybe[T]{}, err
	})
}

// Many runs p repeatedly on b until it fails recoverably, returning the
// (possibly empty) accumulated results. A fatal failure propagates
// (spec §4.4).
func Many[T any](p Parser[T]) Parser[[]T] {
	meta := metaDecorated(p.meta, DecorationMany)
	return newParser(meta, func(b *ArgBuffer) ([]T, error) {
		var out []T
		for {
			clone := b.Clone()
			v, err := p.run(clone)
			if err == nil {
				b.adopt(clone)
				out = append(out, v)
				continue
			}
			if IsMissing(err) {
				return out, nil
			}
			return out, err
		}
	})
}

// Some is like [Many] but fails user-visibly with message if it would
// otherwise return an empty slice (spec §4.4).
func Some[T any](p Parser[T], message string) Parser[[]T] {
	meta := metaDecorated(p.meta, DecorationSome)
	many := Many(p)
	return newParser(meta, func(b *ArgBuffer) ([]T, error) {
		out, err := many.run(b)
		if err != nil {
			return out, err
		}
		if len(out) == 0 {
			return out, userError("%s", message)
		}
		return out, nil
	})
}

// Fallback yields value on a recoverable failure of p; a fatal failure
// propagates (spec §4.4).
func Fallback[T any](p Parser[T], value T) Parser[T] {
	meta := metaDecorated(p.meta, DecorationFallback)
	return newParser(meta, func(b *ArgBuffer) (T, error) {
		clone := b.Clone()
		v, err := p.run(clone)
		if err == nil {
			b.adopt(clone)
			return v, nil
		}
		if IsMissing(err) {
			return value, nil
		}
		var zero T
		return zero, err
	})
}
