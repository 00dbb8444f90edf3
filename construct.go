//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

// ConstructStruct1 through ConstructStruct6 are the product combinator
// (spec §4.5), Go's answer to the variadic, heterogeneous `construct!`
// macro the original Rust crate uses: Go has no macro facility that can
// generate an arity-specific function from a struct literal's field
// list, so each arity gets its own generic function, the same shape
// github.com/shibukawa/parsercombinator uses for its own sequencing
// helpers.
//
// Children run in declaration order against the same buffer; each child
// scans the whole buffer for its own target, so fields may be supplied
// in any order on the command line. A fatal failure from any child
// aborts immediately with that error, without running later children. A
// recoverable absence from a non-optional child does not abort the
// remaining children -- they do not depend on it -- but it is promoted,
// once every child has run, to a [RequiredError] ("argument <name> is
// required") naming the first such child.

// stepChild folds one child's result into the product's accumulated
// state. It returns a non-nil fatal error when the product must abort
// immediately, and otherwise records the first recoverable miss (by
// declaration order) into *firstMissing.
func stepChild(meta Meta, err error, firstMissing **Meta) (fatal error, abort bool) {
	if err == nil {
		return nil, false
	}
	if !IsMissing(err) {
		return err, true
	}
	if *firstMissing == nil {
		m := meta
		*firstMissing = &m
	}
	return nil, false
}

// ConstructStruct1 runs a single child, promoting a recoverable miss to a
// "missing required" error instead of letting it escape as [MissingError].
func ConstructStruct1[A, T any](pa Parser[A], f func(A) T) Parser[T] {
	meta := metaAnd(pa.meta)
	return newParser(meta, func(buf *ArgBuffer) (T, error) {
		var zero T
		var firstMissing *Meta
		av, aerr := pa.run(buf)
		if fatal, abort := stepChild(pa.meta, aerr, &firstMissing); abort {
			return zero, fatal
		}
		if firstMissing != nil {
			return zero, RequiredError{Name: firstMissing.requiredName()}
		}
		return f(av), nil
	})
}

// ConstructStruct2 combines two child parsers into one producing T.
func ConstructStruct2[A, B, T any](pa Parser[A], pb Parser[B], f func(A, B) T) Parser[T] {
	meta := metaAnd(pa.meta, pb.meta)
	return newParser(meta, func(buf *ArgBuffer) (T, error) {
		var zero T
		var firstMissing *Meta
		av, aerr := pa.run(buf)
		if fatal, abort := stepChild(pa.meta, aerr, &firstMissing); abort {
			return zero, fatal
		}
		bv, berr := pb.run(buf)
		if fatal, abort := stepChild(pb.meta, berr, &firstMissing); abort {
			return zero, fatal
		}
		if firstMissing != nil {
			return zero, RequiredError{Name: firstMissing.requiredName()}
		}
		return f(av, bv), nil
	})
}

// ConstructStruct3 combines three child parsers into one producing T.
func ConstructStruct3[A, B, C, T any](pa Parser[A], pb Parser[B], pc Parser[C], f func(A, B, C) T) Parser[T] {
	meta := metaAnd(pa.meta, pb.meta, pc.meta)
	return newParser(meta, func(buf *ArgBuffer) (T, error) {
		var zero T
		var firstMissing *Meta
		av, aerr := pa.run(buf)
		if fatal, abort := stepChild(pa.meta, aerr, &firstMissing); abort {
			return zero, fatal
		}
		bv, berr := pb.run(buf)
		if fatal, abort := stepChild(pb.meta, berr, &firstMissing); abort {
			return zero, fatal
		}
		cv, cerr := pc.run(buf)
		if fatal, abort := stepChild(pc.meta, cerr, &firstMissing); abort {
			return zero, fatal
		}
		if firstMissing != nil {
			return zero, RequiredError{Name: firstMissing.requiredName()}
		}
		return f(av, bv, cv), nil
	})
}

// ConstructStruct4 combines four child parsers into one producing T.
func ConstructStruct4[A, B, C, D, T any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], f func(A, B, C, D) T) Parser[T] {
	meta := metaAnd(pa.meta, pb.meta, pc.meta, pd.meta)
	return newParser(meta, func(buf *ArgBuffer) (T, error) {
		var zero T
		var firstMissing *Meta
		av, aerr := pa.run(buf)
		if fatal, abort := stepChild(pa.meta, aerr, &firstMissing); abort {
			return zero, fatal
		}
		bv, berr := pb.run(buf)
		if fatal, abort := stepChild(pb.meta, berr, &firstMissing); abort {
			return zero, fatal
		}
		cv, cerr := pc.run(buf)
		if fatal, abort := stepChild(pc.meta, cerr, &firstMissing); abort {
			return zero, fatal
		}
		dv, derr := pd.run(buf)
		if fatal, abort := stepChild(pd.meta, derr, &firstMissing); abort {
			return zero, fatal
		}
		if firstMissing != nil {
			return zero, RequiredError{Name: firstMissing.requiredName()}
		}
		return f(av, bv, cv, dv), nil
	})
}

// ConstructStruct5 combines five child parsers into one producing T.
func ConstructStruct5[A, B, C, D, E, T any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], f func(A, B, C, D, E) T) Parser[T] {
	meta := metaAnd(pa.meta, pb.meta, pc.meta, pd.meta, pe.meta)
	return newParser(meta, func(buf *ArgBuffer) (T, error) {
		var zero T
		var firstMissing *Meta
		av, aerr := pa.run(buf)
		if fatal, abort := stepChild(pa.meta, aerr, &firstMissing); abort {
			return zero, fatal
		}
		bv, berr := pb.run(buf)
		if fatal, abort := stepChild(pb.meta, berr, &firstMissing); abort {
			return zero, fatal
		}
		cv, cerr := pc.run(buf)
		if fatal, abort := stepChild(pc.meta, cerr, &firstMissing); abort {
			return zero, fatal
		}
		dv, derr := pd.run(buf)
		if fatal, abort := stepChild(pd.meta, derr, &firstMissing); abort {
			return zero, fatal
		}
		ev, eerr := pe.run(buf)
		if fatal, abort := stepChild(pe.meta, eerr, &firstMissing); abort {
			return zero, fatal
		}
		if firstMissing != nil {
			return zero, RequiredError{Name: firstMissing.requiredName()}
		}
		return f(av, bv, cv, dv, ev), nil
	})
}

// ConstructStruct6 combines six child parsers into one producing T.
func ConstructStruct6[A, B, C, D, E, F, T any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], pf Parser[F], f func(A, B, C, D, E, F) T) Parser[T] {
	meta := metaAnd(pa.meta, pb.meta, pc.meta, pd.meta, pe.meta, pf.meta)
	return newParser(meta, func(buf *ArgBuffer) (T, error) {
		var zero T
		var firstMissing *Meta
		av, aerr := pa.run(buf)
		if fatal, abort := stepChild(pa.meta, aerr, &firstMissing); abort {
			return zero, fatal
		}
		bv, berr := pb.run(buf)
		if fatal, abort := stepChild(pb.meta, berr, &firstMissing); abort {
			return zero, fatal
		}
		cv, cerr := pc.run(buf)
		if fatal, abort := stepChild(pc.meta, cerr, &firstMissing); abort {
			return zero, fatal
		}
		dv, derr := pd.run(buf)
		if fatal, abort := stepChild(pd.meta, derr, &firstMissing); abort {
			return zero, fatal
		}
		ev, eerr := pe.run(buf)
		if fatal, abort := stepChild(pe.meta, eerr, &firstMissing); abort {
			return zero, fatal
		}
		fv, ferr := pf.run(buf)
		if fatal, abort := stepChild(pf.meta, ferr, &firstMissing); abort {
			return zero, fatal
		}
		if firstMissing != nil {
			return zero, RequiredError{Name: firstMissing.requiredName()}
		}
		return f(av, bv, cv, dv, ev, fv), nil
	})
}
