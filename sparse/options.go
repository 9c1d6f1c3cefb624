// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions, which applies setters in order (last writer wins).
//
// Notes:
//   - Options are resolved once at construction. The resulting policy is
//     stored on the matrix and carried by Clone, ToCSR and ToCOO.
//   - Shape is the only option that is not a policy; it replaces dimension
//     inference and is not carried anywhere.
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictOrder makes constructors check the row-major order
	// invariant. Off: the basic constructors trust the caller and an
	// unsorted input gives undefined reads and conversions.
	DefaultStrictOrder = false

	// DefaultValidateNaNInf rejects NaN/±Inf writes when true. Off, so
	// element arithmetic is exactly the element type's native arithmetic.
	DefaultValidateNaNInf = false
)

const panicShapeInvalid = "sparse: WithShape: rows and cols must be non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	hasShape bool // explicit dimensions supplied
	nRows    int  // valid when hasShape
	nCols    int  // valid when hasShape

	strictOrder    bool // DefaultStrictOrder
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithShape supplies explicit dimensions instead of inferring them from the
// largest stored index. The shape may exceed the data (trailing rows and
// columns read as zero) but must not be smaller; constructors return
// ErrBadShape in that case.
//
// Panics when nRows or nCols is negative (programmer error).
func WithShape(nRows, nCols int) Option {
	if nRows < 0 || nCols < 0 {
		panic(panicShapeInvalid)
	}

	return func(o *Options) {
		o.hasShape = true
		o.nRows = nRows
		o.nCols = nCols
	}
}

// WithStrictOrder makes constructors verify the representation invariant
// (Validate) and fail with ErrUnsorted instead of trusting the caller.
// Complexity: adds O(nnz) to construction.
func WithStrictOrder() Option {
	return func(o *Options) { o.strictOrder = true }
}

// WithNoStrictOrder restores the default trusting constructors.
func WithNoStrictOrder() Option {
	return func(o *Options) { o.strictOrder = false }
}

// WithValidateNaNInf enables the finite-value policy: Set, Add, Store and
// the constructors reject NaN and ±Inf with ErrNaNInf.
// Integer element types are never affected.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value policy (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions resolves user setters over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		strictOrder:    DefaultStrictOrder,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// policy is the part of Options that lives on a matrix after construction.
type policy struct {
	validateNaNInf bool
}

func (o Options) policy() policy {
	return policy{validateNaNInf: o.validateNaNInf}
}

// checkValue applies the finite-value policy to v.
func checkValue[T Number](p policy, v T) error {
	if p.validateNaNInf && isNonFinite(v) {
		return ErrNaNInf
	}

	return nil
}
