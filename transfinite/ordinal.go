package transfinite

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Term is one coefficient·ω^exponent summand of a Cantor normal form.
type Term struct {
	Coefficient uint64
	Exponent    uint64
}

func (t Term) String() string {
	if t.Exponent == 0 {
		return strconv.FormatUint(t.Coefficient, 10)
	}
	var sb strings.Builder
	sb.WriteString("ω")
	if t.Exponent > 1 {
		sb.WriteByte('^')
		sb.WriteString(strconv.FormatUint(t.Exponent, 10))
	}
	if t.Coefficient != 1 {
		sb.WriteString("·")
		sb.WriteString(strconv.FormatUint(t.Coefficient, 10))
	}
	return sb.String()
}

// Ordinal is either a finite count or a transfinite value in Cantor normal form.
//
// The zero value is the finite ordinal 0. A transfinite ordinal always has a
// leading term with a positive exponent; terms are exponent-descending and
// carry no zero coefficients. The term slice is never mutated after
// construction, so copies of an Ordinal may share it.
type Ordinal struct {
	count uint64
	terms []Term
}

// OrdinalOf returns the finite ordinal n.
func OrdinalOf(n uint64) Ordinal {
	return Ordinal{count: n}
}

// Omega returns ω, the first transfinite ordinal.
func Omega() Ordinal {
	return Ordinal{terms: []Term{{Coefficient: 1, Exponent: 1}}}
}

// FromTerms builds an ordinal from Cantor normal form terms given in
// strictly decreasing exponent order. Zero coefficients are dropped.
func FromTerms(terms ...Term) (Ordinal, error) {
	for i := 1; i < len(terms); i++ {
		if terms[i].Exponent >= terms[i-1].Exponent {
			return Ordinal{}, fmt.Errorf("%w: exponents must strictly decrease, got %s before %s",
				ErrMalformedOrdinal, terms[i-1], terms[i])
		}
	}
	return normalize(terms), nil
}

// normalize copies sorted terms, drops zero coefficients and collapses a
// lone finite term into a finite ordinal.
func normalize(terms []Term) Ordinal {
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		if t.Coefficient != 0 {
			out = append(out, t)
		}
	}
	switch {
	case len(out) == 0:
		return Ordinal{}
	case len(out) == 1 && out[0].Exponent == 0:
		return Ordinal{count: out[0].Coefficient}
	}
	return Ordinal{terms: out}
}

func (o Ordinal) IsFinite() bool {
	return o.terms == nil
}

func (o Ordinal) IsTransfinite() bool {
	return o.terms != nil
}

// IsLimit reports whether o is a transfinite ordinal without a finite tail,
// i.e. one that has no predecessor.
func (o Ordinal) IsLimit() bool {
	return o.IsTransfinite() && o.terms[len(o.terms)-1].Exponent != 0
}

// Terms returns a copy of the Cantor normal form of o. A finite n > 0 is a
// single term with exponent 0; zero has no terms.
func (o Ordinal) Terms() []Term {
	if o.IsFinite() {
		if o.count == 0 {
			return nil
		}
		return []Term{{Coefficient: o.count}}
	}
	return slices.Clone(o.terms)
}

// FiniteCount returns o as a plain count.
func (o Ordinal) FiniteCount() (uint64, error) {
	if o.IsTransfinite() {
		return 0, fmt.Errorf("%w: %s is not finite", ErrInvalidType, o)
	}
	return o.count, nil
}

// Compare returns -1, 0 or +1 when o is less than, equal to or greater than other.
func (o Ordinal) Compare(other Ordinal) int {
	switch {
	case o.IsFinite() && other.IsFinite():
		return cmp.Compare(o.count, other.count)
	case o.IsFinite():
		return -1
	case other.IsFinite():
		return 1
	}
	a, b := o.terms, other.terms
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i].Exponent, b[i].Exponent); c != 0 {
			return c
		}
		if c := cmp.Compare(a[i].Coefficient, b[i].Coefficient); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func (o Ordinal) Equal(other Ordinal) bool {
	return o.Compare(other) == 0
}

func (o Ordinal) Less(other Ordinal) bool {
	return o.Compare(other) < 0
}

// Successor returns o+1.
func (o Ordinal) Successor() Ordinal {
	if o.IsFinite() {
		return OrdinalOf(o.count + 1)
	}
	return o.plusCount(1)
}

// Predecessor returns the ordinal whose successor is o. Zero and limit
// ordinals have none.
func (o Ordinal) Predecessor() (Ordinal, error) {
	if o.IsFinite() {
		if o.count == 0 {
			return Ordinal{}, fmt.Errorf("%w: 0 has no predecessor", ErrTransfiniteArithmetic)
		}
		return OrdinalOf(o.count - 1), nil
	}
	if o.IsLimit() {
		return Ordinal{}, fmt.Errorf("%w: limit ordinal %s has no predecessor", ErrTransfiniteArithmetic, o)
	}
	terms := slices.Clone(o.terms)
	terms[len(terms)-1].Coefficient--
	return normalize(terms), nil
}

// plusCount grows or creates the trailing exponent-0 term of a transfinite o.
func (o Ordinal) plusCount(n uint64) Ordinal {
	if n == 0 {
		return o
	}
	terms := slices.Clone(o.terms)
	if last := len(terms) - 1; terms[last].Exponent == 0 {
		terms[last].Coefficient += n
	} else {
		terms = append(terms, Term{Coefficient: n})
	}
	return Ordinal{terms: terms}
}

// Add returns o+other. Addition is not commutative: 1+ω = ω but ω+1 > ω.
func (o Ordinal) Add(other Ordinal) Ordinal {
	switch {
	case o.IsFinite() && other.IsFinite():
		return OrdinalOf(o.count + other.count)
	case o.IsFinite():
		return other
	case other.IsFinite():
		return o.plusCount(other.count)
	}
	switch c := o.Compare(other); {
	case c < 0:
		return other
	case c == 0:
		return o.scale(2)
	}
	return mergeTerms(o.terms, other.terms)
}

// mergeTerms sums two exponent-descending term lists by exponent.
func mergeTerms(a, b []Term) Ordinal {
	out := make([]Term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Exponent > b[j].Exponent:
			out = append(out, a[i])
			i++
		case a[i].Exponent < b[j].Exponent:
			out = append(out, b[j])
			j++
		default:
			out = append(out, Term{Coefficient: a[i].Coefficient + b[j].Coefficient, Exponent: a[i].Exponent})
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return normalize(out)
}

// Multiply returns o·other.
func (o Ordinal) Multiply(other Ordinal) Ordinal {
	switch {
	case o.IsFinite() && other.IsFinite():
		return OrdinalOf(o.count * other.count)
	case o.IsFinite():
		if o.count == 0 {
			return Ordinal{}
		}
		return other
	case other.IsFinite():
		return o.scale(other.count)
	}
	byExponent := make(map[uint64]uint64, len(o.terms)*len(other.terms))
	for _, l := range o.terms {
		for _, r := range other.terms {
			byExponent[l.Exponent+r.Exponent] += l.Coefficient * r.Coefficient
		}
	}
	terms := make([]Term, 0, len(byExponent))
	for e, c := range byExponent {
		terms = append(terms, Term{Coefficient: c, Exponent: e})
	}
	slices.SortFunc(terms, func(a, b Term) int {
		return cmp.Compare(b.Exponent, a.Exponent)
	})
	return normalize(terms)
}

func (o Ordinal) scale(n uint64) Ordinal {
	terms := slices.Clone(o.terms)
	for i := range terms {
		terms[i].Coefficient *= n
	}
	return normalize(terms)
}

// Subtract returns the ordinal d such that other+d = o.
func (o Ordinal) Subtract(other Ordinal) (Ordinal, error) {
	switch {
	case o.IsFinite() && other.IsFinite():
		if o.count < other.count {
			return Ordinal{}, fmt.Errorf("%w: %d - %d", ErrTransfiniteArithmetic, o.count, other.count)
		}
		return OrdinalOf(o.count - other.count), nil
	case o.IsFinite():
		return Ordinal{}, fmt.Errorf("%w: %s - %s", ErrTransfiniteArithmetic, o, other)
	case other.IsFinite():
		return o, nil
	}
	a, b := o.terms, other.terms
	for len(b) > 0 {
		if len(a) == 0 {
			return Ordinal{}, fmt.Errorf("%w: %s - %s", ErrTransfiniteArithmetic, o, other)
		}
		switch {
		case a[0].Exponent > b[0].Exponent:
			return normalize(a), nil
		case a[0].Exponent < b[0].Exponent, a[0].Coefficient < b[0].Coefficient:
			return Ordinal{}, fmt.Errorf("%w: %s - %s", ErrTransfiniteArithmetic, o, other)
		case a[0].Coefficient > b[0].Coefficient:
			head := Term{Coefficient: a[0].Coefficient - b[0].Coefficient, Exponent: a[0].Exponent}
			return normalize(append([]Term{head}, a[1:]...)), nil
		}
		a, b = a[1:], b[1:]
	}
	return normalize(a), nil
}

// String renders o in Cantor normal form, e.g. "ω^2·3+ω+5".
func (o Ordinal) String() string {
	if o.IsFinite() {
		return strconv.FormatUint(o.count, 10)
	}
	parts := make([]string, len(o.terms))
	for i, t := range o.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, "+")
}

// Hash is stable across processes and equal for equal ordinals.
func (o Ordinal) Hash() uint64 {
	return xxhash.Sum64String(o.String())
}
