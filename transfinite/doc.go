// Package transfinite provides the number types used to measure and index
// lazy sequences that may be infinite.
//
// Two value types live here:
//
//   - Ordinal: a position or length. Finite ordinals are plain counts;
//     transfinite ordinals are kept in Cantor normal form, a sum of
//     coefficient·ω^exponent terms with strictly decreasing exponents.
//   - Cardinal: a magnitude. Either a finite count or one of two named
//     infinite sizes, countable (ℵ₀) and continuum (𝔠).
//
// Both types are immutable values. Every arithmetic method returns a new
// value and never touches its receiver, so ordinals can be shared freely
// between sequences.
//
// Ordinal arithmetic follows these laws:
//
//	n + α        = α                  (finite on the left is absorbed)
//	α + n        = α with its finite tail increased by n
//	α + β, α < β = β
//	α + α        = α·2
//	α + β, α > β = termwise merge by exponent
//	α · n        = every coefficient scaled by n
//	n · α        = α                  (n > 0)
//	α · β        = Σ (c1·c2)·ω^(e1+e2)
//	α - n        = α
//	α - β        = left subtraction on leading terms
//
// Ordinals render and parse in a compact ASCII-friendly form:
//
//	o, _ := transfinite.ParseOrdinal("w^2*3+w+5")
//	fmt.Println(o) // ω^2·3+ω+5
package transfinite
