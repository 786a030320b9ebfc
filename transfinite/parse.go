package transfinite

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOrdinal reads an ordinal written as a '+'-separated list of terms.
// A term is a decimal count or ω (also spelled w) with an optional
// exponent and coefficient: "w", "ω^2", "w*3", "ω^2·3". Terms must appear in
// strictly decreasing exponent order.
func ParseOrdinal(s string) (Ordinal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ordinal{}, fmt.Errorf("%w: empty input", ErrMalformedOrdinal)
	}
	parts := strings.Split(s, "+")
	terms := make([]Term, 0, len(parts))
	for _, p := range parts {
		t, err := parseTerm(strings.TrimSpace(p))
		if err != nil {
			return Ordinal{}, fmt.Errorf("%w: %q: %w", ErrMalformedOrdinal, s, err)
		}
		terms = append(terms, t)
	}
	return FromTerms(terms...)
}

// MustParseOrdinal is like ParseOrdinal but panics on malformed input.
func MustParseOrdinal(s string) Ordinal {
	o, err := ParseOrdinal(s)
	if err != nil {
		panic(err)
	}
	return o
}

func parseTerm(p string) (Term, error) {
	p = strings.ReplaceAll(p, "·", "*")
	var rest string
	switch {
	case strings.HasPrefix(p, "w"):
		rest = p[len("w"):]
	case strings.HasPrefix(p, "ω"):
		rest = p[len("ω"):]
	default:
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Term{}, err
		}
		return Term{Coefficient: n}, nil
	}

	t := Term{Coefficient: 1, Exponent: 1}
	if strings.HasPrefix(rest, "^") {
		end := strings.IndexByte(rest, '*')
		if end < 0 {
			end = len(rest)
		}
		e, err := strconv.ParseUint(rest[1:end], 10, 64)
		if err != nil {
			return Term{}, err
		}
		t.Exponent = e
		rest = rest[end:]
	}
	if strings.HasPrefix(rest, "*") {
		c, err := strconv.ParseUint(rest[1:], 10, 64)
		if err != nil {
			return Term{}, err
		}
		t.Coefficient = c
		rest = ""
	}
	if rest != "" {
		return Term{}, fmt.Errorf("unexpected %q", rest)
	}
	return t, nil
}
