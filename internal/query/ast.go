package query

import (
	"regexp"

	"github.com/duskwarden/hemosearch/internal/cardmodel"
	"github.com/duskwarden/hemosearch/internal/numbers"
)

// TextCompKind is one of the three ways a text field can be matched.
type TextCompKind int

const (
	Contains TextCompKind = iota
	EqualTo
	HasMatch
)

// TextComparison is a text-matching predicate: substring containment or
// exact equality, evaluated against ascii_clean(text), or a compiled regex,
// evaluated against the lowercased text.
type TextComparison struct {
	Kind  TextCompKind
	Text  string
	Regex *regexp.Regexp
}

// RestrictionKind discriminates the QueryRestriction sum type.
type RestrictionKind int

const (
	RFuzzy RestrictionKind = iota
	RNumberComparison
	RTextComparison
	RHas
	RHasKw
	RKin
	RNot
	RLenientNot
	RGroup
	ROr
	RXor
	RDevours
	RDevouredBy
)

// QueryRestriction is one predicate node in a query's restriction tree.
type QueryRestriction struct {
	Kind RestrictionKind

	// RFuzzy
	FuzzyText string

	// RNumberComparison
	NumberField cardmodel.Number
	Comparison  numbers.Comparison

	// RTextComparison, RHas, RHasKw
	TextField TextComparison
	// RTextComparison only: which text field
	Text cardmodel.Text
	// RHas only: which array field
	Array cardmodel.Array

	// RKin
	Kin cardmodel.KinComparison

	// RNot, RLenientNot, RGroup, RDevours, RDevouredBy
	Sub *Query

	// ROr, RXor
	Left, Right *Query
}

// Ordering is the direction a sort runs in.
type Ordering int

const (
	Ascending Ordering = iota
	Descending
)

// SortKind discriminates how results are ordered.
type SortKind int

const (
	SortNone SortKind = iota
	SortFuzzy
	SortAlphabet
	SortNumeric
)

// Sort describes how a top-level query's results should be ordered.
// Subqueries always carry SortNone: only the outermost query's sort is
// ever applied.
type Sort struct {
	Kind        SortKind
	TextField   cardmodel.Text
	NumberField cardmodel.Number
	Order       Ordering
}

// Query is a parsed search: the bareword name (used for fuzzy ranking),
// the restrictions every matching card must satisfy, and the sort to apply
// (top-level queries only).
type Query struct {
	Name         string
	Restrictions []QueryRestriction
	Sort         Sort
}
