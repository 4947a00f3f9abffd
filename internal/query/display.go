package query

import (
	"fmt"
	"strings"
)

// String renders a deterministic textual form of the query. This rendering
// is what the evaluator's devoured-by cache keys on (see internal/search),
// so it must be stable for equal ASTs and must not depend on map iteration
// order or pointer identity.
func (q *Query) String() string {
	var sb strings.Builder
	sb.WriteString("Query(")
	if q.Name != "" {
		sb.WriteString(fmt.Sprintf("name=%q ", q.Name))
	}
	for i, r := range q.Restrictions {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (r QueryRestriction) String() string {
	switch r.Kind {
	case RFuzzy:
		return fmt.Sprintf("Fuzzy(%q)", r.FuzzyText)
	case RNumberComparison:
		return fmt.Sprintf("Comparison(%s, %s)", r.NumberField, r.Comparison)
	case RTextComparison:
		return fmt.Sprintf("Text(%s, %s)", r.Text, r.TextField)
	case RHas:
		return fmt.Sprintf("Has(%s, %s)", r.Array, r.TextField)
	case RHasKw:
		return fmt.Sprintf("HasKw(%s)", r.TextField)
	case RKin:
		return fmt.Sprintf("Kin(%s)", r.Kin)
	case RNot:
		return fmt.Sprintf("Not(%s)", r.Sub)
	case RLenientNot:
		return fmt.Sprintf("LenientNot(%s)", r.Sub)
	case RGroup:
		return fmt.Sprintf("Group(%s)", r.Sub)
	case ROr:
		return fmt.Sprintf("Or(%s, %s)", r.Left, r.Right)
	case RXor:
		return fmt.Sprintf("Xor(%s, %s)", r.Left, r.Right)
	case RDevours:
		return fmt.Sprintf("Devours(%s)", r.Sub)
	case RDevouredBy:
		return fmt.Sprintf("DevouredBy(%s)", r.Sub)
	default:
		return "?"
	}
}

func (c TextComparison) String() string {
	switch c.Kind {
	case Contains:
		return fmt.Sprintf("Contains(%q)", c.Text)
	case EqualTo:
		return fmt.Sprintf("EqualTo(%q)", c.Text)
	case HasMatch:
		if c.Regex == nil {
			return "HasMatch(nil)"
		}
		return fmt.Sprintf("HasMatch(/%s/)", c.Regex.String())
	default:
		return "?"
	}
}
