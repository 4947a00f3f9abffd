package query

import "github.com/duskwarden/hemosearch/internal/cardmodel"

// fieldKind discriminates which part of a card a resolved field name reads.
type fieldKind int

const (
	fkNumber fieldKind = iota
	fkText
	fkArray
	fkKeyword
	fkKin
	fkSortAsc
	fkSortDesc
)

type resolvedField struct {
	kind fieldKind
	num  cardmodel.Number
	txt  cardmodel.Text
	arr  cardmodel.Array
}

// resolveField implements the alias table a query's field names resolve
// through. "d" means defense, not description.
func resolveField(name string) (resolvedField, bool) {
	switch name {
	case "name", "n":
		return resolvedField{kind: fkText, txt: cardmodel.TextName}, true
	case "id":
		return resolvedField{kind: fkText, txt: cardmodel.TextID}, true
	case "description", "desc", "de":
		return resolvedField{kind: fkText, txt: cardmodel.TextDescription}, true
	case "flavortext", "flavor", "ft":
		return resolvedField{kind: fkText, txt: cardmodel.TextFlavorText}, true
	case "type", "t":
		return resolvedField{kind: fkText, txt: cardmodel.TextType}, true
	case "cost", "c":
		return resolvedField{kind: fkNumber, num: cardmodel.NumberCost}, true
	case "flipcost", "flip":
		return resolvedField{kind: fkNumber, num: cardmodel.NumberFlipCost}, true
	case "health", "h", "hp":
		return resolvedField{kind: fkNumber, num: cardmodel.NumberHealth}, true
	case "power", "strength", "damage", "p", "dmg", "str":
		return resolvedField{kind: fkNumber, num: cardmodel.NumberPower}, true
	case "defense", "def", "d":
		return resolvedField{kind: fkNumber, num: cardmodel.NumberDefense}, true
	case "kin", "k":
		return resolvedField{kind: fkKin}, true
	case "function", "fun", "fn", "f":
		return resolvedField{kind: fkArray, arr: cardmodel.ArrayFunctions}, true
	case "keyword", "kw":
		return resolvedField{kind: fkKeyword}, true
	case "sort", "so":
		return resolvedField{kind: fkSortAsc}, true
	case "sortd", "sod":
		return resolvedField{kind: fkSortDesc}, true
	default:
		return resolvedField{}, false
	}
}

// resolveSuperParam implements the independent alias set used only for
// `key:(sub)` subquery parameters; it is not a fallthrough of resolveField.
func resolveSuperParam(name string) (devours bool, ok bool) {
	switch name {
	case "devours", "dev", "de", "devs":
		return true, true
	case "devouredby", "devby", "deby", "dby", "db":
		return false, true
	default:
		return false, false
	}
}
