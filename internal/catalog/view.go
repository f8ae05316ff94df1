package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultSort is applied when a view is requested without a sort.
var DefaultSort = SortConfig{Field: SortByName, Order: SortAsc}

// ParseSort validates raw field/order strings. Empty values fall back to DefaultSort.
func ParseSort(field, order string) (SortConfig, error) {
	sc := DefaultSort
	if field != "" {
		switch f := SortField(strings.ToLower(field)); f {
		case SortByName, SortByPrice, SortByQuantity:
			sc.Field = f
		default:
			return SortConfig{}, ErrInvalidSort
		}
	}
	if order != "" {
		switch o := SortOrder(strings.ToLower(order)); o {
		case SortAsc, SortDesc:
			sc.Order = o
		default:
			return SortConfig{}, ErrInvalidSort
		}
	}
	return sc, nil
}

// FilterView returns the items matching c, ordered by c.Sort.
// The input slice is never modified. Items comparing equal keep their input order.
func FilterView(items []Item, c Criteria) []Item {
	term := strings.ToLower(c.Search)
	category := c.Category
	if category == "" {
		category = CategoryAll
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(string(it.Category)), term) {
			continue
		}
		if category != CategoryAll && string(it.Category) != category {
			continue
		}
		out = append(out, it)
	}

	sc := c.Sort
	if sc.Field == "" {
		sc.Field = DefaultSort.Field
	}
	if sc.Order == "" {
		sc.Order = DefaultSort.Order
	}
	slices.SortStableFunc(out, comparator(sc))
	return out
}

func comparator(sc SortConfig) func(a, b Item) int {
	var base func(a, b Item) int
	switch sc.Field {
	case SortByPrice:
		base = func(a, b Item) int { return a.Price.Cmp(b.Price) }
	case SortByQuantity:
		base = func(a, b Item) int { return cmp.Compare(a.Quantity, b.Quantity) }
	default:
		// collate.Collator is not safe for concurrent use, one per sort.
		col := collate.New(language.English)
		base = func(a, b Item) int { return col.CompareString(a.Name, b.Name) }
	}

	if sc.Order == SortDesc {
		return func(a, b Item) int { return base(b, a) }
	}
	return base
}

// Categories lists the view filter options in display order, starting with CategoryAll.
func Categories() []string {
	return []string{
		CategoryAll,
		string(CategoryChocolates),
		string(CategoryMacarons),
		string(CategoryCupcakes),
		string(CategoryCandies),
		string(CategoryFudge),
	}
}

// IsValidCategory reports whether c is one of the fixed categories. CategoryAll is not.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryChocolates, CategoryMacarons, CategoryCupcakes, CategoryCandies, CategoryFudge:
		return true
	}
	return false
}
