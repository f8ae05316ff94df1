package catalog

import (
	"errors"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func prices(items []Item) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.Price.IntPart()
	}
	return out
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestFilterView_Sort(t *testing.T) {
	seed := DefaultSeed()

	tests := []struct {
		name    string
		sort    SortConfig
		wantIDs []string
	}{
		{"price asc keeps equal prices in input order", SortConfig{SortByPrice, SortAsc}, []string{"4", "2", "7", "6", "1", "3", "5", "8"}},
		{"price desc keeps equal prices in input order", SortConfig{SortByPrice, SortDesc}, []string{"5", "8", "3", "1", "6", "7", "2", "4"}},
		{"quantity asc", SortConfig{SortByQuantity, SortAsc}, []string{"8", "7", "3", "2", "5", "6", "1", "4"}},
		{"name asc", SortConfig{SortByName, SortAsc}, []string{"5", "1", "6", "7", "4", "8", "2", "3"}},
		{"name desc", SortConfig{SortByName, SortDesc}, []string{"3", "2", "8", "4", "7", "6", "1", "5"}},
		{"zero sort defaults to name asc", SortConfig{}, []string{"5", "1", "6", "7", "4", "8", "2", "3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterView(seed, Criteria{Sort: tc.sort}))
			if !slices.Equal(got, tc.wantIDs) {
				t.Errorf("got %v, want %v", got, tc.wantIDs)
			}
		})
	}
}

func TestFilterView_DoesNotMutateInput(t *testing.T) {
	seed := DefaultSeed()
	before := prices(seed)

	FilterView(seed, Criteria{Sort: SortConfig{SortByPrice, SortAsc}})

	want := []int64{299, 199, 399, 149, 449, 279, 249, 449}
	if !slices.Equal(before, want) || !slices.Equal(prices(seed), want) {
		t.Errorf("input reordered: %v", prices(seed))
	}
}

func TestFilterView_SearchAndCategory(t *testing.T) {
	seed := DefaultSeed()

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{"search matches name case-insensitively", Criteria{Search: "CUP"}, []string{"8", "3"}},
		{"search matches category", Criteria{Search: "fudge"}, []string{"5"}},
		{"search on category name", Criteria{Search: "macarons"}, []string{"7", "2"}},
		{"category filter", Criteria{Category: "Chocolates"}, []string{"1", "6"}},
		{"All means no category filter", Criteria{Category: CategoryAll, Search: "mac"}, []string{"7", "2"}},
		{"search and category combine", Criteria{Search: "mint", Category: "Macarons"}, []string{}},
		{"no match", Criteria{Search: "licorice"}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterView(seed, tc.criteria))
			if !slices.Equal(got, tc.wantIDs) {
				t.Errorf("got %v, want %v", got, tc.wantIDs)
			}
		})
	}
}

func TestFilterView_NameOrderIgnoresByteCase(t *testing.T) {
	items := []Item{
		{ID: "c", Name: "cherry", Price: decimal.NewFromInt(1)},
		{ID: "b", Name: "Banana", Price: decimal.NewFromInt(1)},
		{ID: "a", Name: "apple", Price: decimal.NewFromInt(1)},
	}
	got := ids(FilterView(items, Criteria{}))
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		field, order string
		want         SortConfig
		wantErr      error
	}{
		{"", "", DefaultSort, nil},
		{"price", "", SortConfig{SortByPrice, SortAsc}, nil},
		{"Quantity", "DESC", SortConfig{SortByQuantity, SortDesc}, nil},
		{"weight", "asc", SortConfig{}, ErrInvalidSort},
		{"name", "sideways", SortConfig{}, ErrInvalidSort},
	}
	for _, tc := range tests {
		got, err := ParseSort(tc.field, tc.order)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("ParseSort(%q, %q) err = %v, want %v", tc.field, tc.order, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseSort(%q, %q) = %+v, want %+v", tc.field, tc.order, got, tc.want)
		}
	}
}

func TestCategories(t *testing.T) {
	want := []string{"All", "Chocolates", "Macarons", "Cupcakes", "Candies", "Fudge"}
	if got := Categories(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if IsValidCategory(CategoryAll) {
		t.Error("All must not be a storable category")
	}
}

func TestFilterView_Idempotent(t *testing.T) {
	c := Criteria{Search: "c", Sort: SortConfig{SortByPrice, SortDesc}}
	once := FilterView(DefaultSeed(), c)
	twice := FilterView(once, c)
	if !slices.Equal(ids(once), ids(twice)) {
		t.Errorf("second pass reordered: %v vs %v", ids(once), ids(twice))
	}
}
