package catalog

import (
	"fmt"
	"testing"
)

// seedAbstract fills the store with n Abstract paintings priced
// 10, 20, ... in insertion order.
func seedAbstract(t *testing.T, s Store, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		p := &Painting{
			Title:       fmt.Sprintf("Abstract %d", i),
			Description: "An abstract painting",
			Filename:    fmt.Sprintf("abstract-%d.jpg", i),
			Size:        "10x14",
			Price:       i * 10,
			Series:      "Abstract",
			Status:      "Available",
		}
		if err := s.Insert(p); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
}

func TestFetchPageEmptyCatalog(t *testing.T) {
	s := NewMemStore()
	page, err := FetchPage(s, ListQuery{}, 1)
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if page.Max != 1 {
		t.Errorf("max = %d, want 1", page.Max)
	}
	if len(page.Pages) != 1 || page.Pages[0] != 1 {
		t.Errorf("pages = %v, want [1]", page.Pages)
	}
	if len(page.Paintings) != 0 || page.Prev != nil || page.Next != nil {
		t.Errorf("empty catalog page = %+v", page)
	}
}

func TestFetchPageMaxCeiling(t *testing.T) {
	cases := []struct{ n, max int }{
		{1, 1}, {4, 1}, {5, 1}, {6, 2}, {10, 2}, {12, 3},
	}
	for _, tc := range cases {
		s := NewMemStore()
		seedAbstract(t, s, tc.n)
		page, err := FetchPage(s, ListQuery{}, 1)
		if err != nil {
			t.Fatalf("n=%d: %v", tc.n, err)
		}
		if page.Max != tc.max {
			t.Errorf("n=%d: max = %d, want %d", tc.n, page.Max, tc.max)
		}
	}
}

func TestFetchPageConcatenationReproducesOrder(t *testing.T) {
	s := NewMemStore()
	seedAbstract(t, s, 12)

	var ids []int
	for pg := 1; pg <= 3; pg++ {
		page, err := FetchPage(s, ListQuery{}, pg)
		if err != nil {
			t.Fatalf("page %d: %v", pg, err)
		}
		for _, p := range page.Paintings {
			ids = append(ids, p.IDNumber)
		}
	}

	if len(ids) != 12 {
		t.Fatalf("collected %d paintings, want 12", len(ids))
	}
	for i, id := range ids {
		if id != i+1 {
			t.Fatalf("position %d: idnumber %d, want %d (ids: %v)", i, id, i+1, ids)
		}
	}
}

func TestFetchPagePrevNextRules(t *testing.T) {
	s := NewMemStore()
	seedAbstract(t, s, 12)

	page, err := FetchPage(s, ListQuery{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if page.Prev != nil {
		t.Errorf("page 1: prev = %d, want absent", *page.Prev)
	}
	if page.Next == nil || *page.Next != 2 {
		t.Errorf("page 1: next = %v, want 2", page.Next)
	}

	page, err = FetchPage(s, ListQuery{}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if page.Prev == nil || *page.Prev != 1 {
		t.Errorf("page 2: prev = %v, want 1", page.Prev)
	}
	if page.Next == nil || *page.Next != 3 {
		t.Errorf("page 2: next = %v, want 3", page.Next)
	}

	// Last page holds 2 paintings, so no extra record is fetched.
	page, err = FetchPage(s, ListQuery{}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Paintings) != 2 {
		t.Errorf("page 3: %d paintings, want 2", len(page.Paintings))
	}
	if page.Next != nil {
		t.Errorf("page 3: next = %d, want absent", *page.Next)
	}
	if page.Prev == nil || *page.Prev != 2 {
		t.Errorf("page 3: prev = %v, want 2", page.Prev)
	}
}

func TestFetchPageBeyondMax(t *testing.T) {
	s := NewMemStore()
	seedAbstract(t, s, 3)

	page, err := FetchPage(s, ListQuery{}, 9)
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if len(page.Paintings) != 0 {
		t.Errorf("out-of-range page has %d paintings", len(page.Paintings))
	}
	if page.Next != nil {
		t.Errorf("out-of-range page: next = %d, want absent", *page.Next)
	}
	if page.Prev == nil || *page.Prev != 8 {
		t.Errorf("out-of-range page: prev = %v, want 8", page.Prev)
	}
}

func TestFetchPageCountCap(t *testing.T) {
	s := NewMemStore()
	seedAbstract(t, s, 1005)

	// Page arithmetic counts at most 1000 records, so 1005 paintings
	// still yield 200 pages.
	page, err := FetchPage(s, ListQuery{}, 1)
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if page.Max != 200 {
		t.Errorf("max = %d, want 200", page.Max)
	}
	if len(page.Pages) != 200 {
		t.Errorf("pages has %d entries, want 200", len(page.Pages))
	}
}

func TestFetchPageFilteredDescendingScenario(t *testing.T) {
	s := NewMemStore()
	seedAbstract(t, s, 12)

	q, err := ResolveListQuery("series", "abstract", "desc")
	if err != nil {
		t.Fatalf("ResolveListQuery: %v", err)
	}

	page, err := FetchPage(s, q, 2)
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if page.Max != 3 {
		t.Errorf("max = %d, want 3", page.Max)
	}
	if page.Prev == nil || *page.Prev != 1 {
		t.Errorf("prev = %v, want 1", page.Prev)
	}
	if page.Next == nil || *page.Next != 3 {
		t.Errorf("next = %v, want 3", page.Next)
	}

	// Page 2 of a descending listing holds ranks 6-10 by price.
	wantPrices := []int{70, 60, 50, 40, 30}
	if len(page.Paintings) != len(wantPrices) {
		t.Fatalf("got %d paintings, want %d", len(page.Paintings), len(wantPrices))
	}
	for i, p := range page.Paintings {
		if p.Price != wantPrices[i] {
			t.Errorf("rank %d: price %d, want %d", 6+i, p.Price, wantPrices[i])
		}
	}
}
