package catalog

// PageSize is the number of paintings shown per gallery page.
const PageSize = 5

// fetchCap bounds the count used for page arithmetic, matching the
// source system's 1000-record fetch limit.
const fetchCap = 1000

// Page is one window of a gallery listing plus the navigation state
// the presentation layer needs.
type Page struct {
	Paintings []Painting
	Pg        int
	Max       int
	Pages     []int
	Prev      *int // absent exactly on page 1
	Next      *int // present iff a record exists beyond this page
}

// FetchPage returns page pg (1-based) of the catalog scoped by q.
// Max is ceil(count/PageSize) with a floor of 1. Next is detected by
// over-fetching one record past the page window. A pg beyond Max
// yields an empty page with Next absent and Prev per the usual rule.
func FetchPage(s Store, q ListQuery, pg int) (Page, error) {
	total, err := s.Count(q)
	if err != nil {
		return Page{}, err
	}
	if total > fetchCap {
		total = fetchCap
	}

	max := int(total) / PageSize
	if int(total)%PageSize != 0 {
		max++
	}
	if max == 0 {
		max = 1
	}
	pages := make([]int, 0, max)
	for i := 1; i <= max; i++ {
		pages = append(pages, i)
	}

	offset := (pg - 1) * PageSize
	items, err := s.List(q, PageSize+1, offset)
	if err != nil {
		return Page{}, err
	}

	page := Page{Paintings: items, Pg: pg, Max: max, Pages: pages}
	if len(items) == PageSize+1 {
		next := pg + 1
		page.Next = &next
		page.Paintings = items[:PageSize]
	}
	if prev := pg - 1; prev > 0 {
		page.Prev = &prev
	}
	return page, nil
}
