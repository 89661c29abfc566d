package gallery

import "gallery-app/internal/domain/catalog"

// ListResponse carries one gallery page plus the navigation state the
// frontend renders: pg/max/pages for the pager, prev/next links, and
// the echoed filter parameters for building page URLs.
type ListResponse struct {
	Paintings []catalog.Painting `json:"paintings"`
	Pg        int                `json:"pg"`
	Max       int                `json:"max"`
	Pages     []int              `json:"pages"`
	Prev      *int               `json:"prev,omitempty"`
	Next      *int               `json:"next,omitempty"`
	Filter    string             `json:"filter"`
	Value     string             `json:"value"`
	Order     string             `json:"order"`
}

func toListResponse(page catalog.Page, filter, value, order string) ListResponse {
	paintings := page.Paintings
	if paintings == nil {
		paintings = []catalog.Painting{}
	}
	return ListResponse{
		Paintings: paintings,
		Pg:        page.Pg,
		Max:       page.Max,
		Pages:     page.Pages,
		Prev:      page.Prev,
		Next:      page.Next,
		Filter:    filter,
		Value:     value,
		Order:     order,
	}
}
