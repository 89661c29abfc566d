package catalog

import (
	"sort"
	"sync"
)

// MemStore is an in-memory Store with the same contract as GormStore.
// It backs the test suite and local development without a database.
type MemStore struct {
	mu        sync.Mutex
	paintings []Painting
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

// matches returns a filtered, ordered copy of the catalog.
func (s *MemStore) matches(q ListQuery) []Painting {
	out := make([]Painting, 0, len(s.paintings))
	for _, p := range s.paintings {
		switch q.Field {
		case "series":
			if p.Series != q.Value {
				continue
			}
		case "size":
			if p.Size != q.Value {
				continue
			}
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch q.Order {
		case OrderPriceAsc:
			return out[i].Price < out[j].Price
		case OrderPriceDesc:
			return out[i].Price > out[j].Price
		default:
			return out[i].IDNumber < out[j].IDNumber
		}
	})
	return out
}

func (s *MemStore) List(q ListQuery, limit, offset int) ([]Painting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.matches(q)
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (s *MemStore) Count(q ListQuery) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.matches(q))), nil
}

func (s *MemStore) ByIDNumber(idnumber int) (*Painting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.paintings {
		if p.IDNumber == idnumber {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) Insert(p *Painting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	max := 0
	for _, existing := range s.paintings {
		if existing.Title == p.Title || existing.Filename == p.Filename {
			return ErrDuplicate
		}
		if existing.IDNumber > max {
			max = existing.IDNumber
		}
	}
	p.IDNumber = max + 1
	s.paintings = append(s.paintings, *p)
	return nil
}

func (s *MemStore) Update(p *Painting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.paintings {
		if existing.IDNumber == p.IDNumber {
			s.paintings[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemStore) Delete(idnumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.paintings {
		if p.IDNumber == idnumber {
			s.paintings = append(s.paintings[:i], s.paintings[i+1:]...)
			return nil
		}
	}
	return nil
}
