package catalog

import (
	"errors"
	"sync"

	"gorm.io/gorm"
)

// Store is the catalog's persistence contract. GormStore backs the
// running application; MemStore backs the tests.
type Store interface {
	// List returns one window of the filtered, ordered catalog.
	// A negative limit returns the full result set.
	List(q ListQuery, limit, offset int) ([]Painting, error)

	// Count returns the size of the filtered catalog.
	Count(q ListQuery) (int64, error)

	// ByIDNumber returns the painting with the given idnumber, or
	// ErrNotFound.
	ByIDNumber(idnumber int) (*Painting, error)

	// Insert runs the duplicate check, assigns the next idnumber
	// (1 + current max, or 1 for an empty catalog) and persists the
	// painting as one serialized step. Returns ErrDuplicate when an
	// existing painting shares the title or filename.
	Insert(p *Painting) error

	// Update overwrites every mutable field of the painting with the
	// matching idnumber. No duplicate re-check. Returns ErrNotFound
	// when the idnumber is absent.
	Update(p *Painting) error

	// Delete removes the painting with the given idnumber. Deleting
	// an absent idnumber is a no-op, not an error.
	Delete(idnumber int) error
}

// GormStore persists paintings through gorm. Writes are serialized by
// a single mutex so the read-max/dedup/write sequence of Insert cannot
// race another writer in this process; the write itself runs in a
// transaction. Readers are not serialized.
type GormStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// filtered applies the ListQuery's field filter. Field comes from
// ResolveListQuery's allow-list, so interpolating it is safe.
func (s *GormStore) filtered(q ListQuery) *gorm.DB {
	tx := s.db.Model(&Painting{})
	if q.Field != "" {
		tx = tx.Where(q.Field+" = ?", q.Value)
	}
	return tx
}

func orderClause(o Order) string {
	switch o {
	case OrderPriceAsc:
		return "price ASC"
	case OrderPriceDesc:
		return "price DESC"
	default:
		return "idnumber ASC"
	}
}

func (s *GormStore) List(q ListQuery, limit, offset int) ([]Painting, error) {
	var out []Painting
	err := s.filtered(q).
		Order(orderClause(q.Order)).
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}

func (s *GormStore) Count(q ListQuery) (int64, error) {
	var n int64
	err := s.filtered(q).Count(&n).Error
	return n, err
}

func (s *GormStore) ByIDNumber(idnumber int) (*Painting, error) {
	var p Painting
	err := s.db.First(&p, "idnumber = ?", idnumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) Insert(p *Painting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Indexed uniqueness lookup instead of the full-catalog scan.
		var hits int64
		if err := tx.Model(&Painting{}).
			Where("title = ? OR filename = ?", p.Title, p.Filename).
			Count(&hits).Error; err != nil {
			return err
		}
		if hits > 0 {
			return ErrDuplicate
		}

		var max int
		if err := tx.Model(&Painting{}).
			Select("COALESCE(MAX(idnumber), 0)").
			Scan(&max).Error; err != nil {
			return err
		}
		p.IDNumber = max + 1

		return tx.Create(p).Error
	})
}

func (s *GormStore) Update(p *Painting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Column map rather than a struct so empty values (e.g. a cleared
	// series) still overwrite.
	res := s.db.Model(&Painting{}).
		Where("idnumber = ?", p.IDNumber).
		Updates(map[string]interface{}{
			"title":       p.Title,
			"description": p.Description,
			"filename":    p.Filename,
			"size":        p.Size,
			"price":       p.Price,
			"series":      p.Series,
			"status":      p.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(idnumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Where("idnumber = ?", idnumber).Delete(&Painting{}).Error
}
