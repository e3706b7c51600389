package ports

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page selects a 1-based page of a listing.
type Page struct {
	Page  int
	Limit int
}

// Normalize applies defaults and caps the limit at MaxPageLimit.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Skip is the number of documents preceding the page.
func (p Page) Skip() int64 {
	n := p.Normalize()
	return int64((n.Page - 1) * n.Limit)
}

// List is one page of T plus the totals needed for pagination.
type List[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// NewList assembles a List, deriving TotalPages from total and p.
func NewList[T any](items []T, total int64, p Page) *List[T] {
	p = p.Normalize()
	if items == nil {
		items = []T{}
	}
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return &List[T]{Items: items, Total: total, Page: p.Page, Limit: p.Limit, TotalPages: pages}
}
