package services

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page selects a window of a listing. CurrentPage starts at 1.
type Page struct {
	CurrentPage int
	PageSize    int
}

func (p Page) normalized() Page {
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p Page) Limit() int { return p.normalized().PageSize }

func (p Page) Offset() int {
	n := p.normalized()
	return (n.CurrentPage - 1) * n.PageSize
}
