package domain

type PaginationState struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	ItemsPerPage int `json:"itemsPerPage"`
}

func NewPagination(itemsPerPage, count int) PaginationState {
	p := PaginationState{CurrentPage: 1, ItemsPerPage: itemsPerPage}
	p.Recompute(count)
	return p
}

// Recompute sets TotalPages to ceil(count / ItemsPerPage). CurrentPage is left untouched.
func (p *PaginationState) Recompute(count int) {
	if p.ItemsPerPage <= 0 || count <= 0 {
		p.TotalPages = 0
		return
	}
	p.TotalPages = (count + p.ItemsPerPage - 1) / p.ItemsPerPage
}

func (p *PaginationState) NextPage() {
	if p.CurrentPage < p.TotalPages {
		p.CurrentPage++
	}
}

func (p *PaginationState) PrevPage() {
	if p.CurrentPage > 1 {
		p.CurrentPage--
	}
}

// GoToPage moves to page, clamped to [1, TotalPages].
func (p *PaginationState) GoToPage(page int) {
	if page > p.TotalPages {
		page = p.TotalPages
	}
	if page < 1 {
		page = 1
	}
	p.CurrentPage = page
}

// Bounds returns the [start, end) slice bounds of the current page over n items.
func (p *PaginationState) Bounds(n int) (int, int) {
	start := (p.CurrentPage - 1) * p.ItemsPerPage
	if start < 0 || start > n {
		return n, n
	}
	end := start + p.ItemsPerPage
	if end > n {
		end = n
	}
	return start, end
}
