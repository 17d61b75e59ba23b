package blog

// PageSize is the fixed number of posts per listing page.
const PageSize = 10

// Pagination describes one page window over a known total.
type Pagination struct {
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// paginate clamps a requested page number into the valid range: pages below
// one become the first page, pages past the end become the last page. An empty
// set still has a single (empty) page.
func paginate(totalItems, page, pageSize int) Pagination {
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p Pagination) PrevPage() int {
	if p.HasPrev() {
		return p.Page - 1
	}
	return p.Page
}

func (p Pagination) NextPage() int {
	if p.HasNext() {
		return p.Page + 1
	}
	return p.Page
}

// PostPage is one listing page of posts with its pagination state.
type PostPage struct {
	Posts []Post
	Pagination
}
