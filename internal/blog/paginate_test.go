package blog

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		page       int
		wantPage   int
		wantPages  int
		wantOffset int
	}{
		{"FirstPage", 25, 1, 1, 3, 0},
		{"MiddlePage", 25, 2, 2, 3, 10},
		{"LastPartialPage", 25, 3, 3, 3, 20},
		{"PageBelowOneClampsToFirst", 25, 0, 1, 3, 0},
		{"NegativePageClampsToFirst", 25, -5, 1, 3, 0},
		{"PagePastEndClampsToLast", 25, 99, 3, 3, 20},
		{"ExactMultipleOfPageSize", 20, 2, 2, 2, 10},
		{"EmptySetHasSingleEmptyPage", 0, 1, 1, 1, 0},
		{"EmptySetClampsAnyPage", 0, 7, 1, 1, 0},
		{"SingleItem", 1, 1, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paginate(tt.totalItems, tt.page, PageSize)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", p.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestPaginationNavigation(t *testing.T) {
	p := paginate(25, 2, PageSize)

	if !p.HasPrev() || !p.HasNext() {
		t.Fatalf("middle page should have both neighbours, got prev=%v next=%v", p.HasPrev(), p.HasNext())
	}
	if p.PrevPage() != 1 || p.NextPage() != 3 {
		t.Errorf("neighbours = %d/%d, want 1/3", p.PrevPage(), p.NextPage())
	}

	first := paginate(25, 1, PageSize)
	if first.HasPrev() {
		t.Error("first page should have no previous page")
	}
	if first.PrevPage() != 1 {
		t.Errorf("PrevPage on first page = %d, want 1", first.PrevPage())
	}

	last := paginate(25, 3, PageSize)
	if last.HasNext() {
		t.Error("last page should have no next page")
	}
	if last.NextPage() != 3 {
		t.Errorf("NextPage on last page = %d, want 3", last.NextPage())
	}
}
