package pagination

import "tesouraria-ibs/models"

// Layout holds the estimated A4 page geometry in CSS pixels (96 dpi)
type Layout struct {
	PageHeight           int
	Padding              int
	HeaderHeight         int
	TableHeaderHeight    int
	FooterHeight         int
	TopSectionBaseHeight int
	ExtraEntryHeight     int
	RowHeight            int
	// MinFirstPageRows floors the first page only
	MinFirstPageRows int
}

// DefaultLayout matches the rendered payment sheet
var DefaultLayout = Layout{
	PageHeight:           1123,
	Padding:              80,
	HeaderHeight:         200,
	TableHeaderHeight:    50,
	FooterHeight:         200,
	TopSectionBaseHeight: 300,
	ExtraEntryHeight:     30,
	RowHeight:            45,
	MinFirstPageRows:     5,
}

// Page is one printable page of a payment sheet
type Page struct {
	Index    int              `json:"index"`
	Expenses []models.Expense `json:"expenses"`
	IsFirst  bool             `json:"isFirst"`
	IsLast   bool             `json:"isLast"`
}

func (l Layout) overheads() int {
	return l.Padding + l.HeaderHeight + l.TableHeaderHeight + l.FooterHeight
}

// TopSectionHeight is the first-page summary block, which grows with each extra entry row
func (l Layout) TopSectionHeight(extraEntryCount int) int {
	return l.TopSectionBaseHeight + extraEntryCount*l.ExtraEntryHeight
}

// FirstPageCapacity is how many expense rows fit under the summary block
func (l Layout) FirstPageCapacity(extraEntryCount int) int {
	available := l.PageHeight - l.overheads() - l.TopSectionHeight(extraEntryCount)
	rows := floorDiv(available, l.RowHeight)
	if rows < l.MinFirstPageRows {
		return l.MinFirstPageRows
	}
	return rows
}

// NextPageCapacity is how many expense rows fit on every page after the first.
// It is not floored.
func (l Layout) NextPageCapacity() int {
	return floorDiv(l.PageHeight-l.overheads(), l.RowHeight)
}

// Plan splits expenses into pages in their original order.
// It always returns at least one page; the first page carries the summary.
func (l Layout) Plan(expenses []models.Expense, extraEntryCount int) []Page {
	remaining := expenses
	first := take(&remaining, l.FirstPageCapacity(extraEntryCount))
	pages := []Page{{
		Index:    1,
		Expenses: first,
		IsFirst:  true,
		IsLast:   len(remaining) == 0,
	}}

	// a layout with no room for a row on later pages still has to make progress
	next := l.NextPageCapacity()
	if next < 1 {
		next = 1
	}

	for len(remaining) > 0 {
		rows := take(&remaining, next)
		pages = append(pages, Page{
			Index:    len(pages) + 1,
			Expenses: rows,
			IsLast:   len(remaining) == 0,
		})
	}
	return pages
}

// Plan paginates with DefaultLayout
func Plan(expenses []models.Expense, extraEntryCount int) []Page {
	return DefaultLayout.Plan(expenses, extraEntryCount)
}

// take removes up to n items from the front of *items and returns a copy of them
func take(items *[]models.Expense, n int) []models.Expense {
	if n > len(*items) {
		n = len(*items)
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.Expense, n)
	copy(out, (*items)[:n])
	*items = (*items)[n:]
	return out
}

// floorDiv rounds toward negative infinity like Math.floor
func floorDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
