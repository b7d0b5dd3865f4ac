package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesouraria-ibs/models"
)

func makeExpenses(n int) []models.Expense {
	out := make([]models.Expense, n)
	for i := range out {
		out[i] = models.Expense{
			ID:          fmt.Sprintf("e%d", i+1),
			Date:        "2025-03-07",
			Description: fmt.Sprintf("Despesa %d", i+1),
			Value:       models.Money(1000 * (i + 1)),
		}
	}
	return out
}

// twelveTwenty fits 12 rows on the first page and 20 on the rest
var twelveTwenty = Layout{
	PageHeight:           600,
	TopSectionBaseHeight: 240,
	RowHeight:            30,
	MinFirstPageRows:     5,
}

func TestDefaultLayout_Capacities(t *testing.T) {
	assert.Equal(t, 6, DefaultLayout.FirstPageCapacity(0))
	assert.Equal(t, 5, DefaultLayout.FirstPageCapacity(1))
	assert.Equal(t, 5, DefaultLayout.FirstPageCapacity(10), "floored at 5")
	assert.Equal(t, 13, DefaultLayout.NextPageCapacity())
}

func TestPlan_NoExpensesYieldsOnePage(t *testing.T) {
	pages := Plan(nil, 0)

	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Index)
	assert.True(t, pages[0].IsFirst)
	assert.True(t, pages[0].IsLast)
	assert.Empty(t, pages[0].Expenses)
}

func TestPlan_SplitsAcrossPages(t *testing.T) {
	require.Equal(t, 12, twelveTwenty.FirstPageCapacity(0))
	require.Equal(t, 20, twelveTwenty.NextPageCapacity())

	expenses := makeExpenses(15)
	pages := twelveTwenty.Plan(expenses, 0)

	require.Len(t, pages, 2)
	assert.Len(t, pages[0].Expenses, 12)
	assert.True(t, pages[0].IsFirst)
	assert.False(t, pages[0].IsLast)
	assert.Len(t, pages[1].Expenses, 3)
	assert.False(t, pages[1].IsFirst)
	assert.True(t, pages[1].IsLast)
	assert.Equal(t, "e13", pages[1].Expenses[0].ID)
}

func TestPlan_SinglePageWhenEverythingFits(t *testing.T) {
	pages := Plan(makeExpenses(6), 0)

	require.Len(t, pages, 1)
	assert.True(t, pages[0].IsFirst)
	assert.True(t, pages[0].IsLast)
}

func TestPlan_PreservesOrderAndCount(t *testing.T) {
	expenses := makeExpenses(40)
	pages := Plan(expenses, 2)

	var seen []string
	for i, p := range pages {
		assert.Equal(t, i+1, p.Index)
		assert.Equal(t, i == 0, p.IsFirst)
		assert.Equal(t, i == len(pages)-1, p.IsLast)
		for _, e := range p.Expenses {
			seen = append(seen, e.ID)
		}
	}
	require.Len(t, seen, 40)
	for i, id := range seen {
		assert.Equal(t, expenses[i].ID, id)
	}
	// 5 on the first page, then 13 per page
	assert.Len(t, pages, 4)
	assert.Len(t, pages[0].Expenses, 5)
	assert.Len(t, pages[3].Expenses, 9)
}

func TestFirstPageCapacity_ShrinksWithExtraEntries(t *testing.T) {
	layout := DefaultLayout
	layout.RowHeight = 10

	prev := layout.FirstPageCapacity(0)
	for n := 1; n <= 20; n++ {
		c := layout.FirstPageCapacity(n)
		if prev > layout.MinFirstPageRows {
			assert.Less(t, c, prev, "extra entries=%d", n)
		} else {
			assert.Equal(t, layout.MinFirstPageRows, c)
		}
		assert.GreaterOrEqual(t, c, layout.MinFirstPageRows)
		prev = c
	}
}

func TestPlan_IsDeterministic(t *testing.T) {
	expenses := makeExpenses(30)
	assert.Equal(t, Plan(expenses, 3), Plan(expenses, 3))
}

func TestPlan_DoesNotAliasInput(t *testing.T) {
	expenses := makeExpenses(3)
	pages := Plan(expenses, 0)

	pages[0].Expenses[0].Description = "changed"
	assert.Equal(t, "Despesa 1", expenses[0].Description)
}
