package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/pkg/jalali"
)

func date(y, m, d int) jalali.GregorianDate {
	return jalali.GregorianDate{Year: y, Month: m, Day: d}
}

func datePtr(y, m, d int) *jalali.GregorianDate {
	g := date(y, m, d)
	return &g
}

// cellsWith returns the indexes of the cells that carry the task with the given ID.
func cellsWith(days []CalendarDay, id string) []int {
	var idx []int
	for i, day := range days {
		for _, task := range day.Tasks {
			if task.ID == id {
				idx = append(idx, i)
			}
		}
	}
	return idx
}

func TestBuildMonthGrid_Nowruz1403(t *testing.T) {
	reference := date(2024, 3, 20)

	grid, err := BuildMonthGrid(reference, reference, nil, nil)
	require.NoError(t, err)

	// March 2024 starts on a Friday, so the grid opens on Saturday 24 February.
	assert.Equal(t, date(2024, 2, 24), grid.Days[0].Date)
	assert.Equal(t, jalali.Date{Year: 1402, Month: 12, Day: 5}, grid.Days[0].Jalali)
	assert.False(t, grid.Days[0].InCurrentMonth)

	nowruz := grid.Days[25]
	assert.Equal(t, reference, nowruz.Date)
	assert.Equal(t, jalali.Date{Year: 1403, Month: 1, Day: 1}, nowruz.Jalali)
	assert.True(t, nowruz.IsToday)
	assert.True(t, nowruz.InCurrentMonth)

	assert.Equal(t, date(2024, 3, 31), grid.Days[36].Date)
	assert.True(t, grid.Days[36].InCurrentMonth)
	assert.False(t, grid.Days[37].InCurrentMonth)
	assert.Equal(t, date(2024, 4, 5), grid.Days[GridSize-1].Date)
}

func TestBuildMonthGrid_Invariants(t *testing.T) {
	for year := 1995; year <= 2035; year++ {
		for month := 1; month <= 12; month++ {
			reference := date(year, month, 15)
			grid, err := BuildMonthGrid(reference, reference, nil, nil)
			require.NoError(t, err)

			assert.Len(t, grid.Days, GridSize)
			assert.Equal(t, 0, jalali.WeekdayIndex(grid.Days[0].Date), "%s", reference)

			current, today := 0, 0
			sawFirst, sawLast := false, false
			lastDay := ShiftMonth(reference, 1).AddDays(-1)
			for i, day := range grid.Days {
				if i > 0 {
					assert.Equal(t, grid.Days[i-1].Date.AddDays(1), day.Date)
				}
				if day.InCurrentMonth {
					current++
				}
				if day.IsToday {
					today++
				}
				if day.Date == reference.FirstOfMonth() {
					sawFirst = true
				}
				if day.Date == lastDay {
					sawLast = true
				}
			}
			assert.GreaterOrEqual(t, current, 28)
			assert.Equal(t, 1, today)
			assert.True(t, sawFirst, "%s: first of month missing", reference)
			assert.True(t, sawLast, "%s: last of month missing", reference)
		}
	}
}

func TestBuildMonthGrid_Today(t *testing.T) {
	reference := date(2024, 3, 20)

	t.Run("today outside window", func(t *testing.T) {
		grid, err := BuildMonthGrid(reference, date(2024, 6, 1), nil, nil)
		require.NoError(t, err)
		for _, day := range grid.Days {
			assert.False(t, day.IsToday)
		}
	})

	t.Run("today in leading days", func(t *testing.T) {
		grid, err := BuildMonthGrid(reference, date(2024, 2, 25), nil, nil)
		require.NoError(t, err)
		assert.True(t, grid.Days[1].IsToday)
		assert.False(t, grid.Days[1].InCurrentMonth)
	})

	t.Run("zero today", func(t *testing.T) {
		grid, err := BuildMonthGrid(reference, jalali.GregorianDate{}, nil, nil)
		require.NoError(t, err)
		for _, day := range grid.Days {
			assert.False(t, day.IsToday)
		}
	})
}

func TestBuildMonthGrid_TaskAttachment(t *testing.T) {
	reference := date(2024, 3, 20)
	tasks := []TaskRef{
		{ID: "single", Title: "Standup", Date: date(2024, 3, 5)},
		{ID: "ranged", Title: "Sprint", Date: date(2024, 3, 10), Start: datePtr(2024, 3, 10), End: datePtr(2024, 3, 12)},
		{ID: "hidden", Title: "Secret", Date: date(2024, 3, 5), Private: true},
		{ID: "bad-date", Title: "Broken", Date: date(2024, 2, 30)},
		{ID: "bad-range", Title: "Broken range", Date: date(2024, 3, 7), Start: datePtr(2024, 3, 7), End: &jalali.GregorianDate{}},
		{ID: "reversed", Title: "Backwards", Date: date(2024, 3, 15), Start: datePtr(2024, 3, 15), End: datePtr(2024, 3, 13)},
		{ID: "start-only", Title: "Open ended", Date: date(2024, 3, 18), Start: datePtr(2024, 3, 16)},
		{ID: "spanning", Title: "Quarter", Date: date(2024, 1, 1), Start: datePtr(2024, 1, 1), End: datePtr(2024, 6, 30)},
		{ID: "off-range", Title: "Detached", Date: date(2024, 3, 2), Start: datePtr(2024, 3, 28), End: datePtr(2024, 3, 29)},
	}
	visible := func(task TaskRef) bool { return !task.Private }

	grid, err := BuildMonthGrid(reference, reference, tasks, visible)
	require.NoError(t, err)
	days := grid.Days[:]

	// 24 Feb is index 0, so 1 March is index 6.
	idx := func(day int) int { return day + 5 }

	assert.Equal(t, []int{idx(5)}, cellsWith(days, "single"))
	assert.Equal(t, []int{idx(10), idx(11), idx(12)}, cellsWith(days, "ranged"))
	assert.Empty(t, cellsWith(days, "hidden"))
	assert.Empty(t, cellsWith(days, "bad-date"))
	assert.Empty(t, cellsWith(days, "bad-range"))
	assert.Equal(t, []int{idx(15)}, cellsWith(days, "reversed"))
	assert.Equal(t, []int{idx(18)}, cellsWith(days, "start-only"))
	assert.Len(t, cellsWith(days, "spanning"), GridSize)
	assert.Equal(t, []int{idx(2), idx(28), idx(29)}, cellsWith(days, "off-range"))
}

func TestBuildMonthGrid_PredicateCalledOncePerTask(t *testing.T) {
	reference := date(2024, 3, 20)
	tasks := []TaskRef{
		{ID: "a", Date: date(2024, 3, 1), Start: datePtr(2024, 3, 1), End: datePtr(2024, 3, 20)},
		{ID: "b", Date: date(2024, 3, 2)},
	}

	calls := map[string]int{}
	_, err := BuildMonthGrid(reference, reference, tasks, func(task TaskRef) bool {
		calls[task.ID]++
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, calls)
}

func TestBuildMonthGrid_StableOrder(t *testing.T) {
	reference := date(2024, 3, 20)
	tasks := []TaskRef{
		{ID: "3", Date: date(2024, 3, 20)},
		{ID: "1", Date: date(2024, 3, 19), Start: datePtr(2024, 3, 19), End: datePtr(2024, 3, 21)},
		{ID: "2", Date: date(2024, 3, 20)},
	}

	grid, err := BuildMonthGrid(reference, reference, tasks, nil)
	require.NoError(t, err)

	var ids []string
	for _, task := range grid.Days[25].Tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}

func TestBuildMonthGrid_Idempotent(t *testing.T) {
	reference := date(2023, 12, 5)
	tasks := []TaskRef{
		{ID: "1", Title: "one", Date: date(2023, 12, 1)},
		{ID: "2", Title: "two", Date: date(2023, 11, 28), Start: datePtr(2023, 11, 28), End: datePtr(2023, 12, 3)},
	}

	first, err := BuildMonthGrid(reference, reference, tasks, nil)
	require.NoError(t, err)
	second, err := BuildMonthGrid(reference, reference, tasks, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildMonthGrid_DoesNotMutateInput(t *testing.T) {
	reference := date(2024, 3, 20)
	tasks := []TaskRef{
		{ID: "r", Date: date(2024, 3, 15), Start: datePtr(2024, 3, 15), End: datePtr(2024, 3, 13)},
	}

	_, err := BuildMonthGrid(reference, reference, tasks, nil)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 13), *tasks[0].End)
}

func TestBuildMonthGrid_InvalidReference(t *testing.T) {
	_, err := BuildMonthGrid(date(2024, 2, 30), date(2024, 3, 1), nil, nil)
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
}

func TestMonthGrid_Weeks(t *testing.T) {
	grid, err := BuildMonthGrid(date(2024, 3, 20), date(2024, 3, 20), nil, nil)
	require.NoError(t, err)

	weeks := grid.Weeks()
	assert.Equal(t, grid.Days[0], weeks[0][0])
	assert.Equal(t, grid.Days[25], weeks[3][4])
	assert.Equal(t, grid.Days[41], weeks[5][6])
}

func TestBuildWeek(t *testing.T) {
	tasks := []TaskRef{
		{ID: "w", Date: date(2024, 3, 29), Start: datePtr(2024, 3, 29), End: datePtr(2024, 4, 2)},
	}

	week, err := BuildWeek(date(2024, 3, 31), date(2024, 4, 1), tasks, nil)
	require.NoError(t, err)

	assert.Equal(t, date(2024, 3, 30), week.Days[0].Date)
	assert.Equal(t, date(2024, 4, 5), week.Days[6].Date)
	assert.True(t, week.Days[1].InCurrentMonth)
	assert.False(t, week.Days[2].InCurrentMonth)
	assert.True(t, week.Days[2].IsToday)
	assert.Equal(t, []int{0, 1, 2, 3}, cellsWith(week.Days[:], "w"))
}

func TestBuildDay(t *testing.T) {
	tasks := []TaskRef{
		{ID: "x", Date: date(2024, 3, 20)},
		{ID: "y", Date: date(2024, 3, 21)},
	}

	day, err := BuildDay(date(2024, 3, 20), date(2024, 3, 21), tasks, nil)
	require.NoError(t, err)

	assert.Equal(t, jalali.Date{Year: 1403, Month: 1, Day: 1}, day.Jalali)
	assert.True(t, day.InCurrentMonth)
	assert.False(t, day.IsToday)
	require.Len(t, day.Tasks, 1)
	assert.Equal(t, "x", day.Tasks[0].ID)
}

func TestWindows(t *testing.T) {
	from, to := MonthWindow(date(2024, 3, 20))
	assert.Equal(t, date(2024, 2, 24), from)
	assert.Equal(t, date(2024, 4, 5), to)

	// June 2024 starts on a Saturday: no leading days.
	from, to = MonthWindow(date(2024, 6, 10))
	assert.Equal(t, date(2024, 6, 1), from)
	assert.Equal(t, date(2024, 7, 12), to)

	from, to = WeekWindow(date(2024, 3, 16))
	assert.Equal(t, date(2024, 3, 16), from)
	assert.Equal(t, date(2024, 3, 22), to)
}

func TestShiftMonth(t *testing.T) {
	assert.Equal(t, date(2024, 4, 1), ShiftMonth(date(2024, 3, 31), 1))
	assert.Equal(t, date(2024, 2, 1), ShiftMonth(date(2024, 3, 31), -1))
	assert.Equal(t, date(2023, 12, 1), ShiftMonth(date(2024, 1, 15), -1))
	assert.Equal(t, date(2025, 1, 1), ShiftMonth(date(2024, 12, 15), 1))
	assert.Equal(t, date(2024, 3, 1), ShiftMonth(date(2024, 3, 20), 0))
}
