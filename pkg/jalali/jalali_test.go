package jalali

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ptime "github.com/yaa110/go-persian-calendar"
)

func TestToJalali_KnownDates(t *testing.T) {
	tests := []struct {
		name      string
		gregorian GregorianDate
		want      Date
	}{
		{"nowruz 1403", GregorianDate{2024, 3, 20}, Date{1403, 1, 1}},
		{"last day of leap 1403", GregorianDate{2025, 3, 20}, Date{1403, 12, 30}},
		{"nowruz 1404", GregorianDate{2025, 3, 21}, Date{1404, 1, 1}},
		{"nowruz 1402", GregorianDate{2023, 3, 21}, Date{1402, 1, 1}},
		{"last day of 1402", GregorianDate{2024, 3, 19}, Date{1402, 12, 29}},
		{"22 bahman 1357", GregorianDate{1979, 2, 11}, Date{1357, 11, 22}},
		{"first day of mehr", GregorianDate{2025, 9, 23}, Date{1404, 7, 1}},
		{"aban", GregorianDate{2025, 10, 30}, Date{1404, 8, 8}},
		{"gregorian leap day", GregorianDate{2024, 2, 29}, Date{1402, 12, 10}},
		{"epoch", GregorianDate{622, 3, 22}, Date{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToJalali(tt.gregorian)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := ToGregorian(got)
			require.NoError(t, err)
			assert.Equal(t, tt.gregorian, back)
		})
	}
}

func TestToJalali_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		date GregorianDate
	}{
		{"zero value", GregorianDate{}},
		{"february 30", GregorianDate{2024, 2, 30}},
		{"month 13", GregorianDate{2024, 13, 1}},
		{"day before epoch", GregorianDate{622, 3, 21}},
		{"far past", GregorianDate{100, 1, 1}},
		{"far future", GregorianDate{4000, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToJalali(tt.date)
			assert.True(t, errors.Is(err, ErrInvalidDate), "expected ErrInvalidDate, got %v", err)
		})
	}
}

func TestToGregorian_InvalidInput(t *testing.T) {
	for _, d := range []Date{{}, {1403, 0, 1}, {1403, 12, 31}, {1404, 12, 30}, {1403, 7, 31}, {0, 1, 1}, {MaxYear + 1, 1, 1}} {
		_, err := ToGregorian(d)
		assert.ErrorIs(t, err, ErrInvalidDate, "date %s", d)
	}
}

func TestRoundTrip_EveryDay(t *testing.T) {
	start := GregorianDate{1900, 1, 1}
	end := GregorianDate{2100, 12, 31}

	for d := start; !d.After(end); d = d.AddDays(1) {
		j, err := ToJalali(d)
		if err != nil {
			t.Fatalf("ToJalali(%s) failed: %v", d, err)
		}
		if !j.IsValid() {
			t.Fatalf("ToJalali(%s) produced invalid date %s", d, j)
		}
		back, err := ToGregorian(j)
		if err != nil {
			t.Fatalf("ToGregorian(%s) failed: %v", j, err)
		}
		if back != d {
			t.Fatalf("round trip mismatch: %s -> %s -> %s", d, j, back)
		}
	}
}

func TestRoundTrip_RangeEdges(t *testing.T) {
	first, err := ToGregorian(Date{MinYear, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, GregorianDate{622, 3, 22}, first)

	last, err := ToGregorian(Date{MaxYear, 12, MonthLength(MaxYear, 12)})
	require.NoError(t, err)
	j, err := ToJalali(last)
	require.NoError(t, err)
	assert.Equal(t, Date{MaxYear, 12, MonthLength(MaxYear, 12)}, j)

	_, err = ToJalali(last.AddDays(1))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMonthLengthConsistency(t *testing.T) {
	for year := 1300; year <= 1500; year++ {
		for month := 1; month <= 12; month++ {
			length := MonthLength(year, month)

			first, err := ToGregorian(Date{year, month, 1})
			require.NoError(t, err)

			seen := make(map[GregorianDate]bool, length)
			for day := 1; day <= length; day++ {
				g, err := ToGregorian(Date{year, month, day})
				require.NoError(t, err)
				assert.Equal(t, first.AddDays(day-1), g)
				seen[g] = true
			}
			assert.Len(t, seen, length, "%d/%d", year, month)

			next, err := ToJalali(first.AddDays(length))
			require.NoError(t, err)
			want := Date{year, month + 1, 1}
			if month == 12 {
				want = Date{year + 1, 1, 1}
			}
			assert.Equal(t, want, next, "day after %d/%d/%d", year, month, length)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	t.Run("published years", func(t *testing.T) {
		leap := []int{1370, 1375, 1379, 1383, 1387, 1391, 1395, 1399, 1403, 1408}
		common := []int{1371, 1396, 1400, 1401, 1402, 1404, 1405, 1406, 1407}
		for _, y := range leap {
			assert.True(t, IsLeapYear(y), "%d should be leap", y)
		}
		for _, y := range common {
			assert.False(t, IsLeapYear(y), "%d should be common", y)
		}
	})

	t.Run("eight leaps per 33 years", func(t *testing.T) {
		count := 0
		for y := 1300; y < 1333; y++ {
			if IsLeapYear(y) {
				count++
			}
		}
		assert.Equal(t, 8, count)
	})

	t.Run("long-run density", func(t *testing.T) {
		count := 0
		for y := MinYear; y <= MaxYear; y++ {
			if IsLeapYear(y) {
				count++
			}
		}
		density := float64(count) / float64(MaxYear-MinYear+1)
		assert.InDelta(t, 8.0/33.0, density, 0.003)
	})

	t.Run("out of range", func(t *testing.T) {
		assert.False(t, IsLeapYear(0))
		assert.False(t, IsLeapYear(MaxYear+1))
	})

	t.Run("agrees with year length", func(t *testing.T) {
		for y := 1350; y <= 1450; y++ {
			start, err := ToGregorian(Date{y, 1, 1})
			require.NoError(t, err)
			next, err := ToGregorian(Date{y + 1, 1, 1})
			require.NoError(t, err)
			assert.Equal(t, DaysInYear(y), next.DayNumber()-start.DayNumber(), "year %d", y)
		}
	})
}

func TestMonthLength(t *testing.T) {
	assert.Equal(t, 31, MonthLength(1403, 1))
	assert.Equal(t, 31, MonthLength(1403, 6))
	assert.Equal(t, 30, MonthLength(1403, 7))
	assert.Equal(t, 30, MonthLength(1403, 11))
	assert.Equal(t, 30, MonthLength(1403, 12))
	assert.Equal(t, 29, MonthLength(1404, 12))
	assert.Equal(t, 0, MonthLength(1404, 13))
	assert.Equal(t, 0, MonthLength(1404, 0))
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		date GregorianDate
		want int
	}{
		{GregorianDate{2024, 3, 16}, 0}, // Saturday
		{GregorianDate{2024, 3, 17}, 1},
		{GregorianDate{2024, 3, 20}, 4},
		{GregorianDate{2024, 3, 22}, 6}, // Friday
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekdayIndex(tt.date), tt.date.String())
	}
}

func TestWeekday_MatchesTimePackage(t *testing.T) {
	for d := (GregorianDate{1999, 12, 1}); d.Before(GregorianDate{2001, 3, 1}); d = d.AddDays(1) {
		want := d.Time(time.UTC).Weekday()
		if got := d.Weekday(); got != want {
			t.Fatalf("Weekday(%s) = %v, want %v", d, got, want)
		}
	}
}

func TestGregorianArithmetic(t *testing.T) {
	assert.Equal(t, GregorianDate{2024, 3, 1}, GregorianDate{2024, 2, 28}.AddDays(2))
	assert.Equal(t, GregorianDate{2023, 3, 1}, GregorianDate{2023, 2, 28}.AddDays(1))
	assert.Equal(t, GregorianDate{2023, 12, 31}, GregorianDate{2024, 1, 1}.AddDays(-1))
	assert.Equal(t, GregorianDate{2000, 12, 31}, GregorianDate{2000, 1, 1}.AddDays(365))
	assert.Equal(t, GregorianDate{}, GregorianDate{1, 1, 1}.AddDays(-1))
	assert.Equal(t, 1, GregorianDate{1, 1, 1}.DayNumber())

	a := GregorianDate{2024, 3, 20}
	b := GregorianDate{2024, 3, 21}
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestParse(t *testing.T) {
	g, err := ParseGregorian("2024-03-20")
	require.NoError(t, err)
	assert.Equal(t, GregorianDate{2024, 3, 20}, g)

	_, err = ParseGregorian("2024-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = ParseGregorian("0000-00-00")
	assert.ErrorIs(t, err, ErrInvalidDate)

	j, err := ParseDate("1403/01/01")
	require.NoError(t, err)
	assert.Equal(t, Date{1403, 1, 1}, j)
	assert.Equal(t, "1403/01/01", j.String())

	for _, bad := range []string{"1403-01-01", "1403/1", "1404/12/30", "abcd/01/01"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "فروردین", MonthName(1))
	assert.Equal(t, "اسفند", MonthName(12))
	assert.Equal(t, "", MonthName(13))
	assert.Equal(t, "شنبه", WeekdayName(0))
	assert.Equal(t, "جمعه", WeekdayName(6))
	assert.Equal(t, "", WeekdayName(7))
	assert.Equal(t, "ش", WeekdayShortName(0))
	assert.Equal(t, "ج", WeekdayShortName(6))
	assert.Equal(t, "", WeekdayShortName(-1))
}

func TestToJalali_AgreesWithPersianCalendarLibrary(t *testing.T) {
	for d := (GregorianDate{2000, 1, 1}); d.Before(GregorianDate{2021, 1, 1}); d = d.AddDays(1) {
		j, err := ToJalali(d)
		require.NoError(t, err)

		pt := ptime.New(time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, ptime.Iran()))
		want := Date{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
		if j != want {
			t.Fatalf("ToJalali(%s) = %s, go-persian-calendar says %s", d, j, want)
		}
	}
}
