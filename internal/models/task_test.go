package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/pkg/jalali"
)

func gd(s string) *jalali.GregorianDate {
	g, err := jalali.ParseGregorian(s)
	if err != nil {
		panic(err)
	}
	return &g
}

func TestTask_ToTaskRef(t *testing.T) {
	project := uint64(4)

	tests := []struct {
		name       string
		task       Task
		wantDate   string
		wantStart  *jalali.GregorianDate
		wantEnd    *jalali.GregorianDate
		wantReason string
	}{
		{
			name:     "single date",
			task:     Task{ID: 1, Date: "2024-03-20"},
			wantDate: "2024-03-20",
		},
		{
			name:      "range",
			task:      Task{ID: 2, Date: "2024-03-20", StartDate: "2024-03-20", EndDate: "2024-03-22"},
			wantDate:  "2024-03-20",
			wantStart: gd("2024-03-20"),
			wantEnd:   gd("2024-03-22"),
		},
		{
			name:      "deadline closes the range",
			task:      Task{ID: 3, Date: "2024-03-20", StartDate: "2024-03-18", Deadline: "2024-03-25"},
			wantDate:  "2024-03-20",
			wantStart: gd("2024-03-18"),
			wantEnd:   gd("2024-03-25"),
		},
		{
			name:     "end without start is not a range",
			task:     Task{ID: 4, Date: "2024-03-20", EndDate: "2024-03-25"},
			wantDate: "2024-03-20",
		},
		{
			name:      "start stands in for missing date",
			task:      Task{ID: 5, StartDate: "2024-03-18", EndDate: "2024-03-19"},
			wantDate:  "2024-03-18",
			wantStart: gd("2024-03-18"),
			wantEnd:   gd("2024-03-19"),
		},
		{
			name:       "no date at all",
			task:       Task{ID: 6, Deadline: "2024-03-19"},
			wantReason: SkipMissingDate,
		},
		{
			name:       "unparseable date",
			task:       Task{ID: 7, Date: "2024-02-30"},
			wantReason: SkipInvalidDate,
		},
		{
			name:       "unparseable range bound",
			task:       Task{ID: 8, Date: "2024-03-20", StartDate: "2024-03-20", EndDate: "soon"},
			wantReason: SkipInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := tt.task.ToTaskRef()
			if tt.wantReason != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, SkipReason(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, ref.Date.String())
			assert.Equal(t, tt.wantStart, ref.Start)
			assert.Equal(t, tt.wantEnd, ref.End)
		})
	}

	t.Run("identity fields", func(t *testing.T) {
		ref, err := Task{ID: 42, ProjectID: &project, Title: "Retro", Date: "2024-03-20", IsPrivate: true}.ToTaskRef()
		require.NoError(t, err)
		assert.Equal(t, "42", ref.ID)
		assert.Equal(t, "4", ref.ProjectID)
		assert.Equal(t, "Retro", ref.Title)
		assert.True(t, ref.Private)
	})

	t.Run("invalid date unwraps", func(t *testing.T) {
		_, err := Task{ID: 9, Date: "nope"}.ToTaskRef()
		assert.True(t, errors.Is(err, jalali.ErrInvalidDate))
		assert.Equal(t, "", SkipReason(errors.New("other")))
	})
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, ColorActive, Project{Status: "active"}.Color())
	assert.Equal(t, ColorPlanning, StatusColor("planning"))
	assert.Equal(t, ColorCompleted, StatusColor("completed"))
	assert.Equal(t, ColorOnHold, StatusColor("on_hold"))
	assert.Equal(t, ColorDefault, StatusColor(""))
}
