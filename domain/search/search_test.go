package search

import (
	"testing"
	"time"

	"uniportal/domain"
	"uniportal/errors"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_New_Search_Query_Parses_Flags(t *testing.T) {
	req := require.New(t)

	query, err := NewSearchQuery(`/find "final exam" --course CS101 --type academic --priority HIGH --from 2024-01-01 --to 2024-01-31 --attachments --unread --sort date-newest`)
	req.NoError(err)

	req.Equal("final exam", query.Terms)
	req.Equal("CS101", *query.Filters.Course)
	req.Equal(domain.CategoryAcademic, *query.Filters.Category)
	req.Equal(domain.PriorityHigh, *query.Filters.Priority)
	req.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *query.Filters.DateRange.Start)
	req.True(query.Filters.DateRange.Contains(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)))
	req.False(query.Filters.DateRange.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	req.True(query.Filters.AttachmentsOnly)
	req.True(query.Filters.UnreadOnly)
	req.Equal(SortDateNewest, query.Sort)
}

func Test_New_Search_Query_Without_Flags(t *testing.T) {
	req := require.New(t)

	query, err := NewSearchQuery("exam schedule")
	req.NoError(err)
	req.Equal("exam schedule", query.Terms)
	req.True(query.Filters.IsEmpty())
	req.Equal(SortRelevance, query.Sort)
}

func Test_Search_Query_From_Args_Keeps_Quotes(t *testing.T) {
	req := require.New(t)

	query, err := NewSearchQueryFromArgs([]string{`say "hi" now`, "--course", "CS101"})
	req.NoError(err)
	req.Equal(`say "hi" now`, query.Terms)
	req.Equal("CS101", *query.Filters.Course)

	query, err = NewSearchQueryFromArgs([]string{`a"b`})
	req.NoError(err)
	req.Equal(`a"b`, query.Terms)

	_, err = NewSearchQueryFromArgs([]string{"exam", "--sort", "random"})
	req.ErrorIs(err, errors.ErrValidation)
}

func Test_New_Search_Query_Rejects_Bad_Input(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown flag", "/find exam --room 12"},
		{"missing value", "/find exam --course"},
		{"bad date", "/find exam --from 01/02/2024"},
		{"bad priority", "/find --priority urgent"},
		{"bad sort", "/find --sort random"},
		{"open quote", `/find "exam`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSearchQuery(tt.input)
			require.ErrorIs(t, err, errors.ErrValidation)
		})
	}
}

func Test_Filters_Normalize_Treats_Blank_As_Absent(t *testing.T) {
	req := require.New(t)
	filters := Filters{Sender: lo.ToPtr("  "), Course: lo.ToPtr(" CS101 "), DateRange: &DateRange{}}

	normalized := filters.Normalize()

	req.Nil(normalized.Sender)
	req.Nil(normalized.DateRange)
	req.Equal("CS101", *normalized.Course)
	req.False(filters.IsEmpty())
	req.True(Filters{Sender: lo.ToPtr("")}.IsEmpty())
}

func Test_Date_Range_Inverted(t *testing.T) {
	req := require.New(t)
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	req.True(DateRange{Start: &start, End: &end}.Inverted())
	req.False(DateRange{Start: &end, End: &start}.Inverted())
	req.False(DateRange{Start: &start}.Inverted())
}
