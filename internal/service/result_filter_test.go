package service

import (
	"testing"
	"time"

	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/google/uuid"
)

var (
	groupA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	groupB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func sampleResults() []model.Result {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 10, 0, 0, 0, time.UTC)
	}
	return []model.Result{
		{Name: "Aziz", Surname: "Karimov", GroupID: groupA, Grade: 3, Date: day(3)},
		{Name: "Malika", Surname: "Yusupova", GroupID: groupA, Grade: 5, Date: day(1)},
		{Name: "Bobur", Surname: "Tashkentov", GroupID: groupB, Grade: 2, Date: day(4)},
		{Name: "Nilufar", Surname: "Karimova", GroupID: groupB, Grade: 5, Date: day(2)},
	}
}

func names(results []model.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func equalNames(got []model.Result, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Name != want[i] {
			return false
		}
	}
	return true
}

func TestFilterSortResults(t *testing.T) {
	tests := []struct {
		name  string
		query model.ResultListQuery
		want  []string
	}{
		{
			name:  "no filters keeps everything in input order",
			query: model.ResultListQuery{Grade: "all"},
			want:  []string{"Aziz", "Malika", "Bobur", "Nilufar"},
		},
		{
			name:  "substring matches across name and surname, case-insensitive",
			query: model.ResultListQuery{NameSubstring: "karimov"},
			want:  []string{"Aziz", "Nilufar"},
		},
		{
			name:  "full name substring spans the space",
			query: model.ResultListQuery{NameSubstring: "aziz kar"},
			want:  []string{"Aziz"},
		},
		{
			name:  "grade exact match",
			query: model.ResultListQuery{Grade: "5"},
			want:  []string{"Malika", "Nilufar"},
		},
		{
			name:  "group filter",
			query: model.ResultListQuery{GroupID: groupB.String()},
			want:  []string{"Bobur", "Nilufar"},
		},
		{
			name:  "sort by grade desc is stable between equal grades",
			query: model.ResultListQuery{SortKey: SortByGrade, SortDirection: "desc"},
			want:  []string{"Malika", "Nilufar", "Aziz", "Bobur"},
		},
		{
			name:  "sort by date asc",
			query: model.ResultListQuery{SortKey: SortByDate, SortDirection: "asc"},
			want:  []string{"Malika", "Nilufar", "Aziz", "Bobur"},
		},
		{
			name:  "sort by name asc",
			query: model.ResultListQuery{SortKey: SortByName},
			want:  []string{"Aziz", "Bobur", "Malika", "Nilufar"},
		},
		{
			name:  "unparseable grade filter means all",
			query: model.ResultListQuery{Grade: "excellent"},
			want:  []string{"Aziz", "Malika", "Bobur", "Nilufar"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := sampleResults()
			got := FilterSortResults(input, tc.query)
			if !equalNames(got, tc.want) {
				t.Errorf("FilterSortResults() order = %v, want %v", names(got), tc.want)
			}
		})
	}
}

func TestFilterSortResultsDoesNotMutateInput(t *testing.T) {
	input := sampleResults()
	FilterSortResults(input, model.ResultListQuery{SortKey: SortByGrade, SortDirection: "desc"})

	want := []string{"Aziz", "Malika", "Bobur", "Nilufar"}
	if !equalNames(input, want) {
		t.Errorf("input mutated: %v, want %v", names(input), want)
	}
}

func TestFilterSortResultsGradeDescStability(t *testing.T) {
	// Grades [3,5,2,5] must order as [5,5,3,2] with the two 5s in their
	// original relative order.
	got := FilterSortResults(sampleResults(), model.ResultListQuery{
		SortKey: SortByGrade, SortDirection: "desc",
	})
	if got[0].Name != "Malika" || got[1].Name != "Nilufar" {
		t.Errorf("equal grades reordered: %v", names(got))
	}
	grades := []int{got[0].Grade, got[1].Grade, got[2].Grade, got[3].Grade}
	want := []int{5, 5, 3, 2}
	for i := range want {
		if grades[i] != want[i] {
			t.Fatalf("grades = %v, want %v", grades, want)
		}
	}
}
