package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bilimtest/quizadmin-backend/internal/model"
)

// Sort keys accepted by FilterSortResults.
const (
	SortByName  = "name"
	SortByGrade = "grade"
	SortByDate  = "date"
)

// FilterSortResults applies the console's list controls to an in-memory
// result set: case-insensitive substring match against "name surname",
// exact grade equality (or "all"/empty for no grade filter), optional
// group filter, then a stable sort so equal keys keep their original
// relative order. The input slice is never mutated.
func FilterSortResults(results []model.Result, q model.ResultListQuery) []model.Result {
	needle := strings.ToLower(strings.TrimSpace(q.NameSubstring))
	gradeFilter, filterByGrade := parseGradeFilter(q.Grade)

	filtered := make([]model.Result, 0, len(results))
	for _, r := range results {
		if needle != "" {
			full := strings.ToLower(r.Name + " " + r.Surname)
			if !strings.Contains(full, needle) {
				continue
			}
		}
		if filterByGrade && r.Grade != gradeFilter {
			continue
		}
		if q.GroupID != "" && r.GroupID.String() != q.GroupID {
			continue
		}
		filtered = append(filtered, r)
	}

	sortResults(filtered, q.SortKey, q.SortDirection)
	return filtered
}

// parseGradeFilter interprets the grade parameter. "all", empty, and
// unparseable values all mean "no grade filter".
func parseGradeFilter(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return 0, false
	}
	g, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return g, true
}

func sortResults(results []model.Result, key, direction string) {
	desc := strings.EqualFold(direction, "desc")

	var less func(a, b model.Result) bool
	switch key {
	case SortByGrade:
		less = func(a, b model.Result) bool { return a.Grade < b.Grade }
	case SortByDate:
		less = func(a, b model.Result) bool { return a.Date.Before(b.Date) }
	case SortByName:
		less = func(a, b model.Result) bool {
			return strings.ToLower(a.Name+" "+a.Surname) < strings.ToLower(b.Name+" "+b.Surname)
		}
	default:
		return // Unknown key keeps the repository order.
	}

	sort.SliceStable(results, func(i, j int) bool {
		if desc {
			return less(results[j], results[i])
		}
		return less(results[i], results[j])
	})
}
