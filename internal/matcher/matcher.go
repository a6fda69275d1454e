// Package matcher resolves raw imported category labels to canonical policy
// category names. Resolution is a prioritized chain of strategies tried in
// order; the first success wins and an unresolvable label falls back to the
// Uncategorized bucket. Matching is deterministic and never fails.
package matcher

import (
	"strings"

	"github.com/coursecast/grade-service/internal/models"
)

// Strategy attempts one way of matching a raw label against the canonical
// category list.
type Strategy interface {
	Match(label string, categories []canonicalName) (string, bool)
}

type canonicalName struct {
	name       string
	normalized string
}

// Matcher resolves labels against one policy's category list. Categories are
// kept in policy declaration order so substring ties resolve the same way
// every time.
type Matcher struct {
	categories []canonicalName
	strategies []Strategy
}

// New builds a matcher for the given canonical category names.
func New(categoryNames []string) *Matcher {
	categories := make([]canonicalName, 0, len(categoryNames))
	for _, name := range categoryNames {
		categories = append(categories, canonicalName{name: name, normalized: normalize(name)})
	}
	return &Matcher{
		categories: categories,
		strategies: []Strategy{
			exactStrategy{},
			normalizedStrategy{},
			substringStrategy{},
		},
	}
}

// Resolve maps a raw label to a canonical category name, or Uncategorized.
func (m *Matcher) Resolve(label string) string {
	for _, s := range m.strategies {
		if name, ok := s.Match(label, m.categories); ok {
			return name
		}
	}
	return models.UncategorizedName
}

// MapToCategories groups grade items by resolved category. Every policy
// category gets an entry (possibly empty); the Uncategorized bucket appears
// only when something actually landed in it.
func MapToCategories(items []models.GradeItem, policy *models.GradingPolicy) models.GradesByCategory {
	m := New(policy.CategoryNames())

	grouped := make(models.GradesByCategory, len(policy.Categories)+1)
	for _, cat := range policy.Categories {
		grouped[cat.Name] = []models.GradeItem{}
	}

	for _, item := range items {
		resolved := m.Resolve(item.Category)
		item.Category = resolved
		grouped[resolved] = append(grouped[resolved], item)
	}

	return grouped
}

// normalize lowercases and strips everything but letters and digits, so
// "Home Work #2" and "homework2" compare equal.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type exactStrategy struct{}

func (exactStrategy) Match(label string, categories []canonicalName) (string, bool) {
	for _, c := range categories {
		if label == c.name {
			return c.name, true
		}
	}
	return "", false
}

type normalizedStrategy struct{}

func (normalizedStrategy) Match(label string, categories []canonicalName) (string, bool) {
	norm := normalize(label)
	if norm == "" {
		return "", false
	}
	for _, c := range categories {
		if norm == c.normalized {
			return c.name, true
		}
	}
	return "", false
}

// substringStrategy matches containment in either direction after
// normalization, so "HW" import rows find a "HW / Homework" category and
// "Midterm Exam 1" finds "Midterm".
type substringStrategy struct{}

func (substringStrategy) Match(label string, categories []canonicalName) (string, bool) {
	norm := normalize(label)
	if norm == "" {
		return "", false
	}
	for _, c := range categories {
		if c.normalized == "" {
			continue
		}
		if strings.Contains(c.normalized, norm) || strings.Contains(norm, c.normalized) {
			return c.name, true
		}
	}
	return "", false
}
