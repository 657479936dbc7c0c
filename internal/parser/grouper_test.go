package parser

import (
	"testing"

	"github.com/dsn-tools/dsnsplit/internal/models"
)

func decl(org, period string) models.Declaration {
	return models.Declaration{OrganizationKey: org, PeriodKey: period, Content: org + period}
}

func TestGroupCompleteness(t *testing.T) {
	decls := []models.Declaration{
		decl("A1", "2023-01-01"),
		decl("B2", "2023-01-01"),
		decl("A1", "2023-02-01"),
		decl("C3", "2023-01-01"),
		decl("B2", "2023-02-01"),
	}

	groups, order := Group(decls)

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != len(decls) {
		t.Errorf("Expected %d declarations across groups, got %d", len(decls), total)
	}
	for key, g := range groups {
		for _, d := range g {
			if d.OrganizationKey != key {
				t.Errorf("Declaration with key %q filed under group %q", d.OrganizationKey, key)
			}
		}
	}
	if len(order) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(order))
	}
}

func TestGroupPreservesOrder(t *testing.T) {
	decls := []models.Declaration{
		decl("A1", "2023-03-01"),
		decl("A1", "2023-01-01"),
		decl("A1", "2023-02-01"),
	}

	groups, order := Group(decls)

	if len(order) != 1 || order[0] != "A1" {
		t.Fatalf("Expected single group A1, got %v", order)
	}
	got := groups["A1"]
	for i, want := range []string{"2023-03-01", "2023-01-01", "2023-02-01"} {
		if got[i].PeriodKey != want {
			t.Errorf("Position %d: expected period %s, got %s", i, want, got[i].PeriodKey)
		}
	}
}

func TestGroupFirstAppearanceKeyOrder(t *testing.T) {
	decls := []models.Declaration{
		decl("Z9", "2023-01-01"),
		decl("A1", "2023-01-01"),
		decl("Z9", "2023-02-01"),
		decl("M5", "2023-01-01"),
	}

	_, order := Group(decls)

	want := []string{"Z9", "A1", "M5"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Key %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestGroupKeepsDuplicates(t *testing.T) {
	decls := []models.Declaration{
		decl("A1", "2023-01-01"),
		decl("A1", "2023-01-01"),
	}

	groups, _ := Group(decls)
	if len(groups["A1"]) != 2 {
		t.Errorf("Expected both duplicates kept, got %d", len(groups["A1"]))
	}
}

func TestGroupEmpty(t *testing.T) {
	groups, order := Group(nil)
	if len(groups) != 0 || len(order) != 0 {
		t.Errorf("Expected empty grouping for no declarations")
	}
}
