package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestBuildListWhereNumbersPlaceholders(t *testing.T) {
	status := "Qualified"
	rep := uuid.New()
	where, args, next := buildListWhere(ListParams{Status: &status, AssignedTo: &rep, Search: " glow "})

	if !strings.Contains(where, "e.status = $1") {
		t.Fatalf("expected status placeholder $1, got %s", where)
	}
	if !strings.Contains(where, "e.assigned_to = $2") {
		t.Fatalf("expected assignee placeholder $2, got %s", where)
	}
	if !strings.Contains(where, "e.name ILIKE $3") {
		t.Fatalf("expected search placeholder $3, got %s", where)
	}
	if len(args) != 3 || args[2] != "%glow%" {
		t.Fatalf("unexpected args %#v", args)
	}
	if next != 4 {
		t.Fatalf("expected next placeholder 4, got %d", next)
	}
}

func TestBuildListWhereWithoutFilters(t *testing.T) {
	where, args, next := buildListWhere(ListParams{})
	if where != "TRUE" || len(args) != 0 || next != 1 {
		t.Fatalf("unexpected %q %#v %d", where, args, next)
	}
}

func TestSelectColumnsPerTable(t *testing.T) {
	prospects := New(nil, Prospects).selectColumns()
	if !strings.Contains(prospects, "e.converted_to_opportunity_id") || !strings.Contains(prospects, "entity_type = 'prospect'") {
		t.Fatalf("unexpected prospect columns: %s", prospects)
	}

	merchants := New(nil, MerchantDiscoveries).selectColumns()
	if strings.Contains(merchants, "converted_to_opportunity_id") {
		t.Fatalf("merchant columns must not reference the prospect FK: %s", merchants)
	}
	if !strings.Contains(merchants, "entity_type = 'merchant'") {
		t.Fatalf("unexpected merchant columns: %s", merchants)
	}
}

func TestMapSortColumnFallsBackToModifiedAt(t *testing.T) {
	if mapSortColumn("score") != "e.score" {
		t.Fatalf("expected score column")
	}
	if mapSortColumn("score; DROP TABLE prospects") != "e.modified_at" {
		t.Fatalf("expected unknown sort keys to fall back")
	}
}
