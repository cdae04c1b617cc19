package catalog

import (
	"strings"
	"testing"
)

func TestLookupByID(t *testing.T) {
	q, ok := LookupByID("all-users")
	if !ok {
		t.Fatal("expected all-users to exist")
	}
	if q.Name != "All Users" {
		t.Errorf("expected name 'All Users', got %q", q.Name)
	}

	if _, ok := LookupByID("nope"); ok {
		t.Error("expected lookup of unknown id to fail")
	}
}

func TestMatchText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantID  string
		matched bool
	}{
		{"exact", "SELECT * FROM users;", "all-users", true},
		{"leading and trailing whitespace", "  \n\tSELECT * FROM users;  \n", "all-users", true},
		{"missing semicolon", "SELECT * FROM users", "", false},
		{"different case", "select * from users;", "", false},
		{"empty", "", "", false},
		{"table preview", "SELECT * FROM orders LIMIT 100;", "orders-preview", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := MatchText(tt.text)
			if ok != tt.matched {
				t.Fatalf("MatchText(%q) matched = %v, want %v", tt.text, ok, tt.matched)
			}
			if ok && q.ID != tt.wantID {
				t.Errorf("MatchText(%q) id = %q, want %q", tt.text, q.ID, tt.wantID)
			}
		})
	}
}

func TestQueriesIsACopy(t *testing.T) {
	qs := Queries()
	qs[0].Query = "DROP TABLE users;"

	if q := First(); q.Query != "SELECT * FROM users;" {
		t.Errorf("catalog mutated through Queries(): %q", q.Query)
	}
}

func TestEveryTableHasAPreviewQuery(t *testing.T) {
	// The explorer synthesizes "SELECT * FROM <table> LIMIT 100;" on click, so
	// each mock table needs a matching catalog entry for that flow to run.
	for _, tbl := range Tables() {
		text := "SELECT * FROM " + tbl.Name + " LIMIT 100;"
		if _, ok := MatchText(text); !ok {
			t.Errorf("no catalog entry for synthesized preview of %s", tbl.Name)
		}
	}
}

func TestLookupTable(t *testing.T) {
	tbl, ok := LookupTable("orders")
	if !ok {
		t.Fatal("expected orders table to exist")
	}
	if len(tbl.Columns) == 0 {
		t.Error("expected orders to have columns")
	}
	if !strings.EqualFold(tbl.Columns[0].Name, "id") {
		t.Errorf("expected first column id, got %s", tbl.Columns[0].Name)
	}

	if _, ok := LookupTable("missing"); ok {
		t.Error("expected lookup of unknown table to fail")
	}
}
