// Package catalog holds the fixed set of predefined queries and the mock
// schema the playground operates on. The playground never parses SQL: a query
// is runnable only when its text matches one of these definitions exactly
// (modulo surrounding whitespace), so the catalog is the whole "query engine"
// surface.
package catalog

import "strings"

// QueryDefinition describes one runnable query. Definitions are immutable and
// ordered; the first entry seeds newly created editor tabs.
type QueryDefinition struct {
	ID    string
	Name  string
	Query string
}

// queries is the ordered catalog. IDs are stable: history entries and result
// stores reference them across sessions.
var queries = []QueryDefinition{
	{ID: "all-users", Name: "All Users", Query: "SELECT * FROM users;"},
	{ID: "recent-orders", Name: "Recent Orders", Query: "SELECT * FROM orders ORDER BY created_at DESC LIMIT 20;"},
	{ID: "all-products", Name: "All Products", Query: "SELECT * FROM products;"},
	{ID: "revenue-by-category", Name: "Revenue by Category", Query: "SELECT category, SUM(amount) AS revenue FROM orders GROUP BY category;"},
	{ID: "top-customers", Name: "Top Customers", Query: "SELECT name, total_spent FROM users ORDER BY total_spent DESC LIMIT 10;"},
	{ID: "pending-shipments", Name: "Pending Shipments", Query: "SELECT * FROM shipments WHERE status = 'pending';"},
	{ID: "users-preview", Name: "Users Preview", Query: "SELECT * FROM users LIMIT 100;"},
	{ID: "orders-preview", Name: "Orders Preview", Query: "SELECT * FROM orders LIMIT 100;"},
	{ID: "products-preview", Name: "Products Preview", Query: "SELECT * FROM products LIMIT 100;"},
	{ID: "categories-preview", Name: "Categories Preview", Query: "SELECT * FROM categories LIMIT 100;"},
	{ID: "shipments-preview", Name: "Shipments Preview", Query: "SELECT * FROM shipments LIMIT 100;"},
}

// Queries returns the ordered catalog. The returned slice is a copy; callers
// may not mutate the catalog.
func Queries() []QueryDefinition {
	out := make([]QueryDefinition, len(queries))
	copy(out, queries)
	return out
}

// First returns the definition used to seed new editor tabs.
func First() QueryDefinition {
	return queries[0]
}

// LookupByID finds a definition by its stable ID.
func LookupByID(id string) (QueryDefinition, bool) {
	for _, q := range queries {
		if q.ID == id {
			return q, true
		}
	}
	return QueryDefinition{}, false
}

// MatchText finds the definition whose query text equals the given text after
// trimming surrounding whitespace on both sides of the comparison. This is the
// only form of "parsing" the playground performs.
func MatchText(text string) (QueryDefinition, bool) {
	trimmed := strings.TrimSpace(text)
	for _, q := range queries {
		if strings.TrimSpace(q.Query) == trimmed {
			return q, true
		}
	}
	return QueryDefinition{}, false
}
