package executor

import "time"

// Canned data backing the mock executor. Rows are generated once at package
// init so repeated executions of the same query return identical payloads.

var baseTime = time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)

var userRows = [][]any{
	{1, "Ada Lovelace", "ada@example.com", 1820.50, baseTime.AddDate(0, -11, 0)},
	{2, "Grace Hopper", "grace@example.com", 2406.00, baseTime.AddDate(0, -10, -12)},
	{3, "Alan Turing", "alan@example.com", 310.75, baseTime.AddDate(0, -9, -3)},
	{4, "Edsger Dijkstra", "edsger@example.com", 95.20, baseTime.AddDate(0, -8, -21)},
	{5, "Barbara Liskov", "barbara@example.com", 1532.10, baseTime.AddDate(0, -7, -5)},
	{6, "Donald Knuth", "donald@example.com", 742.00, baseTime.AddDate(0, -6, -18)},
	{7, "Margaret Hamilton", "margaret@example.com", 3104.90, baseTime.AddDate(0, -4, -2)},
	{8, "Tony Hoare", "tony@example.com", 12.99, baseTime.AddDate(0, -2, -26)},
}

var orderRows = [][]any{
	{101, 7, "books", 120.00, baseTime.AddDate(0, 0, -1)},
	{102, 1, "hardware", 499.99, baseTime.AddDate(0, 0, -2)},
	{103, 2, "books", 35.50, baseTime.AddDate(0, 0, -2)},
	{104, 5, "office", 210.40, baseTime.AddDate(0, 0, -4)},
	{105, 2, "hardware", 1249.00, baseTime.AddDate(0, 0, -5)},
	{106, 3, "books", 18.25, baseTime.AddDate(0, 0, -7)},
	{107, 7, "office", 86.10, baseTime.AddDate(0, 0, -9)},
	{108, 6, "hardware", 742.00, baseTime.AddDate(0, 0, -12)},
	{109, 1, "office", 54.30, baseTime.AddDate(0, 0, -15)},
	{110, 5, "books", 63.75, baseTime.AddDate(0, 0, -19)},
}

var productRows = [][]any{
	{1, "Mechanical Keyboard", "hardware", 149.99, true},
	{2, "The Art of Computer Programming", "books", 199.50, true},
	{3, "Standing Desk", "office", 480.00, false},
	{4, "USB-C Dock", "hardware", 89.99, true},
	{5, "Structure and Interpretation", "books", 45.00, true},
	{6, "Desk Lamp", "office", 32.50, true},
}

var categoryRows = [][]any{
	{1, "books", "Technical books and papers"},
	{2, "hardware", "Peripherals and components"},
	{3, "office", "Desks, chairs and accessories"},
}

var shipmentRows = [][]any{
	{501, 101, "pending", nil},
	{502, 102, "shipped", baseTime.AddDate(0, 0, -1)},
	{503, 104, "pending", nil},
	{504, 105, "delivered", baseTime.AddDate(0, 0, -3)},
	{505, 107, "pending", nil},
	{506, 108, "shipped", baseTime.AddDate(0, 0, -10)},
}

var tableColumns = map[string][]string{
	"users":      {"id", "name", "email", "total_spent", "created_at"},
	"orders":     {"id", "user_id", "category", "amount", "created_at"},
	"products":   {"id", "name", "category", "price", "in_stock"},
	"categories": {"id", "name", "description"},
	"shipments":  {"id", "order_id", "status", "shipped_at"},
}

var tableRows = map[string][][]any{
	"users":      userRows,
	"orders":     orderRows,
	"products":   productRows,
	"categories": categoryRows,
	"shipments":  shipmentRows,
}

// resultFor builds the canned result set for a catalog query ID. Derived
// results (aggregates, filters) are computed from the base rows so the numbers
// stay consistent with the previews.
func resultFor(queryID string) (*ResultSet, bool) {
	switch queryID {
	case "all-users", "users-preview", "top-customers":
		rs := tableResult("users")
		if queryID == "top-customers" {
			rs = projectTopCustomers(rs)
		}
		return rs, true
	case "recent-orders", "orders-preview":
		return tableResult("orders"), true
	case "all-products", "products-preview":
		return tableResult("products"), true
	case "categories-preview":
		return tableResult("categories"), true
	case "shipments-preview":
		return tableResult("shipments"), true
	case "pending-shipments":
		return filterShipments("pending"), true
	case "revenue-by-category":
		return revenueByCategory(), true
	}
	return nil, false
}

func tableResult(name string) *ResultSet {
	rs := &ResultSet{Columns: tableColumns[name], Rows: tableRows[name]}
	return rs.Clone()
}

func projectTopCustomers(src *ResultSet) *ResultSet {
	out := &ResultSet{Columns: []string{"name", "total_spent"}}
	for _, row := range src.Rows {
		out.Rows = append(out.Rows, []any{row[1], row[3]})
	}
	// stable insertion sort, descending by total_spent
	for i := 1; i < len(out.Rows); i++ {
		for j := i; j > 0 && out.Rows[j][1].(float64) > out.Rows[j-1][1].(float64); j-- {
			out.Rows[j], out.Rows[j-1] = out.Rows[j-1], out.Rows[j]
		}
	}
	return out
}

func filterShipments(status string) *ResultSet {
	out := &ResultSet{Columns: tableColumns["shipments"]}
	for _, row := range shipmentRows {
		if row[2] == status {
			r := make([]any, len(row))
			copy(r, row)
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

func revenueByCategory() *ResultSet {
	totals := map[string]float64{}
	var order []string
	for _, row := range orderRows {
		cat := row[2].(string)
		if _, seen := totals[cat]; !seen {
			order = append(order, cat)
		}
		totals[cat] += row[3].(float64)
	}
	out := &ResultSet{Columns: []string{"category", "revenue"}}
	for _, cat := range order {
		out.Rows = append(out.Rows, []any{cat, totals[cat]})
	}
	return out
}
