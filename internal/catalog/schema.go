package catalog

// Column describes one column of a mock table.
type Column struct {
	Name string
	Type string
}

// Table describes one mock table shown in the explorer sidebar. RowCount is
// cosmetic; the actual canned result sets are owned by the executor.
type Table struct {
	Name     string
	RowCount int
	Columns  []Column
}

var tables = []Table{
	{
		Name:     "users",
		RowCount: 1284,
		Columns: []Column{
			{Name: "id", Type: "INTEGER"},
			{Name: "name", Type: "TEXT"},
			{Name: "email", Type: "TEXT"},
			{Name: "total_spent", Type: "DECIMAL(10,2)"},
			{Name: "created_at", Type: "TIMESTAMP"},
		},
	},
	{
		Name:     "orders",
		RowCount: 5031,
		Columns: []Column{
			{Name: "id", Type: "INTEGER"},
			{Name: "user_id", Type: "INTEGER"},
			{Name: "category", Type: "TEXT"},
			{Name: "amount", Type: "DECIMAL(10,2)"},
			{Name: "created_at", Type: "TIMESTAMP"},
		},
	},
	{
		Name:     "products",
		RowCount: 312,
		Columns: []Column{
			{Name: "id", Type: "INTEGER"},
			{Name: "name", Type: "TEXT"},
			{Name: "category", Type: "TEXT"},
			{Name: "price", Type: "DECIMAL(10,2)"},
			{Name: "in_stock", Type: "BOOLEAN"},
		},
	},
	{
		Name:     "categories",
		RowCount: 14,
		Columns: []Column{
			{Name: "id", Type: "INTEGER"},
			{Name: "name", Type: "TEXT"},
			{Name: "description", Type: "TEXT"},
		},
	},
	{
		Name:     "shipments",
		RowCount: 947,
		Columns: []Column{
			{Name: "id", Type: "INTEGER"},
			{Name: "order_id", Type: "INTEGER"},
			{Name: "status", Type: "TEXT"},
			{Name: "shipped_at", Type: "TIMESTAMP"},
		},
	},
}

// Tables returns the ordered mock schema. The returned slice is a copy.
func Tables() []Table {
	out := make([]Table, len(tables))
	copy(out, tables)
	return out
}

// LookupTable finds a mock table by name.
func LookupTable(name string) (Table, bool) {
	for _, t := range tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
