package executor

import "time"

// ResultSet is the canned tabular payload returned for one execution. Rows are
// uniform: every row has one value per column, lazily typed as any.
type ResultSet struct {
	Columns []string
	Rows    [][]any
	Elapsed time.Duration
}

// Clone deep-copies the result set. Visualization tabs clone their source
// payload at creation time so later mutation of one never affects the other.
func (rs *ResultSet) Clone() *ResultSet {
	if rs == nil {
		return nil
	}
	out := &ResultSet{
		Columns: make([]string, len(rs.Columns)),
		Rows:    make([][]any, len(rs.Rows)),
		Elapsed: rs.Elapsed,
	}
	copy(out.Columns, rs.Columns)
	for i, row := range rs.Rows {
		r := make([]any, len(row))
		copy(r, row)
		out.Rows[i] = r
	}
	return out
}
