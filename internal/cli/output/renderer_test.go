package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlpad/internal/executor"
)

func sampleResult() *executor.ResultSet {
	return &executor.ResultSet{
		Columns: []string{"id", "name", "total"},
		Rows: [][]any{
			{1, "Ada", 120.50},
			{2, "Linus, Jr.", nil},
		},
		Elapsed: 42 * time.Millisecond,
	}
}

func TestResolveMode(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, ModeJSON, ResolveMode(ModeAuto, &buf))
	assert.Equal(t, ModeCSV, ResolveMode(ModeCSV, &buf))
	assert.Equal(t, ModeMarkdown, ResolveMode("md", &buf))
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, ModeText)

	require.NoError(t, r.ResultSet(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "NULL")
	assert.Contains(t, out, "(2 rows in 42ms)")
}

func TestRenderTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, ModeText)

	require.NoError(t, r.ResultSet(&executor.ResultSet{Columns: []string{"id"}}))
	assert.Contains(t, buf.String(), "(0 rows")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, ModeJSON)

	require.NoError(t, r.ResultSet(sampleResult()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Ada", decoded[0]["name"])
	assert.Nil(t, decoded[1]["total"])
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, ModeCSV)

	require.NoError(t, r.ResultSet(sampleResult()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,total", lines[0])
	assert.Equal(t, `2,"Linus, Jr.",NULL`, lines[2])
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, ModeMarkdown)

	require.NoError(t, r.ResultSet(sampleResult()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| id | name | total |", lines[0])
	assert.Equal(t, "| --- | --- | --- |", lines[1])
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"string", "hello", "hello"},
		{"int", 42, "42"},
		{"float trims zeros", 120.50, "120.5"},
		{"float whole", 3.0, "3"},
		{"bytes", []byte("raw"), "raw"},
		{"time", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), "2026-03-01 09:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}
