package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyFilter(t *testing.T, expr, line string) (string, bool) {
	t.Helper()

	filter, err := NewLineFilter(expr)
	require.NoError(t, err)

	return filter.Apply(line)
}

func TestLineFilter_InvalidExpression(t *testing.T) {
	_, err := NewLineFilter(".foo | |")
	assert.Error(t, err)
}

func TestLineFilter_NonJsonPassesThrough(t *testing.T) {
	text, shown := applyFilter(t, ".msg", "plain text line")
	assert.True(t, shown)
	assert.Equal(t, "plain text line", text)
}

func TestLineFilter_ExtractsStringField(t *testing.T) {
	text, shown := applyFilter(t, ".msg", `{"msg":"hello","level":"info"}`)
	assert.True(t, shown)
	assert.Equal(t, "hello", text)
}

func TestLineFilter_MissingFieldHidesLine(t *testing.T) {
	_, shown := applyFilter(t, ".msg", `{"level":"info"}`)
	assert.False(t, shown)
}

func TestLineFilter_SelectHidesNonMatching(t *testing.T) {
	_, shown := applyFilter(t, `select(.level == "error")`, `{"level":"info","msg":"a"}`)
	assert.False(t, shown)

	text, shown := applyFilter(t, `select(.level == "error")`, `{"level":"error","msg":"a"}`)
	assert.True(t, shown)
	assert.Equal(t, `{"level":"error","msg":"a"}`, text)
}

func TestLineFilter_FalseHidesLine(t *testing.T) {
	_, shown := applyFilter(t, `.level == "error"`, `{"level":"info"}`)
	assert.False(t, shown)
}

func TestLineFilter_ObjectOutputReencoded(t *testing.T) {
	text, shown := applyFilter(t, "{m: .msg}", `{"msg":"hi","extra":1}`)
	assert.True(t, shown)
	assert.Equal(t, `{"m":"hi"}`, text)
}

func TestLineFilter_NumberOutputReencoded(t *testing.T) {
	text, shown := applyFilter(t, ".count", `{"count":42}`)
	assert.True(t, shown)
	assert.Equal(t, "42", text)
}
