package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/domain"
)

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, []string{"ID", "Name"}, [][]string{{"1", "Go"}}))
	assert.Contains(t, buf.String(), "Name")
	assert.Contains(t, buf.String(), "Go")

	buf.Reset()
	require.NoError(t, renderTable(&buf, []string{"ID"}, nil))
	assert.Contains(t, buf.String(), "(none)")
}

func TestCellHelpers(t *testing.T) {
	assert.Equal(t, "-", formatDate(time.Time{}))
	assert.Equal(t, "-", orDash("  "))
	assert.Equal(t, "a, b +2", joinList([]string{"a", "b", "c", "d"}, 2))
	assert.Equal(t, "-", joinList(nil, 2))
	assert.Equal(t, "hello…", truncate("hello   world", 6))
	assert.Equal(t, "short", truncate("short", 10))
}

func TestWorkModeCell(t *testing.T) {
	assert.Equal(t, "-", workModeCell(""))
	assert.Equal(t, "remote", workModeCell(domain.WorkModeRemote))
	assert.Contains(t, workModeCell("moon"), "moon")
}
