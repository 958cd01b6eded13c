package ettrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByRefCompleteness(t *testing.T) {
	// refs ["A","A","B","",""] → 3 组：A(2)、B(1)、占位组(2)，共 5 条
	events := []TraceEvent{
		{Ref: "A"}, {Ref: "A"}, {Ref: "B"}, {}, {},
	}

	groups := GroupByRef(events)

	require.Len(t, groups, 3)

	total := 0
	counts := make(map[string]int)
	for _, g := range groups {
		total += len(g.Events)
		counts[g.Ref] = len(g.Events)
	}

	assert.Equal(t, len(events), total)
	assert.Equal(t, 2, counts["A"])
	assert.Equal(t, 1, counts["B"])
	assert.Equal(t, 2, counts[GroupRefNone])
}

func TestGroupByRefLexicographicOrder(t *testing.T) {
	events := []TraceEvent{{Ref: "zulu"}, {Ref: "alpha"}, {}, {Ref: "mike"}}

	groups := GroupByRef(events)

	refs := make([]string, 0, len(groups))
	for _, g := range groups {
		refs = append(refs, g.Ref)
	}

	// 组按字典序排列（占位组字面量一并参与排序），渲染稳定可对比
	assert.Equal(t, []string{GroupRefNone, "alpha", "mike", "zulu"}, refs)
}

func TestGroupByRefSortsWithinGroup(t *testing.T) {
	events := []TraceEvent{
		tsEvent("A", "2024-06-01T12:00:00Z"),
		tsEvent("A", "2024-06-01T10:00:00Z"),
		tsEvent("A", "2024-06-01T11:00:00Z"),
	}

	groups := GroupByRef(events)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Events, 3)
	assert.True(t, Instant(&groups[0].Events[0]) <= Instant(&groups[0].Events[1]))
	assert.True(t, Instant(&groups[0].Events[1]) <= Instant(&groups[0].Events[2]))
}

func TestGroupByRefEmptyInput(t *testing.T) {
	assert.Empty(t, GroupByRef(nil))
}
