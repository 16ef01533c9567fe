package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hwsat/satnode/core"
)

func TestStaticMemoryOutOfRangeFetchNeverFaults(t *testing.T) {
	rows := [][]core.Literal{{2, 4}, {3, 6}}
	mem := core.NewStaticMemory(rows, 2)

	require.Equal(t, rows[0], mem.FetchRow(0))
	require.Equal(t, []core.Literal{0, 0}, mem.FetchRow(-1))
	require.Equal(t, []core.Literal{0, 0}, mem.FetchRow(5))
}

func TestStaticMemoryPointer(t *testing.T) {
	mem := core.NewStaticMemory([][]core.Literal{{2}, {4}, {6}}, 1)
	require.Equal(t, 0, mem.RowPointer())
	mem.AdvancePointer()
	mem.AdvancePointer()
	require.Equal(t, 2, mem.RowPointer())
	mem.ResetPointer()
	require.Equal(t, 0, mem.RowPointer())
}

func TestDynamicMemoryClear(t *testing.T) {
	dyn := core.NewDynamicMemory(2, 3)
	dyn.SetRow(0, []bool{true, true, false})
	dyn.SetRow(1, []bool{false, true, true})
	dyn.Clear()
	require.Equal(t, []bool{false, false, false}, dyn.Row(0))
	require.Equal(t, []bool{false, false, false}, dyn.Row(1))
}
