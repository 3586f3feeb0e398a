package trace

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/step"
)

var sampleSteps = []step.Step{
	step.Compare(0, 1),
	step.Swap(0, 1, 5, 3),
	step.Pivot(2),
	step.Set(1, 9),
	step.KeyDone(),
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleSteps))

	want := "index,op,i,j,payload\n" +
		"0,compare,0,1,\n" +
		"1,swap,0,1,\"(5, 3)\"\n" +
		"2,pivot,2,,\n" +
		"3,set,1,,9\n" +
		"4,key,,,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmptyTrace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "index,op,i,j,payload\n", buf.String())
}

func TestExportJSON(t *testing.T) {
	info := algo.Info{
		Name:       "bubble",
		Stable:     true,
		InPlace:    true,
		Comparison: true,
		Complexity: algo.Complexity{Best: "O(n)", Avg: "O(n^2)", Worst: "O(n^2)"},
	}
	var buf bytes.Buffer
	c := step.Counters{Comparisons: 2, Swaps: 1}
	require.NoError(t, ExportJSON(&buf, info, []int{5, 3}, []int{3, 5}, c, sampleSteps))

	var data map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "bubble", data["algorithm"])
	assert.EqualValues(t, len(sampleSteps), data["steps"])
	assert.EqualValues(t, 2, data["comparisons"])
	assert.EqualValues(t, 1, data["swaps"])

	trace, ok := data["trace"].([]any)
	require.True(t, ok)
	require.Len(t, trace, len(sampleSteps))
	swap := trace[1].(map[string]any)
	assert.Equal(t, "swap", swap["op"])
	assert.Equal(t, []any{float64(5), float64(3)}, swap["payload"])
	set := trace[3].(map[string]any)
	assert.EqualValues(t, 9, set["payload"])
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Init())

	c := step.Counters{Comparisons: 4, Swaps: 2}
	runID, err := store.Save("bubble", 7, []int{5, 3, 4}, []int{3, 4, 5}, c, sampleSteps)
	require.NoError(t, err)
	assert.Contains(t, runID, "bubble_")

	meta, err := store.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, meta.ID)
	assert.Equal(t, "bubble", meta.Algorithm)
	assert.Equal(t, int64(7), meta.Seed)
	assert.Equal(t, 3, meta.N)
	assert.Equal(t, len(sampleSteps), meta.Steps)
	assert.Equal(t, 4, meta.Comparisons)
	assert.Equal(t, []int{5, 3, 4}, meta.Input)
	assert.Equal(t, []int{3, 4, 5}, meta.Sorted)

	csvData, err := os.ReadFile(store.StepsPath(runID))
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "index,op,i,j,payload")
}

func TestStoreLoadMissingRun(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load("nope_0")
	assert.Error(t, err)
}

func TestStoreList(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Init())

	runs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = store.Save("bubble", 1, []int{2, 1}, []int{1, 2}, step.Counters{}, nil)
	require.NoError(t, err)
	_, err = store.Save("quick", 2, []int{2, 1}, []int{1, 2}, step.Counters{}, nil)
	require.NoError(t, err)

	runs, err = store.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.False(t, runs[0].Timestamp.Before(runs[1].Timestamp), "newest first")
}

func TestStoreListMissingDir(t *testing.T) {
	store := NewStore("/nonexistent/sortviz-test")
	runs, err := store.List()
	require.NoError(t, err)
	assert.Nil(t, runs)
}
