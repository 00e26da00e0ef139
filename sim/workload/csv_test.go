package workload

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestsCSV(t *testing.T) {
	data := `arrival_time, cylinder, deadline, priority
0.5, 10, 12.5, 1
1, 20, , 0
2, 30, nan,
`
	reqs, err := ParseRequestsCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	assert.Equal(t, 0, reqs[0].ID)
	assert.Equal(t, 0.5, reqs[0].ArrivalTime)
	assert.Equal(t, 10, reqs[0].Cylinder)
	require.NotNil(t, reqs[0].Deadline)
	assert.Equal(t, 12.5, *reqs[0].Deadline)
	assert.Equal(t, 1, reqs[0].Priority)

	assert.Nil(t, reqs[1].Deadline, "blank deadline")
	assert.Nil(t, reqs[2].Deadline, "nan deadline")
	assert.Equal(t, 2, reqs[2].ID)
}

func TestParseRequestsCSV_OptionalColumnsAbsent(t *testing.T) {
	reqs, err := ParseRequestsCSV(strings.NewReader("cylinder,arrival_time\n7,3\n"))
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, 7, reqs[0].Cylinder)
	assert.Equal(t, 3.0, reqs[0].ArrivalTime)
	assert.Nil(t, reqs[0].Deadline)
}

func TestParseRequestsCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"missing cylinder column", "arrival_time,deadline\n0,1\n"},
		{"bad arrival", "arrival_time,cylinder\nsoon,1\n"},
		{"bad cylinder", "arrival_time,cylinder\n0,1.5\n"},
		{"bad deadline", "arrival_time,cylinder,deadline\n0,1,later\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequestsCSV(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestWriteRequestsCSV_ReadBack(t *testing.T) {
	// GIVEN a generated workload with deadlines
	reqs := GenerateUniform(25, 1.2, 200, 77, true)
	reqs[3].Deadline = nil
	path := filepath.Join(t.TempDir(), "out.csv")

	// WHEN written and read back
	require.NoError(t, WriteRequestsCSV(path, reqs))
	got, err := ReadRequestsCSV(path)

	// THEN the stream is reproduced exactly
	require.NoError(t, err)
	assert.Equal(t, reqs, got)
}

func TestReadRequestsCSV_MissingFile(t *testing.T) {
	_, err := ReadRequestsCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestWriteRequestsCSV_ReportsFileErrors(t *testing.T) {
	// the target is a directory
	err := WriteRequestsCSV(t.TempDir(), GenerateUniform(3, 1, 10, 1, false))
	assert.Error(t, err)
}
