package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/disk-sim/disk-sim/sim"
)

// CSV column headers for request files. arrival_time and cylinder are required;
// deadline and priority may be absent or blank.
var requestColumns = []string{"arrival_time", "cylinder", "deadline", "priority"}

// ReadRequestsCSV loads requests from a CSV file with a header row.
// Request IDs are assigned from the row index (0-based, header excluded).
func ReadRequestsCSV(path string) ([]sim.Request, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening request file: %w", err)
	}
	defer func() { _ = file.Close() }()
	reqs, err := ParseRequestsCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reqs, nil
}

// ParseRequestsCSV reads requests from CSV data; see ReadRequestsCSV.
func ParseRequestsCSV(r io.Reader) ([]sim.Request, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range requestColumns[:2] {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var reqs []sim.Request
	for rowIdx := 0; ; rowIdx++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIdx, err)
		}

		req := sim.Request{ID: rowIdx}
		if req.ArrivalTime, err = strconv.ParseFloat(field(row, "arrival_time"), 64); err != nil {
			return nil, fmt.Errorf("row %d: arrival_time: %w", rowIdx, err)
		}
		if req.Cylinder, err = strconv.Atoi(field(row, "cylinder")); err != nil {
			return nil, fmt.Errorf("row %d: cylinder: %w", rowIdx, err)
		}
		if s := field(row, "deadline"); s != "" && !strings.EqualFold(s, "nan") {
			d, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: deadline: %w", rowIdx, err)
			}
			req.Deadline = sim.Deadline(d)
		}
		if s := field(row, "priority"); s != "" {
			if req.Priority, err = strconv.Atoi(s); err != nil {
				return nil, fmt.Errorf("row %d: priority: %w", rowIdx, err)
			}
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// WriteRequestsCSV writes requests in the format read by ReadRequestsCSV.
// Requests without a deadline get a blank deadline cell.
func WriteRequestsCSV(path string, reqs []sim.Request) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating request file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing request file: %w", cerr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(requestColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range reqs {
		deadline := ""
		if r.Deadline != nil {
			deadline = strconv.FormatFloat(*r.Deadline, 'g', -1, 64)
		}
		row := []string{
			strconv.FormatFloat(r.ArrivalTime, 'g', -1, 64),
			strconv.Itoa(r.Cylinder),
			deadline,
			strconv.Itoa(r.Priority),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing request %d: %w", r.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing request file: %w", err)
	}
	return nil
}
