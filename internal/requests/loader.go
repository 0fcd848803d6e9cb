package requests

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown job file format")

// LoadJobs reads a job file. The format follows the extension: .csv rows
// of id,arrival,burst[,priority]; .yaml/.yml and .json hold a ScheduleRequests
// document.
func LoadJobs(path string) (*ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open job file: %w", err)
	}
	defer f.Close()

	var request ScheduleRequests
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		jobs, err := ParseCSV(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		request.Jobs = jobs
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: decode yaml: %w", path, err)
		}
	case ".json":
		if err := json.NewDecoder(f).Decode(&request); err != nil {
			return nil, fmt.Errorf("%s: decode json: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return &request, nil
}

// ParseCSV reads jobs as id,arrival,burst[,priority] rows. A first row whose
// arrival column is not a number is treated as a header.
func ParseCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 1 {
		if _, err := strconv.Atoi(rows[0][1]); err != nil {
			rows = rows[1:]
		}
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("row %d: want 3 or 4 columns, got %d", i+1, len(row))
		}
		job := Job{ProcessId: row[0]}
		if job.ArrivalTime, err = strconv.Atoi(row[1]); err != nil {
			return nil, fmt.Errorf("row %d: arrival time: %w", i+1, err)
		}
		if job.BurstTime, err = strconv.Atoi(row[2]); err != nil {
			return nil, fmt.Errorf("row %d: burst time: %w", i+1, err)
		}
		if len(row) == 4 && row[3] != "" {
			if job.Priority, err = strconv.Atoi(row[3]); err != nil {
				return nil, fmt.Errorf("row %d: priority: %w", i+1, err)
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
