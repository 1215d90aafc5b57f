package requests

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadJobs reads a job list from a csv, yaml or json file, picked by extension.
func LoadJobs(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jobs file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".yaml", ".yml":
		return ReadYAML(f)
	case ".json":
		return ReadJSON(f)
	}
	return nil, fmt.Errorf("unsupported jobs file %q: expected .csv, .yaml, .yml or .json", path)
}

// ReadCSV parses rows of "id,burst[,priority[,arrival]]". A first row whose
// id column is not a number is treated as a header.
func ReadCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 || len(row) > 4 {
			return nil, fmt.Errorf("csv line %d: expected 2 to 4 columns, got %d", i+1, len(row))
		}
		if i == 0 {
			if _, err := strconv.Atoi(strings.TrimSpace(row[0])); err != nil {
				continue
			}
		}
		fields := make([]int, 4)
		for col, value := range row {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("csv line %d column %d: %w", i+1, col+1, err)
			}
			fields[col] = n
		}
		jobs = append(jobs, Job{
			ProcessId:   fields[0],
			BurstTime:   fields[1],
			Priority:    fields[2],
			ArrivalTime: fields[3],
		})
	}
	return jobs, nil
}

// ReadYAML accepts either a bare job list or a document with a "jobs" key.
func ReadYAML(r io.Reader) ([]Job, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("reading yaml: %w", err)
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var jobs []Job
		if err := node.Decode(&jobs); err != nil {
			return nil, fmt.Errorf("decoding yaml jobs: %w", err)
		}
		return jobs, nil
	}
	var request ScheduleRequests
	if err := node.Decode(&request); err != nil {
		return nil, fmt.Errorf("decoding yaml jobs: %w", err)
	}
	return request.Jobs, nil
}

// ReadJSON accepts a request body shaped like the api's.
func ReadJSON(r io.Reader) ([]Job, error) {
	var request ScheduleRequests
	if err := json.NewDecoder(r).Decode(&request); err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}
	return request.Jobs, nil
}
