package pipeline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ValentinKolb/fmtsize/lib/common"
	"github.com/ValentinKolb/fmtsize/lib/dataset"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var allFormats = []string{"csv", "json", "pretty-json", "bson", "xml", "pretty-xml"}

// writeDictionary creates a latin-1, CRLF dictionary with the given number of records
func writeDictionary(t *testing.T, dir string, records int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < records; i++ {
		for j := 0; j < dataset.FieldsPerRecord; j++ {
			if i == 0 {
				fmt.Fprintf(&sb, "field%d\r\n", j)
			} else {
				// 0xFC = ü
				fmt.Fprintf(&sb, "W\xfcrt%d_%d\r\n", i, j)
			}
		}
	}

	path := filepath.Join(dir, "german.dic")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("Failed to write dictionary: %v", err)
	}
	return path
}

// testConfig returns a configuration working inside a temporary directory
func testConfig(t *testing.T, records int) common.Config {
	dir := t.TempDir()
	conf := common.DefaultConfig()
	conf.InputPath = writeDictionary(t, dir, records)
	conf.RecordCount = records
	conf.OutputDir = dir
	return conf
}

// TestRunCreatesAllArtifacts tests that every format and its gzip sibling is written and reported
func TestRunCreatesAllArtifacts(t *testing.T) {
	conf := testConfig(t, 20)
	conf.Verify = true

	var out bytes.Buffer
	r, err := New(conf, &out).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, format := range allFormats {
		path := ArtifactPath(conf.OutputDir, format)
		for _, p := range []string{path, path + ".gz"} {
			if _, err := os.Stat(p); err != nil {
				t.Errorf("Missing artifact %s: %v", p, err)
			}
		}
		if !strings.Contains(out.String(), "output."+format+"[gz]") {
			t.Errorf("Report is missing %s", format)
		}
	}

	if len(r.Entries) != len(allFormats) {
		t.Errorf("Expected %d report entries, got %d", len(allFormats), len(r.Entries))
	}
	if r.Baseline.Name != "csv" {
		t.Errorf("Expected csv baseline, got %s", r.Baseline.Name)
	}
	for _, e := range r.Entries {
		if e.Name == "pretty-json" && e.RawVsBaseline(r.Baseline) <= 100 {
			t.Errorf("pretty-json should be larger than csv: %v", e.RawVsBaseline(r.Baseline))
		}
	}
}

// TestRunJSONAndCSVRoundTrip tests that the json and csv artifacts reconstruct the dictionary
func TestRunJSONAndCSVRoundTrip(t *testing.T) {
	conf := testConfig(t, 5)

	if _, err := New(conf, &bytes.Buffer{}).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	expected, err := dataset.LoadFile(conf.InputPath, conf.RecordCount)
	if err != nil {
		t.Fatalf("Failed to load dictionary: %v", err)
	}

	// json
	raw, err := os.ReadFile(ArtifactPath(conf.OutputDir, "json"))
	if err != nil {
		t.Fatalf("Failed to read json: %v", err)
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("Failed to parse json: %v", err)
	}
	if len(generic) != 2 {
		t.Errorf("Expected exactly header and data keys, got %v", generic)
	}
	var obj struct {
		Header []string   `json:"header"`
		Data   [][]string `json:"data"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		t.Fatalf("Failed to parse json: %v", err)
	}
	if !reflect.DeepEqual(obj.Header, []string(expected.Header())) {
		t.Errorf("JSON header mismatch: %v", obj.Header)
	}
	if len(obj.Data) != 4 || obj.Data[0][0] != "Würt1_0" {
		t.Errorf("Unexpected json data: %v", obj.Data)
	}

	// csv
	f, err := os.Open(ArtifactPath(conf.OutputDir, "csv"))
	if err != nil {
		t.Fatalf("Failed to open csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse csv: %v", err)
	}
	if len(rows) != expected.Len() {
		t.Fatalf("Expected %d csv rows, got %d", expected.Len(), len(rows))
	}
	for i, row := range rows {
		if !reflect.DeepEqual(row, []string(expected.Records()[i])) {
			t.Errorf("CSV row %d mismatch: %v", i, row)
		}
	}
}

// TestRunTwoRecords tests the csv of a header plus one data row
func TestRunTwoRecords(t *testing.T) {
	conf := testConfig(t, 2)

	if _, err := New(conf, &bytes.Buffer{}).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	raw, err := os.ReadFile(ArtifactPath(conf.OutputDir, "csv"))
	if err != nil {
		t.Fatalf("Failed to read csv: %v", err)
	}
	expected := "field0,field1,field2,field3,field4,field5,field6\r\n" +
		"Würt1_0,Würt1_1,Würt1_2,Würt1_3,Würt1_4,Würt1_5,Würt1_6\r\n"
	if string(raw) != expected {
		t.Errorf("CSV mismatch:\nExpected: %q\nGot: %q", expected, string(raw))
	}
}

// TestRunIdempotent tests that two runs produce byte-identical raw artifacts
func TestRunIdempotent(t *testing.T) {
	conf := testConfig(t, 10)

	read := func() map[string][]byte {
		result := make(map[string][]byte)
		for _, format := range allFormats {
			data, err := os.ReadFile(ArtifactPath(conf.OutputDir, format))
			if err != nil {
				t.Fatalf("Failed to read %s: %v", format, err)
			}
			result[format] = data
		}
		return result
	}

	if _, err := New(conf, &bytes.Buffer{}).Run(); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	first := read()

	if _, err := New(conf, &bytes.Buffer{}).Run(); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	second := read()

	for _, format := range allFormats {
		if !bytes.Equal(first[format], second[format]) {
			t.Errorf("%s differs between runs", format)
		}
	}
}

// TestRunRemovesStaleArchives tests that compressed files of other formats are deleted
func TestRunRemovesStaleArchives(t *testing.T) {
	conf := testConfig(t, 3)
	stale := filepath.Join(conf.OutputDir, "output.yaml.gz")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatalf("Failed to write stale file: %v", err)
	}

	if _, err := New(conf, &bytes.Buffer{}).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("Stale archive still exists: %v", err)
	}
}

// TestRunShortInput tests that a truncated dictionary aborts before any output is written
func TestRunShortInput(t *testing.T) {
	conf := testConfig(t, 3)
	conf.RecordCount = 4

	_, err := New(conf, &bytes.Buffer{}).Run()
	if !errors.Is(err, dataset.ErrShortInput) {
		t.Fatalf("Expected ErrShortInput, got %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(conf.OutputDir, "output.*"))
	if err != nil {
		t.Fatalf("Failed to glob: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected no output files, got %v", matches)
	}
}

// TestRunInvalidConfig tests that an invalid configuration is rejected
func TestRunInvalidConfig(t *testing.T) {
	conf := testConfig(t, 1)
	conf.RecordCount = 0

	if _, err := New(conf, &bytes.Buffer{}).Run(); !errors.Is(err, common.ErrInvalidRecordCount) {
		t.Errorf("Expected ErrInvalidRecordCount, got %v", err)
	}
}

// TestRunMetrics tests that metrics are printed after the report when enabled
func TestRunMetrics(t *testing.T) {
	conf := testConfig(t, 3)
	conf.Metrics = true

	var out bytes.Buffer
	if _, err := New(conf, &out).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, expected := range []string{
		`fmtsize_artifact_bytes_total{format="bson",kind="raw"}`,
		`fmtsize_artifact_bytes_total{format="csv",kind="gzip"}`,
		`fmtsize_stage_duration_seconds_count{stage="load"} 1`,
	} {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("Metrics output is missing %s", expected)
		}
	}
}
