package report

import (
	"errors"
	"fmt"
	"github.com/ValentinKolb/fmtsize/lib/compress"
	"github.com/ryanuber/columnize"
	"io"
	"math"
	"os"
)

var ErrNoBaseline = errors.New("baseline artifact not found")

// Artifact names a raw output file. Its compressed sibling is Path + compress.Extension.
type Artifact struct {
	Name string
	Path string
}

// Entry holds the sizes of one artifact
type Entry struct {
	Name     string
	Path     string
	RawSize  int64
	GzipSize int64
}

// Report holds all entries of a run and the baseline they are compared to
type Report struct {
	Baseline Entry
	Entries  []Entry
}

// Percent returns num/den*100 rounded to two decimals, or 0 if den is 0
func Percent(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return math.Round(float64(num)/float64(den)*100*100) / 100
}

// Ratio returns the gzip size relative to the raw size in percent
func (e Entry) Ratio() float64 {
	return Percent(e.GzipSize, e.RawSize)
}

// RawVsBaseline returns the raw size relative to the raw size of base in percent
func (e Entry) RawVsBaseline(base Entry) float64 {
	return Percent(e.RawSize, base.RawSize)
}

// GzipVsBaseline returns the gzip size relative to the gzip size of base in percent
func (e Entry) GzipVsBaseline(base Entry) float64 {
	return Percent(e.GzipSize, base.GzipSize)
}

// Collect reads the raw and compressed size of every artifact from disk.
// baseline is the Name of the artifact all others are compared to.
func Collect(artifacts []Artifact, baseline string) (*Report, error) {
	r := &Report{Entries: make([]Entry, 0, len(artifacts))}
	found := false

	for _, a := range artifacts {
		rawSize, err := fileSize(a.Path)
		if err != nil {
			return nil, err
		}
		gzipSize, err := fileSize(a.Path + compress.Extension)
		if err != nil {
			return nil, err
		}

		e := Entry{Name: a.Name, Path: a.Path, RawSize: rawSize, GzipSize: gzipSize}
		if a.Name == baseline {
			r.Baseline = e
			found = true
		}
		r.Entries = append(r.Entries, e)
	}

	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNoBaseline, baseline)
	}
	return r, nil
}

// Print writes the report as an aligned table
func (r *Report) Print(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("Artifact | Size | Size gz | gz/plain %% | plain/%s %% | gz/%s.gz %%",
			r.Baseline.Name, r.Baseline.Name),
	}
	for _, e := range r.Entries {
		lines = append(lines, fmt.Sprintf("%s[gz] | %d | %d | %.2f | %.2f | %.2f",
			e.Path, e.RawSize, e.GzipSize, e.Ratio(), e.RawVsBaseline(r.Baseline), e.GzipVsBaseline(r.Baseline)))
	}

	_, err := fmt.Fprintln(w, columnize.SimpleFormat(lines))
	return err
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read size of %s: %w", path, err)
	}
	return info.Size(), nil
}
