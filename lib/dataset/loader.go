package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/ValentinKolb/fmtsize/lib/common"
	"github.com/lni/dragonboat/v4/logger"
	"golang.org/x/text/encoding/charmap"
	"io"
	"os"
	"strings"
	"unicode"
)

// maxLineSize bounds a single dictionary line
const maxLineSize = 1024 * 1024

var Logger = logger.GetLogger(common.LoggerDataset)

var (
	ErrShortInput   = errors.New("input ended before all records were read")
	ErrInvalidCount = errors.New("record count must be at least 1")
)

// LoadFile reads count records from the latin-1 encoded dictionary at path
func LoadFile(path string, count int) (*Dataset, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCount, count)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	ds, err := Load(f, count)
	if err != nil {
		Logger.Errorf("failed to load %s: %v", path, err)
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	Logger.Infof("loaded %d records from %s", ds.Len(), path)
	return ds, nil
}

// Load reads exactly count records of FieldsPerRecord lines each from r.
// The input is decoded from latin-1, line endings and trailing whitespace are stripped.
// Lines after the last requested record are ignored.
func Load(r io.Reader, count int) (*Dataset, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCount, count)
	}

	scanner := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(r))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	records := make([]Record, 0, count)
	lines := 0
	for n := 0; n < count; n++ {
		record := make(Record, FieldsPerRecord)
		for j := 0; j < FieldsPerRecord; j++ {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("failed to read line %d: %w", lines+1, err)
				}
				return nil, fmt.Errorf("%w: got %d of %d lines", ErrShortInput, lines, count*FieldsPerRecord)
			}
			record[j] = strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
			lines++
		}
		records = append(records, record)
	}

	return New(records)
}
