package dataset

import (
	"errors"
	"fmt"
)

// FieldsPerRecord is the number of fields (and lines in the source file) per record
const FieldsPerRecord = 7

var (
	ErrEmptyDataset = errors.New("dataset needs at least a header record")
	ErrFieldCount   = errors.New("record has wrong number of fields")
)

// Record is one ordered row of FieldsPerRecord text fields
type Record []string

// Dataset is the immutable, ordered collection of records loaded from the dictionary
type Dataset struct {
	records []Record
}

// Table is the header/data split of a Dataset used as intermediate form by structured encoders
type Table struct {
	Header Record   `json:"header" bson:"header"`
	Data   []Record `json:"data" bson:"data"`
}

// New creates a Dataset from the given records. The first record becomes the header.
func New(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	for i, r := range records {
		if len(r) != FieldsPerRecord {
			return nil, fmt.Errorf("%w: record %d has %d fields, expected %d", ErrFieldCount, i, len(r), FieldsPerRecord)
		}
	}
	return &Dataset{records: records}, nil
}

// FromTable rebuilds a Dataset from its header/data split
func FromTable(t Table) (*Dataset, error) {
	if t.Header == nil {
		return nil, ErrEmptyDataset
	}
	records := make([]Record, 0, len(t.Data)+1)
	records = append(records, t.Header)
	records = append(records, t.Data...)
	return New(records)
}

// Len returns the number of records including the header
func (d *Dataset) Len() int {
	return len(d.records)
}

// Header returns the first record (field labels)
func (d *Dataset) Header() Record {
	return d.records[0]
}

// Rows returns all records after the header. The result is never nil.
func (d *Dataset) Rows() []Record {
	return d.records[1:]
}

// Records returns all records, header first
func (d *Dataset) Records() []Record {
	return d.records
}

// Table returns the header/data split of the dataset
func (d *Dataset) Table() Table {
	return Table{
		Header: d.Header(),
		Data:   d.Rows(),
	}
}

// Equal reports whether both datasets hold the same records in the same order
func (d *Dataset) Equal(other *Dataset) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.records) != len(other.records) {
		return false
	}
	for i := range d.records {
		a, b := d.records[i], other.records[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}
