package serializer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"github.com/ValentinKolb/fmtsize/lib/dataset"
)

// csvRecordTerminator ends every record
const csvRecordTerminator = "\r\n"

// NewCSVSerializer creates a new serializer writing comma separated values
func NewCSVSerializer() ISerializer {
	return &csvSerializerImpl{}
}

// csvSerializerImpl implements the ISerializer interface using csv encoding.
// The header is simply the first row.
type csvSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (c csvSerializerImpl) Name() string {
	return "csv"
}

func (c csvSerializerImpl) Serialize(ds *dataset.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	// UseCRLF would drop a lone \r inside a field, so the writer terminates records
	// with \n and each terminator is replaced by \r\n after the record is flushed
	w := csv.NewWriter(&buf)

	for _, record := range ds.Records() {
		if err := w.Write(record); err != nil {
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteString(csvRecordTerminator)
	}
	return buf.Bytes(), nil
}

func (c csvSerializerImpl) Deserialize(b []byte) (*dataset.Dataset, error) {
	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = dataset.FieldsPerRecord

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}

	records := make([]dataset.Record, len(rows))
	for i, row := range rows {
		records[i] = row
	}
	return dataset.New(records)
}
