package serializer

import (
	"bytes"
	"encoding/json"
	"github.com/ValentinKolb/fmtsize/lib/dataset"
)

// prettyJSONIndent is the indent of one nesting level in pretty-json
const prettyJSONIndent = "    "

// NewJSONSerializer creates a new serializer using compact json encoding
func NewJSONSerializer() ISerializer {
	return &jsonSerializerImpl{name: "json"}
}

// NewPrettyJSONSerializer creates a new serializer using indented json encoding
func NewPrettyJSONSerializer() ISerializer {
	return &jsonSerializerImpl{name: "pretty-json", indent: prettyJSONIndent}
}

// jsonSerializerImpl implements the ISerializer interface using json encoding
type jsonSerializerImpl struct {
	name   string
	indent string
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Name() string {
	return j.name
}

func (j jsonSerializerImpl) Serialize(ds *dataset.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if j.indent != "" {
		enc.SetIndent("", j.indent)
	}

	if err := enc.Encode(ds.Table()); err != nil {
		return nil, err
	}

	// Encode terminates the value with a newline
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (j jsonSerializerImpl) Deserialize(b []byte) (*dataset.Dataset, error) {
	var table dataset.Table
	if err := json.Unmarshal(b, &table); err != nil {
		return nil, err
	}
	return dataset.FromTable(table)
}
