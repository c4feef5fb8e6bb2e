package serializer

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"github.com/ValentinKolb/fmtsize/lib/dataset"
)

// ErrInvalidXMLChar is returned for fields holding characters XML 1.0 cannot represent
var ErrInvalidXMLChar = errors.New("field contains a character not allowed in xml")

// prettyXMLIndent is the indent of one nesting level in pretty-xml
const prettyXMLIndent = "\t"

// NewXMLSerializer creates a new serializer writing xml without indentation
func NewXMLSerializer() ISerializer {
	return &xmlSerializerImpl{name: "xml"}
}

// NewPrettyXMLSerializer creates a new serializer writing xml indented with tabs
func NewPrettyXMLSerializer() ISerializer {
	return &xmlSerializerImpl{name: "pretty-xml", indent: prettyXMLIndent}
}

// xmlSerializerImpl implements the ISerializer interface using xml encoding.
// Both variants share the same document tree and only differ in rendering.
type xmlSerializerImpl struct {
	name   string
	indent string
}

// xmlExport is the document root
type xmlExport struct {
	XMLName xml.Name  `xml:"export"`
	Header  xmlValues `xml:"header"`
	Data    xmlLines  `xml:"data"`
}

// xmlValues is one record, each field a <v> element
type xmlValues struct {
	Values []string `xml:"v"`
}

// xmlLines holds the data rows as <l> elements
type xmlLines struct {
	Lines []xmlValues `xml:"l"`
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (x xmlSerializerImpl) Name() string {
	return x.name
}

func (x xmlSerializerImpl) Serialize(ds *dataset.Dataset) ([]byte, error) {
	if err := checkXMLChars(ds); err != nil {
		return nil, err
	}
	return renderXML(buildXMLTree(ds), x.indent)
}

func (x xmlSerializerImpl) Deserialize(b []byte) (*dataset.Dataset, error) {
	var tree xmlExport
	if err := xml.Unmarshal(b, &tree); err != nil {
		return nil, err
	}

	table := dataset.Table{
		Header: tree.Header.Values,
		Data:   make([]dataset.Record, len(tree.Data.Lines)),
	}
	for i, line := range tree.Data.Lines {
		table.Data[i] = line.Values
	}
	return dataset.FromTable(table)
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// checkXMLChars rejects the dataset if any field would be altered by the xml encoder
func checkXMLChars(ds *dataset.Dataset) error {
	for i, record := range ds.Records() {
		for j, field := range record {
			for _, r := range field {
				if !isXMLChar(r) {
					return fmt.Errorf("%w: record %d field %d has %U", ErrInvalidXMLChar, i, j, r)
				}
			}
		}
	}
	return nil
}

// isXMLChar reports whether r is in the Char production of XML 1.0
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// buildXMLTree converts the dataset into the xml document tree
func buildXMLTree(ds *dataset.Dataset) *xmlExport {
	rows := ds.Rows()
	tree := &xmlExport{
		Header: xmlValues{Values: ds.Header()},
		Data:   xmlLines{Lines: make([]xmlValues, len(rows))},
	}
	for i, row := range rows {
		tree.Data.Lines[i] = xmlValues{Values: row}
	}
	return tree
}

// renderXML writes the declaration and the tree. An empty indent renders everything on one line.
func renderXML(tree *xmlExport, indent string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if indent != "" {
		enc.Indent("", indent)
	}
	if err := enc.Encode(tree); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
