package serializer

import "github.com/ValentinKolb/fmtsize/lib/dataset"

// ISerializer is the interface for all output format serializers
type ISerializer interface {
	// Name returns the format name, which is also the file extension of the artifact
	Name() string
	// Serialize encodes the whole dataset into the target format
	// It returns the encoded bytes and an error if any
	Serialize(ds *dataset.Dataset) ([]byte, error)
	// Deserialize decodes a byte array produced by Serialize back into a dataset
	// It returns the dataset and an error if any
	Deserialize(b []byte) (*dataset.Dataset, error)
}

// All returns one serializer per output format in report order (csv first, it is the baseline)
func All() []ISerializer {
	return []ISerializer{
		NewCSVSerializer(),
		NewJSONSerializer(),
		NewPrettyJSONSerializer(),
		NewBSONSerializer(),
		NewXMLSerializer(),
		NewPrettyXMLSerializer(),
	}
}
