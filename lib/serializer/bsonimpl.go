package serializer

import (
	"github.com/ValentinKolb/fmtsize/lib/dataset"
	"go.mongodb.org/mongo-driver/bson"
)

// NewBSONSerializer creates a new serializer using the binary json document format
func NewBSONSerializer() ISerializer {
	return &bsonSerializerImpl{}
}

// bsonSerializerImpl implements the ISerializer interface using bson encoding
type bsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (s bsonSerializerImpl) Name() string {
	return "bson"
}

func (s bsonSerializerImpl) Serialize(ds *dataset.Dataset) ([]byte, error) {
	return bson.Marshal(ds.Table())
}

func (s bsonSerializerImpl) Deserialize(b []byte) (*dataset.Dataset, error) {
	var table dataset.Table
	if err := bson.Unmarshal(b, &table); err != nil {
		return nil, err
	}
	return dataset.FromTable(table)
}
