package regalloc

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode encodes tables in canonical CBOR so equal tables always give equal bytes.
var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("regalloc: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// EncodeTables serializes allocation tables to CBOR for the code emitter.
func EncodeTables(ts []*Table) ([]byte, error) {
	return encMode.Marshal(ts)
}

// DecodeTables deserializes allocation tables from CBOR.
func DecodeTables(data []byte) ([]*Table, error) {
	var ts []*Table
	if err := cbor.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("regalloc: unmarshal tables: %w", err)
	}
	return ts, nil
}
