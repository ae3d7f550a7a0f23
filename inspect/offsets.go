package inspect

import (
	"github.com/VorpalBlade/layout-of/errors"
	"github.com/VorpalBlade/layout-of/typesys"
)

// FieldOffset is one row of an offsets listing.
type FieldOffset struct {
	Name string

	// Offset is the byte offset from the start of the owning type.
	// Meaningless when Unresolved is true.
	Offset int64

	// Unresolved marks members without a byte position (static members and
	// similar).
	Unresolved bool
}

// ListOffsets returns the byte offset of every member of t in the order the
// resolver reported them. Members without storage come back with Unresolved
// set. The fields are not offset-sorted and no hole accounting is done.
func ListOffsets(t *typesys.TypeDescriptor) ([]FieldOffset, error) {
	if !t.Code.IsStruct() {
		return nil, errors.NotAStruct(t.Name)
	}

	offsets := make([]FieldOffset, 0, len(t.Fields))
	for _, f := range t.Fields {
		if !f.HasStorage {
			offsets = append(offsets, FieldOffset{Name: f.Name, Unresolved: true})
			continue
		}
		offsets = append(offsets, FieldOffset{Name: f.Name, Offset: f.ByteOffset})
	}
	return offsets, nil
}
