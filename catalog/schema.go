package catalog

// Column describes one column of the scan target's row schema.
type Column struct {
	// ID is the planner-assigned slot identifier referenced by
	// slot-ref expression nodes.
	ID int `json:"id" msgpack:"id"`

	// Name is the column name in the external index.
	Name string `json:"name" msgpack:"name"`

	// Kind is the declared primitive type.
	Kind Kind `json:"kind" msgpack:"kind"`
}

// Schema is the ordered set of column descriptors for one scan target.
// Schemas are immutable once handed to a translator and may be shared
// across concurrent translations.
type Schema struct {
	Columns []Column `json:"columns" msgpack:"columns"`
}

// Resolve returns the column declared with the given slot ID.
// Lookup is a linear scan; row schemas are small and no index is kept.
func (s *Schema) Resolve(slotID int) (*Column, bool) {
	for i := range s.Columns {
		if s.Columns[i].ID == slotID {
			return &s.Columns[i], true
		}
	}
	return nil, false
}
