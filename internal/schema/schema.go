package schema

type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeUnknown FieldType = "unknown"
)

type Field struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Cardinality int       `json:"cardinality"`
	Examples    []string  `json:"examples"`
}

// Schema describes the columns of one dataset in header order.
type Schema struct {
	Dataset string  `json:"dataset"`
	Fields  []Field `json:"fields"`
}

func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

func (s Schema) HasField(name string) bool {
	_, ok := s.Field(name)
	return ok
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
