package llm

// Schema element types, matching the provider's structured-output vocabulary.
const (
	TypeObject  = "OBJECT"
	TypeArray   = "ARRAY"
	TypeString  = "STRING"
	TypeInteger = "INTEGER"
)

// Schema is a minimal structured-output schema: enough of the JSON-schema
// vocabulary to pin the analysis response shape.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
	Nullable   bool               `json:"nullable,omitempty"`
}

// Object builds an OBJECT schema from its property map.
func Object(props map[string]*Schema) *Schema {
	return &Schema{Type: TypeObject, Properties: props}
}

// Array builds an ARRAY schema of the given item shape.
func Array(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// String builds a STRING schema.
func String() *Schema { return &Schema{Type: TypeString} }

// NullableString builds an optional STRING schema.
func NullableString() *Schema { return &Schema{Type: TypeString, Nullable: true} }

// Integer builds an INTEGER schema.
func Integer() *Schema { return &Schema{Type: TypeInteger} }

// StringEnum builds a STRING schema restricted to the given values.
func StringEnum(values ...string) *Schema {
	return &Schema{Type: TypeString, Enum: values}
}
