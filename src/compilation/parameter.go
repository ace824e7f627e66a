package compilation

type ParamIn string

const (
	InPath   ParamIn = "path"
	InQuery  ParamIn = "query"
	InHeader ParamIn = "header"
	InCookie ParamIn = "cookie"
)

type Parameter struct {
	Name        string           `json:"name" yaml:"name"`
	In          ParamIn          `json:"in" yaml:"in"`
	Required    bool             `json:"required,omitempty" yaml:"required,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      *ParameterSchema `json:"schema,omitempty" yaml:"schema,omitempty"`
	Type        string           `json:"type,omitempty" yaml:"type,omitempty"`
}

// ParameterSchema keeps only what the documentation shows of a parameter schema.
type ParameterSchema struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// EffectiveType is schema.type, else the Swagger 2 type, else "string".
func (p Parameter) EffectiveType() string {
	if p.Schema != nil && p.Schema.Type != "" {
		return p.Schema.Type
	}
	if p.Type != "" {
		return p.Type
	}
	return "string"
}
