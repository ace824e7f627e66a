package compilation

import "github.com/masnyjimmy/specdoc/src/ordered"

type RequestBody struct {
	Description string                  `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool                    `json:"required,omitempty" yaml:"required,omitempty"`
	Content     *ordered.Map[MediaType] `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType holds the schema declared for one content type. The schema is
// kept as found in the document.
type MediaType struct {
	Schema any `json:"schema,omitempty" yaml:"schema,omitempty"`
}
