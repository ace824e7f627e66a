package compilation

import "github.com/masnyjimmy/specdoc/src/ordered"

// Document is the canonical form of an OpenAPI/Swagger document. Every field
// is populated after Normalize; absent sequences are empty, never nil.
//
// Version is encoded under "openapi" so that an encoded Document normalizes
// back to itself.
type Document struct {
	Version    string                  `json:"openapi" yaml:"openapi"`
	Info       Info                    `json:"info" yaml:"info"`
	Servers    []Server                `json:"servers" yaml:"servers"`
	Paths      *ordered.Map[*PathItem] `json:"paths" yaml:"paths"`
	Components any                     `json:"components" yaml:"components"`
	Security   []any                   `json:"security" yaml:"security"`
	Tags       []any                   `json:"tags" yaml:"tags"`
}

type Server struct {
	Url         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
