package compilation

import "github.com/masnyjimmy/specdoc/src/ordered"

type Response struct {
	Description string                  `json:"description" yaml:"description"`
	Content     *ordered.Map[MediaType] `json:"content,omitempty" yaml:"content,omitempty"`
}

type StatusCode = string
