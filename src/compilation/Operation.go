package compilation

import "github.com/masnyjimmy/specdoc/src/ordered"

// Operation always carries all of its fields; nothing is omitted on encode.
type Operation struct {
	Summary     string                 `json:"summary" yaml:"summary"`
	Description string                 `json:"description" yaml:"description"`
	OperationId string                 `json:"operationId" yaml:"operationId"`
	Tags        []string               `json:"tags" yaml:"tags"`
	Parameters  []Parameter            `json:"parameters" yaml:"parameters"`
	RequestBody *RequestBody           `json:"requestBody" yaml:"requestBody"`
	Responses   *ordered.Map[Response] `json:"responses" yaml:"responses"`
	Security    []any                  `json:"security" yaml:"security"`
	Deprecated  bool                   `json:"deprecated" yaml:"deprecated"`
}
