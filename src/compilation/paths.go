package compilation

import "iter"

// Methods lists the HTTP methods a path item may define, in rendering order.
var Methods = []string{"get", "post", "put", "patch", "delete", "options", "head"}

// PathItem holds the operations of one path. Parameters declared on the
// path are kept apart from the operations; consumers merge them.
type PathItem struct {
	Get        *Operation  `json:"get,omitempty" yaml:"get,omitempty"`
	Post       *Operation  `json:"post,omitempty" yaml:"post,omitempty"`
	Put        *Operation  `json:"put,omitempty" yaml:"put,omitempty"`
	Patch      *Operation  `json:"patch,omitempty" yaml:"patch,omitempty"`
	Delete     *Operation  `json:"delete,omitempty" yaml:"delete,omitempty"`
	Options    *Operation  `json:"options,omitempty" yaml:"options,omitempty"`
	Head       *Operation  `json:"head,omitempty" yaml:"head,omitempty"`
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

func (p *PathItem) slot(method string) **Operation {
	switch method {
	case "get":
		return &p.Get
	case "post":
		return &p.Post
	case "put":
		return &p.Put
	case "patch":
		return &p.Patch
	case "delete":
		return &p.Delete
	case "options":
		return &p.Options
	case "head":
		return &p.Head
	default:
		return nil
	}
}

// Operation returns the operation for method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	if slot := p.slot(method); slot != nil {
		return *slot
	}
	return nil
}

func (p *PathItem) SetOperation(method string, op *Operation) bool {
	slot := p.slot(method)
	if slot == nil {
		return false
	}
	*slot = op
	return true
}

// Operations yields the defined operations in Methods order.
func (p *PathItem) Operations() iter.Seq2[string, *Operation] {
	return func(yield func(string, *Operation) bool) {
		for _, method := range Methods {
			op := p.Operation(method)
			if op == nil {
				continue
			}
			if !yield(method, op) {
				return
			}
		}
	}
}
