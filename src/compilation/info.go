package compilation

type Info struct {
	Title       string   `json:"title" yaml:"title"`
	Version     string   `json:"version" yaml:"version"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Contact     *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License     *License `json:"license,omitempty" yaml:"license,omitempty"`
}

type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Url   string `json:"url,omitempty" yaml:"url,omitempty"`
}

type License struct {
	Name string `json:"name" yaml:"name"`
	Url  string `json:"url,omitempty" yaml:"url,omitempty"`
}
