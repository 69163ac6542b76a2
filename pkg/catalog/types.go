// Package catalog holds the read-only API catalog: the record model, the
// shared error-code table, and the loaders that turn YAML snapshots into an
// immutable Store.
package catalog

// ExampleKind tags an example code block as a request or a response.
type ExampleKind string

const (
	KindRequest  ExampleKind = "request"
	KindResponse ExampleKind = "response"
)

// Method summarises one HTTP verb the API supports.
type Method struct {
	Verb        string `yaml:"verb" json:"verb"`
	Description string `yaml:"description" json:"description"`
}

// Parameter describes one endpoint parameter.
type Parameter struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Endpoint is one documented route of an API.
type Endpoint struct {
	Verb        string      `yaml:"verb" json:"verb"`
	Path        string      `yaml:"path" json:"path"`
	Description string      `yaml:"description" json:"description"`
	Parameters  []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Response    string      `yaml:"response,omitempty" json:"response,omitempty"`
}

// Example is a titled literal code block.
type Example struct {
	Title string      `yaml:"title" json:"title"`
	Kind  ExampleKind `yaml:"kind" json:"kind"`
	Code  string      `yaml:"code" json:"code"`
}

// Record is one catalog entry describing a single documented API.
//
// Category is the categorized tag; Environment and Status are the optional
// badge pair. Both shapes live on the same record so one matcher serves
// every catalog.
type Record struct {
	ID          string     `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description"`
	Category    string     `yaml:"category" json:"category"`
	Owner       string     `yaml:"owner,omitempty" json:"owner,omitempty"`
	Version     string     `yaml:"version" json:"version"`
	Environment string     `yaml:"environment,omitempty" json:"environment,omitempty"`
	Status      string     `yaml:"status,omitempty" json:"status,omitempty"`
	BaseURL     string     `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	AuthScheme  string     `yaml:"auth_scheme,omitempty" json:"auth_scheme,omitempty"`
	AuthNote    string     `yaml:"auth_note,omitempty" json:"auth_note,omitempty"`
	RateLimit   string     `yaml:"rate_limit,omitempty" json:"rate_limit,omitempty"`
	Methods     []Method   `yaml:"methods,omitempty" json:"methods,omitempty"`
	Notes       []string   `yaml:"notes,omitempty" json:"notes,omitempty"`
	Endpoints   []Endpoint `yaml:"endpoints,omitempty" json:"endpoints,omitempty"`
	Examples    []Example  `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// File is the on-disk shape of a catalog snapshot.
type File struct {
	APIs []Record `yaml:"apis" json:"apis"`
}

// clone returns a deep copy so callers can never mutate store contents.
func (r Record) clone() Record {
	out := r
	out.Methods = append([]Method(nil), r.Methods...)
	out.Notes = append([]string(nil), r.Notes...)
	out.Examples = append([]Example(nil), r.Examples...)
	if r.Endpoints != nil {
		out.Endpoints = make([]Endpoint, len(r.Endpoints))
		for i, ep := range r.Endpoints {
			ep.Parameters = append([]Parameter(nil), ep.Parameters...)
			out.Endpoints[i] = ep
		}
	}
	return out
}
