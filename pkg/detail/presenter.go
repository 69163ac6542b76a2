package detail

import (
	"github.com/stalwar-deckers/catalog/pkg/catalog"
)

// Lookup resolves a record by identifier.
type Lookup interface {
	Lookup(id string) (catalog.Record, bool)
}

// Presenter binds catalog records to detail views.
type Presenter struct {
	records Lookup
}

// NewPresenter returns a Presenter reading from records.
func NewPresenter(records Lookup) *Presenter {
	return &Presenter{records: records}
}

// Present builds the view for id. An unknown id yields false and no view.
func (p *Presenter) Present(id string) (View, bool) {
	r, ok := p.records.Lookup(id)
	if !ok {
		return View{}, false
	}
	return View{
		ID:          r.ID,
		Name:        r.Name,
		Version:     r.Version,
		Category:    r.Category,
		Owner:       r.Owner,
		Environment: r.Environment,
		Status:      r.Status,
		Overview: Overview{
			Description: r.Description,
			BaseURL:     r.BaseURL,
			AuthScheme:  r.AuthScheme,
			AuthNote:    r.AuthNote,
			RateLimit:   r.RateLimit,
			Methods:     r.Methods,
			Notes:       r.Notes,
		},
		Endpoints: r.Endpoints,
		Examples:  r.Examples,
		Errors:    catalog.ErrorCodes(),
	}, true
}
