package templates

// Template - a named bill/receipt layout with its field schema.
// Static, immutable, defined at process start.
type Template struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	Fields      []Field `json:"fields"` // order = display and tab order
}

// Field returns the descriptor with the given id, if present.
func (t *Template) Field(id string) (Field, bool) {
	for _, f := range t.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// Get - pure lookup. "Not found" is an absent result, not an error.
func Get(id string) (*Template, bool) {
	t, ok := catalog[id]
	return t, ok
}

// All returns the templates in catalog order.
func All() []*Template {
	all := make([]*Template, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		all = append(all, catalog[id])
	}
	return all
}

// IDs returns the template ids in catalog order.
func IDs() []string {
	ids := make([]string, len(catalogOrder))
	copy(ids, catalogOrder)
	return ids
}
