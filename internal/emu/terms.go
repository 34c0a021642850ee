package emu

// Term is one search predicate against an EMu module.
type Term struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Op    string `json:"op,omitempty"`
}

// Terms is the filter a factory declares for the records it imports.
type Terms []Term

// Add appends an equality term.
func (t *Terms) Add(field, value string) {
	*t = append(*t, Term{Field: field, Value: value})
}

// AddWithOp appends a term with an explicit comparison operator (e.g. ">=").
func (t *Terms) AddWithOp(field, value, op string) {
	*t = append(*t, Term{Field: field, Value: value, Op: op})
}
