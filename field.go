package readview

import "slices"

// Field names a single extractable value of an Article.
type Field string

// Field constants accepted by ParseFields.
const (
	FieldTitle         Field = "title"
	FieldShortTitle    Field = "short_title"
	FieldSummary       Field = "summary"
	FieldContent       Field = "content"
	FieldLead          Field = "lead"
	FieldFirstImageURL Field = "first_image_url"
	FieldMainImageURL  Field = "main_image_url"
)

// AllFields lists every known field in canonical order.
var AllFields = []Field{
	FieldTitle,
	FieldShortTitle,
	FieldSummary,
	FieldContent,
	FieldLead,
	FieldFirstImageURL,
	FieldMainImageURL,
}

// DefaultFields is used when a request names no fields.
var DefaultFields = FieldSet{
	FieldTitle,
	FieldSummary,
	FieldContent,
	FieldLead,
	FieldFirstImageURL,
	FieldMainImageURL,
}

// FieldSet is an ordered set of requested fields.
type FieldSet []Field

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	return slices.Contains(s, f)
}

// Expand returns a copy of the set with implied dependencies added.
// The lead and image fields are read from the extracted article, so
// requesting any of them requires the summary.
func (s FieldSet) Expand() FieldSet {
	out := slices.Clone(s)
	for _, f := range []Field{FieldLead, FieldMainImageURL, FieldFirstImageURL} {
		if out.Has(f) && !out.Has(FieldSummary) {
			out = append(out, FieldSummary)
		}
	}
	return out
}

// ParseFields converts field names into a FieldSet.
// Returns EINVALID for unknown names. Duplicates are ignored.
func ParseFields(names []string) (FieldSet, error) {
	var set FieldSet
	for _, name := range names {
		f := Field(name)
		if !slices.Contains(AllFields, f) {
			return nil, Errorf(EINVALID, "unknown field %q", name)
		}
		if !set.Has(f) {
			set = append(set, f)
		}
	}
	return set, nil
}
