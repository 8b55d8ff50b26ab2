package schema

// CoreRefKeyTable represents the 'core.refkey' table (typed keyword tags)
type CoreRefKeyTable struct {
	Table string
	ID    string
	Kind  string
	Title string
	Slug  string
}

// CoreRefKey is the schema definition for core.refkey
var CoreRefKey = CoreRefKeyTable{
	Table: "core.refkey",
	ID:    "id",
	Kind:  "kind",
	Title: "title",
	Slug:  "slug",
}

func (t CoreRefKeyTable) Columns() []string {
	return []string{t.ID, t.Kind, t.Title, t.Slug}
}
