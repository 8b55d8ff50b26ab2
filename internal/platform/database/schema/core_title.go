package schema

// CoreTitleTable represents the 'core.title' table (titles (series) in the index)
type CoreTitleTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
}

// CoreTitle is the schema definition for core.title
var CoreTitle = CoreTitleTable{
	Table: "core.title",
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
}

func (t CoreTitleTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug}
}
