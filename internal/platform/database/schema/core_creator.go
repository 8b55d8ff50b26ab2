package schema

// CoreCreatorTable represents the 'core.creator' table (canonical creators)
type CoreCreatorTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
}

// CoreCreator is the schema definition for core.creator
var CoreCreator = CoreCreatorTable{
	Table: "core.creator",
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
}

func (t CoreCreatorTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug}
}
