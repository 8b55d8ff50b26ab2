package schema

// CoreCreatorAliasTable represents the 'core.creatoralias' table (alternate display names of creators)
type CoreCreatorAliasTable struct {
	Table     string
	ID        string
	CreatorID string
	Name      string
}

// CoreCreatorAlias is the schema definition for core.creatoralias
var CoreCreatorAlias = CoreCreatorAliasTable{
	Table:     "core.creatoralias",
	ID:        "id",
	CreatorID: "creatorid",
	Name:      "name",
}

func (t CoreCreatorAliasTable) Columns() []string {
	return []string{t.ID, t.CreatorID, t.Name}
}
