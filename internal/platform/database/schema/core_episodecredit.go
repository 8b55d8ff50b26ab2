package schema

// CoreEpisodeCreditTable represents the 'core.episodecredit' table (creator aliases credited on an episode)
type CoreEpisodeCreditTable struct {
	Table     string
	ID        string
	EpisodeID string
	AliasID   string
	Role      string
}

// CoreEpisodeCredit is the schema definition for core.episodecredit
var CoreEpisodeCredit = CoreEpisodeCreditTable{
	Table:     "core.episodecredit",
	ID:        "id",
	EpisodeID: "episodeid",
	AliasID:   "aliasid",
	Role:      "role",
}

func (t CoreEpisodeCreditTable) Columns() []string {
	return []string{t.ID, t.EpisodeID, t.AliasID, t.Role}
}
