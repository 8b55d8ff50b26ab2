package schema

// CoreEpisodeRefKeyTable represents the 'core.episoderefkey' table (refkeys tagged on an episode)
type CoreEpisodeRefKeyTable struct {
	Table     string
	ID        string
	EpisodeID string
	RefKeyID  string
}

// CoreEpisodeRefKey is the schema definition for core.episoderefkey
var CoreEpisodeRefKey = CoreEpisodeRefKeyTable{
	Table:     "core.episoderefkey",
	ID:        "id",
	EpisodeID: "episodeid",
	RefKeyID:  "refkeyid",
}

func (t CoreEpisodeRefKeyTable) Columns() []string {
	return []string{t.ID, t.EpisodeID, t.RefKeyID}
}
