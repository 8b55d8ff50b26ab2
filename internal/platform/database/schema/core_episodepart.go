package schema

// CoreEpisodePartTable represents the 'core.episodepart' table (numbered or named parts of an episode)
type CoreEpisodePartTable struct {
	Table     string
	ID        string
	EpisodeID string
	PartNo    string
	PartName  string
}

// CoreEpisodePart is the schema definition for core.episodepart
var CoreEpisodePart = CoreEpisodePartTable{
	Table:     "core.episodepart",
	ID:        "id",
	EpisodeID: "episodeid",
	PartNo:    "partno",
	PartName:  "partname",
}

func (t CoreEpisodePartTable) Columns() []string {
	return []string{t.ID, t.EpisodeID, t.PartNo, t.PartName}
}
