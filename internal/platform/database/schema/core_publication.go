package schema

// CorePublicationTable represents the 'core.publication' table (placements of an episode part or article in an issue)
type CorePublicationTable struct {
	Table         string
	ID            string
	IssueID       string
	SeqNo         string
	EpisodePartID string
	ArticleID     string
	Label         string
	BestPlac      string
}

// CorePublication is the schema definition for core.publication
var CorePublication = CorePublicationTable{
	Table:         "core.publication",
	ID:            "id",
	IssueID:       "issueid",
	SeqNo:         "seqno",
	EpisodePartID: "episodepartid",
	ArticleID:     "articleid",
	Label:         "label",
	BestPlac:      "bestplac",
}

func (t CorePublicationTable) Columns() []string {
	return []string{t.ID, t.IssueID, t.SeqNo, t.EpisodePartID, t.ArticleID, t.Label, t.BestPlac}
}
