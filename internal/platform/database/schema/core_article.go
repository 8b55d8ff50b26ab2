package schema

// CoreArticleTable represents the 'core.article' table (text articles)
type CoreArticleTable struct {
	Table    string
	ID       string
	Title    string
	Subtitle string
	Note     string
}

// CoreArticle is the schema definition for core.article
var CoreArticle = CoreArticleTable{
	Table:    "core.article",
	ID:       "id",
	Title:    "title",
	Subtitle: "subtitle",
	Note:     "note",
}

func (t CoreArticleTable) Columns() []string {
	return []string{t.ID, t.Title, t.Subtitle, t.Note}
}
