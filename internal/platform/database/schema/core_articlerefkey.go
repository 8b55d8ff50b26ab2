package schema

// CoreArticleRefKeyTable represents the 'core.articlerefkey' table (refkeys tagged on an article)
type CoreArticleRefKeyTable struct {
	Table     string
	ID        string
	ArticleID string
	RefKeyID  string
}

// CoreArticleRefKey is the schema definition for core.articlerefkey
var CoreArticleRefKey = CoreArticleRefKeyTable{
	Table:     "core.articlerefkey",
	ID:        "id",
	ArticleID: "articleid",
	RefKeyID:  "refkeyid",
}

func (t CoreArticleRefKeyTable) Columns() []string {
	return []string{t.ID, t.ArticleID, t.RefKeyID}
}
