package schema

// CoreArticleCreditTable represents the 'core.articlecredit' table (creator aliases credited on an article)
type CoreArticleCreditTable struct {
	Table     string
	ID        string
	ArticleID string
	AliasID   string
	Role      string
}

// CoreArticleCredit is the schema definition for core.articlecredit
var CoreArticleCredit = CoreArticleCreditTable{
	Table:     "core.articlecredit",
	ID:        "id",
	ArticleID: "articleid",
	AliasID:   "aliasid",
	Role:      "role",
}

func (t CoreArticleCreditTable) Columns() []string {
	return []string{t.ID, t.ArticleID, t.AliasID, t.Role}
}
