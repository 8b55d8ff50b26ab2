package schema

// CoreIssueTable represents the 'core.issue' table (magazine issues)
type CoreIssueTable struct {
	Table     string
	ID        string
	Year      string
	Number    string
	NumberStr string
	IsDouble  string
	Pages     string
	Price     string
	CoverBest string
	Ordinal   string
}

// CoreIssue is the schema definition for core.issue
var CoreIssue = CoreIssueTable{
	Table:     "core.issue",
	ID:        "id",
	Year:      "year",
	Number:    "number",
	NumberStr: "numberstr",
	IsDouble:  "isdouble",
	Pages:     "pages",
	Price:     "price",
	CoverBest: "coverbest",
	Ordinal:   "ordinal",
}

func (t CoreIssueTable) Columns() []string {
	return []string{t.ID, t.Year, t.Number, t.NumberStr, t.IsDouble, t.Pages, t.Price, t.CoverBest, t.Ordinal}
}
