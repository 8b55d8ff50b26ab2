package schema

// CoreEpisodeTable represents the 'core.episode' table (episodes of a title)
type CoreEpisodeTable struct {
	Table        string
	ID           string
	TitleID      string
	Name         string
	OrigName     string
	Teaser       string
	Note         string
	Copyright    string
	OrigLanguage string
	OrigDateFrom string
	OrigDateTo   string
	IsSunday     string
}

// CoreEpisode is the schema definition for core.episode
var CoreEpisode = CoreEpisodeTable{
	Table:        "core.episode",
	ID:           "id",
	TitleID:      "titleid",
	Name:         "name",
	OrigName:     "origname",
	Teaser:       "teaser",
	Note:         "note",
	Copyright:    "copyright",
	OrigLanguage: "origlanguage",
	OrigDateFrom: "origdatefrom",
	OrigDateTo:   "origdateto",
	IsSunday:     "issunday",
}

func (t CoreEpisodeTable) Columns() []string {
	return []string{t.ID, t.TitleID, t.Name, t.OrigName, t.Teaser, t.Note, t.Copyright, t.OrigLanguage, t.OrigDateFrom, t.OrigDateTo, t.IsSunday}
}
