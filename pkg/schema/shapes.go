package schema

// ArticleRecord is the per-provision shape (条文型): one record per "第…条"
// unit of a law, regulation, or rule.
type ArticleRecord struct {
	LawName         string   `json:"law_name"`
	ArticleNumber   string   `json:"article_number"`
	Chapter         *string  `json:"chapter"`
	Content         string   `json:"content"`
	Summary         string   `json:"summary"`
	Keywords        []string `json:"keywords"`
	Scope           string   `json:"scope"`
	Penalty         *string  `json:"penalty"`
	Exceptions      *string  `json:"exceptions"`
	RelatedArticles []string `json:"related_articles"`
	EffectiveDate   *string  `json:"effective_date"`
	AmendmentDate   *string  `json:"amendment_date"`
	ValidityStatus  string   `json:"validity_status"`
	DocumentNumber  string   `json:"document_number"`
	LegalLevel      string   `json:"legal_level"`
	SourceURL       string   `json:"source_url"`
	Tags            []string `json:"tags"`
	Jurisdiction    string   `json:"jurisdiction"`
}

// DocumentRecord is the whole-document shape (文件型) for notices, guiding
// opinions, and interpretations issued as one piece.
type DocumentRecord struct {
	LawName          string   `json:"law_name"`
	DocumentType     string   `json:"document_type"`
	DocumentNumber   string   `json:"document_number"`
	IssuingBody      string   `json:"issuing_body"`
	IssueDate        string   `json:"issue_date"`
	EffectiveDate    *string  `json:"effective_date"`
	AmendmentDate    *string  `json:"amendment_date"`
	LegalLevel       string   `json:"legal_level"`
	Jurisdiction     string   `json:"jurisdiction"`
	Content          string   `json:"content"`
	Summary          string   `json:"summary"`
	Keywords         []string `json:"keywords"`
	Scope            string   `json:"scope"`
	Penalty          *string  `json:"penalty"`
	Exceptions       *string  `json:"exceptions"`
	RelatedDocuments []string `json:"related_documents"`
	SourceURL        string   `json:"source_url"`
	Tags             []string `json:"tags"`
}

// CaseParties names the opposing parties of an adjudicated case.
type CaseParties struct {
	Plaintiff string `json:"plaintiff"`
	Defendant string `json:"defendant"`
}

// CaseRecord is the adjudicated-case shape (案例型) for judgments and
// rulings.
type CaseRecord struct {
	CaseName     string      `json:"case_name"`
	CaseNumber   string      `json:"case_number"`
	Court        string      `json:"court"`
	TrialDate    string      `json:"trial_date"`
	DocumentType string      `json:"document_type"`
	LegalLevel   string      `json:"legal_level"`
	Jurisdiction string      `json:"jurisdiction"`
	Parties      CaseParties `json:"parties"`
	Facts        string      `json:"facts"`
	Claims       string      `json:"claims"`
	Defenses     string      `json:"defenses"`
	CourtOpinion string      `json:"court_opinion"`
	Judgment     string      `json:"judgment"`
	RelatedLaws  []string    `json:"related_laws"`
	Summary      string      `json:"summary"`
}
