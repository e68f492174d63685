package domain

// DocumentSort names a document listing sort key.
type DocumentSort string

const (
	SortByDate DocumentSort = "date"
	SortByName DocumentSort = "name"
	SortBySize DocumentSort = "size"
)

// DocumentFilter narrows and orders document listings. Zero values mean
// "no filter"; an empty SortBy falls back to newest-first.
type DocumentFilter struct {
	Search   string
	Category Category
	SortBy   DocumentSort
	SortDesc bool
}

// ActionFilter narrows action item listings. Zero values mean "no filter".
type ActionFilter struct {
	Kind       ActionKind
	Category   Category
	DocumentID string
	Completed  *bool
}

// Insights is the aggregate overview of the document and action inventory.
type Insights struct {
	TotalDocuments   int              `json:"total_documents"`
	ByCategory       map[Category]int `json:"by_category"`
	ByFileType       map[string]int   `json:"by_file_type"`
	PendingActions   int              `json:"pending_actions"`
	CompletedActions int              `json:"completed_actions"`
	RecentUploads    int              `json:"recent_uploads"`
}
