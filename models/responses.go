package models

// DataResponse is the success envelope of every endpoint:
// {"data": <value or true>} plus optional pagination metadata.
type DataResponse struct {
	Data any       `json:"data"`
	Meta *PageMeta `json:"meta,omitempty"`
}

// ErrorResponse is the failure envelope: field-keyed (or "message"-keyed)
// lists of human-readable strings.
type ErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

// PageMeta describes the page of a search result.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	Size        int   `json:"size"`
	Total       int64 `json:"total"`
	TotalPage   int64 `json:"total_page"`
}

// NewPageMeta computes the derived total_page value.
func NewPageMeta(page PageRequest, total int64) *PageMeta {
	totalPage := total / int64(page.Size)
	if total%int64(page.Size) != 0 {
		totalPage++
	}

	return &PageMeta{
		CurrentPage: page.Page,
		Size:        page.Size,
		Total:       total,
		TotalPage:   totalPage,
	}
}
