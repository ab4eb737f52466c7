package dto

type Filter struct {
	Limit    int    `query:"limit"`
	Page     int    `query:"page"`
	Q        string `query:"q"`
	Category string `query:"category"`
	SortBy   string `query:"sort_by"`
	Order    string `query:"order"`
}

type PaginationMetadata struct {
	TotalCount uint64 `json:"total_count"`
	Limit      int    `json:"limit"`
	Page       uint64 `json:"page"`
}

type PaginationResponse struct {
	Records  interface{}        `json:"records"`
	Metadata PaginationMetadata `json:"metadata"`
}
