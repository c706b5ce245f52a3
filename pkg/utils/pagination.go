package utils

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination 分页请求参数
type Pagination struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// PageResult 分页响应结果
// 列表按游标式翻页，HasMore 表示可能还有下一页
type PageResult struct {
	List    interface{} `json:"list"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	HasMore bool        `json:"hasMore"`
}

// GetPageOffset 规范化页码并计算偏移量
func (p *Pagination) GetPageOffset() (int, int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	return (p.Page - 1) * p.Limit, p.Limit
}

// NewPageResult 以本页条数判断是否还有下一页
func NewPageResult(list interface{}, size int, p Pagination) PageResult {
	return PageResult{
		List:    list,
		Page:    p.Page,
		Limit:   p.Limit,
		HasMore: size >= p.Limit,
	}
}
