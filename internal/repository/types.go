package repository

// defaultBatchSize 批量写入每批行数
const defaultBatchSize = 100

// AuthorListFilter 查询作者列表的过滤条件
type AuthorListFilter struct {
	Page     int
	PageSize int
	Search   string
	OrderBy  string
}

// PostListFilter 查询文章列表的过滤条件
type PostListFilter struct {
	Page     int
	PageSize int
	Category string
	Search   string
	OrderBy  string
}
