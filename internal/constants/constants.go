package constants

// 文章分类常量
const (
	PostCategoryFiction    = "Fiction"
	PostCategoryNonFiction = "Non-Fiction"
)

// PostCategories 允许的文章分类
var PostCategories = []string{
	PostCategoryFiction,
	PostCategoryNonFiction,
}

// ClickbaitKeywords 文章标题必须包含的关键词（区分大小写的子串匹配）
var ClickbaitKeywords = []string{
	"Won't Believe",
	"Secret",
	"Top",
	"Guess",
}

// 字段约束
const (
	PhoneNumberDigits = 10
	PostContentMinLen = 250
	PostSummaryMaxLen = 250
)

// 种子数据默认值
const (
	SeedDefaultAuthorCount = 25
	SeedDefaultPostCount   = 25
)

// 缓存 key 前缀
const (
	CacheKeyAuthorPrefix = "author"
	CacheKeyPostPrefix   = "post"
)
