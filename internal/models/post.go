package models

import (
	"fmt"
	"time"
)

// Post 文章表
type Post struct {
	ID        uint      `gorm:"primarykey" json:"id"`     // 主键
	Title     string    `gorm:"not null" json:"title"`    // 标题
	Content   *string   `gorm:"type:text" json:"content"` // 正文（不少于 250 字符）
	Category  *string   `gorm:"index" json:"category"`    // 分类（Fiction/Non-Fiction）
	Summary   *string   `gorm:"type:text" json:"summary"` // 摘要（不超过 250 字符）
	CreatedAt time.Time `gorm:"index" json:"created_at"`  // 创建时间
	UpdatedAt time.Time `json:"updated_at"`               // 更新时间
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// PostFields 文章可写字段
type PostFields struct {
	Title    string
	Content  *string
	Summary  *string
	Category *string
}

// NewPost 创建文章并校验全部字段
func NewPost(fields PostFields) (*Post, error) {
	post := &Post{}
	if err := post.Apply(fields); err != nil {
		return nil, err
	}
	return post, nil
}

// Apply 按顺序校验并写入全部字段，任一字段失败则不修改文章
func (p *Post) Apply(fields PostFields) error {
	next := *p
	if err := next.SetTitle(fields.Title); err != nil {
		return err
	}
	if err := next.SetContent(fields.Content); err != nil {
		return err
	}
	if err := next.SetCategory(fields.Category); err != nil {
		return err
	}
	if err := next.SetSummary(fields.Summary); err != nil {
		return err
	}
	*p = next
	return nil
}

// SetTitle 校验并设置标题
func (p *Post) SetTitle(title string) error {
	value, err := ValidateTitle(title)
	if err != nil {
		return err
	}
	p.Title = value
	return nil
}

// SetContent 校验并设置正文
func (p *Post) SetContent(content *string) error {
	value, err := ValidateContent(content)
	if err != nil {
		return err
	}
	p.Content = value
	return nil
}

// SetSummary 校验并设置摘要
func (p *Post) SetSummary(summary *string) error {
	value, err := ValidateSummary(summary)
	if err != nil {
		return err
	}
	p.Summary = value
	return nil
}

// SetCategory 校验并设置分类
func (p *Post) SetCategory(category *string) error {
	value, err := ValidateCategory(category)
	if err != nil {
		return err
	}
	p.Category = value
	return nil
}

// Validate 重新校验全部字段
func (p *Post) Validate() error {
	if _, err := ValidateTitle(p.Title); err != nil {
		return err
	}
	if _, err := ValidateContent(p.Content); err != nil {
		return err
	}
	if _, err := ValidateCategory(p.Category); err != nil {
		return err
	}
	_, err := ValidateSummary(p.Summary)
	return err
}

func (p Post) String() string {
	return fmt.Sprintf("Post(id=%d, title=%s content=%s, summary=%s)", p.ID, p.Title, derefString(p.Content), derefString(p.Summary))
}

func derefString(value *string) string {
	if value == nil {
		return "<nil>"
	}
	return *value
}
