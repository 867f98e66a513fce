package models

import (
	"fmt"
	"time"
)

// Author 作者表
type Author struct {
	ID          uint      `gorm:"primarykey" json:"id"`             // 主键
	Name        string    `gorm:"uniqueIndex;not null" json:"name"` // 作者名（唯一）
	PhoneNumber *string   `json:"phone_number"`                     // 手机号（10 位数字）
	CreatedAt   time.Time `gorm:"index" json:"created_at"`          // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                       // 更新时间
}

// TableName 指定表名
func (Author) TableName() string {
	return "authors"
}

// NewAuthor 创建作者并校验全部字段
func NewAuthor(name string, phone *string, checker AuthorNameChecker) (*Author, error) {
	author := &Author{}
	if err := author.SetName(name, checker); err != nil {
		return nil, err
	}
	if err := author.SetPhoneNumber(phone); err != nil {
		return nil, err
	}
	return author, nil
}

// SetName 校验并设置作者名
func (a *Author) SetName(name string, checker AuthorNameChecker) error {
	value, err := ValidateAuthorName(name, a.ID, checker)
	if err != nil {
		return err
	}
	a.Name = value
	return nil
}

// SetPhoneNumber 校验并设置手机号，存储归一化后的数字
func (a *Author) SetPhoneNumber(phone *string) error {
	value, err := ValidatePhoneNumber(phone)
	if err != nil {
		return err
	}
	a.PhoneNumber = value
	return nil
}

// Validate 重新校验无需查库的字段
func (a *Author) Validate() error {
	if err := validateAuthorNamePresent(a.Name); err != nil {
		return err
	}
	_, err := ValidatePhoneNumber(a.PhoneNumber)
	return err
}

func (a Author) String() string {
	return fmt.Sprintf("Author(id=%d, name=%s)", a.ID, a.Name)
}
