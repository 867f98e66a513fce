package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/inkwell/internal/constants"
)

// 字段名
const (
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
	FieldTitle       = "title"
	FieldContent     = "content"
	FieldSummary     = "summary"
	FieldCategory    = "category"
)

// ErrValidation 所有字段校验错误均匹配该哨兵错误
var ErrValidation = errors.New("validation failed")

// ValidationError 字段校验失败
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is 支持 errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AuthorNameChecker 作者名唯一性查询
type AuthorNameChecker interface {
	CountByName(name string, excludeID *uint) (int64, error)
}

// ValidateAuthorName 校验作者名非空且唯一，selfID 为 0 表示新记录
func ValidateAuthorName(name string, selfID uint, checker AuthorNameChecker) (string, error) {
	if err := validateAuthorNamePresent(name); err != nil {
		return "", err
	}
	if checker == nil {
		return name, nil
	}

	var excludeID *uint
	if selfID != 0 {
		excludeID = &selfID
	}
	count, err := checker.CountByName(name, excludeID)
	if err != nil {
		return "", fmt.Errorf("check author name: %w", err)
	}
	if count > 0 {
		return "", DuplicateAuthorNameError(name)
	}
	return name, nil
}

// DuplicateAuthorNameError 作者名重复错误
func DuplicateAuthorNameError(name string) *ValidationError {
	return newValidationError(FieldName, fmt.Sprintf("Author with name '%s' already exists", name))
}

func validateAuthorNamePresent(name string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError(FieldName, "Author name is required and cannot be empty")
	}
	if !utf8.ValidString(name) {
		return newValidationError(FieldName, "Author name must be valid UTF-8 text")
	}
	return nil
}

// ValidatePhoneNumber 校验手机号，仅允许数字、空格、连字符与括号，返回 10 位纯数字
func ValidatePhoneNumber(phone *string) (*string, error) {
	if phone == nil {
		return nil, nil
	}

	digits := make([]byte, 0, constants.PhoneNumberDigits)
	hasForeign := false
	for _, r := range *phone {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, byte(r))
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			hasForeign = true
		}
	}

	// 先校验位数，再校验非法字符
	if len(digits) != constants.PhoneNumberDigits {
		return nil, newValidationError(FieldPhoneNumber, "Phone number must be exactly ten digits")
	}
	if hasForeign {
		return nil, newValidationError(FieldPhoneNumber, "Phone number must contain only digits")
	}
	normalized := string(digits)
	return &normalized, nil
}

// ValidateTitle 校验标题非空且包含至少一个标题党关键词
func ValidateTitle(title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", newValidationError(FieldTitle, "Post title is required and cannot be empty")
	}
	if !utf8.ValidString(title) {
		return "", newValidationError(FieldTitle, "Post title must be valid UTF-8 text")
	}
	for _, keyword := range constants.ClickbaitKeywords {
		if strings.Contains(title, keyword) {
			return title, nil
		}
	}
	return "", newValidationError(FieldTitle, "Post title must contain one of: 'Won't Believe', 'Secret', 'Top', 'Guess'")
}

// ValidateContent 校验正文长度不少于 250 个字符
func ValidateContent(content *string) (*string, error) {
	if content != nil && !utf8.ValidString(*content) {
		return nil, newValidationError(FieldContent, "Post content must be valid UTF-8 text")
	}
	if content != nil && utf8.RuneCountInString(*content) < constants.PostContentMinLen {
		return nil, newValidationError(FieldContent, "Post content must be at least 250 characters long")
	}
	return content, nil
}

// ValidateSummary 校验摘要长度不超过 250 个字符
func ValidateSummary(summary *string) (*string, error) {
	if summary != nil && !utf8.ValidString(*summary) {
		return nil, newValidationError(FieldSummary, "Post summary must be valid UTF-8 text")
	}
	if summary != nil && utf8.RuneCountInString(*summary) > constants.PostSummaryMaxLen {
		return nil, newValidationError(FieldSummary, "Post summary must be a maximum of 250 characters")
	}
	return summary, nil
}

// ValidateCategory 校验分类为 Fiction 或 Non-Fiction
func ValidateCategory(category *string) (*string, error) {
	if category == nil {
		return nil, nil
	}
	for _, allowed := range constants.PostCategories {
		if *category == allowed {
			return category, nil
		}
	}
	return nil, newValidationError(FieldCategory, "Post category must be either 'Fiction' or 'Non-Fiction'")
}
