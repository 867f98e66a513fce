package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inkwell/internal/models"
	"github.com/inkwell/internal/repository"

	"gorm.io/gorm"
)

// AuthorService 作者业务服务
type AuthorService struct {
	repo repository.AuthorRepository
}

// NewAuthorService 创建作者服务
func NewAuthorService(repo repository.AuthorRepository) *AuthorService {
	return &AuthorService{repo: repo}
}

// CreateAuthorInput 创建/更新作者输入
type CreateAuthorInput struct {
	Name        string
	PhoneNumber *string
}

// List 获取作者列表
func (s *AuthorService) List(search string, page, pageSize int) ([]models.Author, int64, error) {
	return s.repo.List(repository.AuthorListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(search),
	})
}

// Get 获取作者详情
func (s *AuthorService) Get(id uint) (*models.Author, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	author, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}
	return author, nil
}

// Create 创建作者
func (s *AuthorService) Create(input CreateAuthorInput) (*models.Author, error) {
	author, err := models.NewAuthor(input.Name, input.PhoneNumber, s.repo)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(author); err != nil {
		return nil, translateAuthorWriteError(author.Name, err)
	}
	return author, nil
}

// Update 更新作者，所有字段重新校验
func (s *AuthorService) Update(id uint, input CreateAuthorInput) (*models.Author, error) {
	author, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := author.SetName(input.Name, s.repo); err != nil {
		return nil, err
	}
	if err := author.SetPhoneNumber(input.PhoneNumber); err != nil {
		return nil, err
	}

	if err := s.repo.Update(author); err != nil {
		return nil, translateAuthorWriteError(author.Name, err)
	}
	return author, nil
}

// Delete 删除作者
func (s *AuthorService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// translateAuthorWriteError 唯一索引冲突与查重校验返回同一错误
func translateAuthorWriteError(name string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.DuplicateAuthorNameError(name)
	}
	return fmt.Errorf("save author: %w", err)
}
