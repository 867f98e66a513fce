package service

import (
	"fmt"
	"strings"

	"github.com/inkwell/internal/models"
	"github.com/inkwell/internal/repository"
)

// PostService 文章业务服务
type PostService struct {
	repo repository.PostRepository
}

// NewPostService 创建文章服务
func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePostInput 创建/更新文章输入
type CreatePostInput struct {
	Title    string
	Content  *string
	Summary  *string
	Category *string
}

func (in CreatePostInput) fields() models.PostFields {
	return models.PostFields{
		Title:    in.Title,
		Content:  in.Content,
		Summary:  in.Summary,
		Category: in.Category,
	}
}

// List 获取文章列表
func (s *PostService) List(category, search string, page, pageSize int) ([]models.Post, int64, error) {
	return s.repo.List(repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: strings.TrimSpace(category),
		Search:   strings.TrimSpace(search),
	})
}

// Get 获取文章详情
func (s *PostService) Get(id uint) (*models.Post, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章
func (s *PostService) Create(input CreatePostInput) (*models.Post, error) {
	post, err := models.NewPost(input.fields())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(post); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	return post, nil
}

// Update 更新文章，所有字段重新校验
func (s *PostService) Update(id uint, input CreatePostInput) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := post.Apply(input.fields()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(post); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	return post, nil
}

// Delete 删除文章
func (s *PostService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
