package repository

import (
	"errors"
	"strings"

	"github.com/inkwell/internal/models"

	"gorm.io/gorm"
)

// AuthorRepository 作者数据访问接口
type AuthorRepository interface {
	WithTx(tx *gorm.DB) AuthorRepository
	List(filter AuthorListFilter) ([]models.Author, int64, error)
	GetByID(id uint) (*models.Author, error)
	GetByName(name string) (*models.Author, error)
	Create(author *models.Author) error
	CreateBatch(authors []*models.Author) error
	Update(author *models.Author) error
	Delete(id uint) error
	DeleteAll() (int64, error)
	Count() (int64, error)
	CountByName(name string, excludeID *uint) (int64, error)
}

// GormAuthorRepository GORM 实现
type GormAuthorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓库
func NewAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

// WithTx 绑定事务
func (r *GormAuthorRepository) WithTx(tx *gorm.DB) AuthorRepository {
	if tx == nil {
		return r
	}
	return &GormAuthorRepository{db: tx}
}

// List 作者列表
func (r *GormAuthorRepository) List(filter AuthorListFilter) ([]models.Author, int64, error) {
	var authors []models.Author
	query := r.db.Model(&models.Author{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where(containsCondition(r.db, "name"), containsPattern(search))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "id ASC"
	}
	if err := query.Order(orderBy).Find(&authors).Error; err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

// GetByID 根据 ID 获取作者
func (r *GormAuthorRepository) GetByID(id uint) (*models.Author, error) {
	var author models.Author
	if err := r.db.First(&author, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &author, nil
}

// GetByName 根据作者名精确查找
func (r *GormAuthorRepository) GetByName(name string) (*models.Author, error) {
	var author models.Author
	if err := r.db.Where("name = ?", name).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &author, nil
}

// Create 创建作者
func (r *GormAuthorRepository) Create(author *models.Author) error {
	return r.db.Create(author).Error
}

// CreateBatch 批量创建作者
func (r *GormAuthorRepository) CreateBatch(authors []*models.Author) error {
	if len(authors) == 0 {
		return nil
	}
	return r.db.CreateInBatches(authors, defaultBatchSize).Error
}

// Update 更新作者
func (r *GormAuthorRepository) Update(author *models.Author) error {
	return r.db.Save(author).Error
}

// Delete 删除作者
func (r *GormAuthorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Author{}, id).Error
}

// DeleteAll 清空作者表
func (r *GormAuthorRepository) DeleteAll() (int64, error) {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Author{})
	return result.RowsAffected, result.Error
}

// Count 统计作者数量
func (r *GormAuthorRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Author{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByName 统计同名作者数量
func (r *GormAuthorRepository) CountByName(name string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Author{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
