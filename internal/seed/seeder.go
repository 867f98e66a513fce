package seed

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/inkwell/internal/cache"
	"github.com/inkwell/internal/constants"
	"github.com/inkwell/internal/logger"
	"github.com/inkwell/internal/models"
	"github.com/inkwell/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	contentParagraphSentences = 10
	summaryMaxChars           = 200
	maxNameAttempts           = 100
)

// ClickbaitTitles 种子文章标题池，均包含标题关键词
var ClickbaitTitles = []string{
	"You Won't Believe What Happened Next",
	"Secret Tips That Doctors Don't Want You to Know",
	"Top 10 Amazing Facts About Go",
	"Guess What This Developer Did to Solve This Bug",
	"Won't Believe How Easy This Is",
	"Secret Methods for Better Code",
	"Top Reasons Why Gophers Are Amazing",
	"Guess Which Framework is Best",
}

// ErrNameSpaceExhausted 无法生成足够多的不重复姓名
var ErrNameSpaceExhausted = errors.New("unable to generate a unique author name")

// Options 种子参数
type Options struct {
	AuthorCount int
	PostCount   int
	Logger      *zap.SugaredLogger
}

// Result 种子结果
type Result struct {
	Authors int
	Posts   int
}

// Seeder 清空并重建作者与文章数据
type Seeder struct {
	db   *gorm.DB
	gen  Generator
	opts Options
}

// New 创建 Seeder
func New(db *gorm.DB, gen Generator, opts Options) *Seeder {
	if opts.AuthorCount < 0 {
		opts.AuthorCount = 0
	}
	if opts.PostCount < 0 {
		opts.PostCount = 0
	}
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	return &Seeder{db: db, gen: gen, opts: opts}
}

// Run 在单个事务中删除旧数据并写入新数据，任一校验失败则整体回滚
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	if s == nil || s.db == nil || s.gen == nil {
		return Result{}, errors.New("seeder not initialized")
	}

	var result Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authorRepo := repository.NewAuthorRepository(tx)
		postRepo := repository.NewPostRepository(tx)

		deletedAuthors, err := authorRepo.DeleteAll()
		if err != nil {
			return fmt.Errorf("delete authors: %w", err)
		}
		deletedPosts, err := postRepo.DeleteAll()
		if err != nil {
			return fmt.Errorf("delete posts: %w", err)
		}
		s.opts.Logger.Infow("seed_cleared", "authors", deletedAuthors, "posts", deletedPosts)

		authors, err := s.buildAuthors(authorRepo)
		if err != nil {
			return err
		}
		posts, err := s.buildPosts()
		if err != nil {
			return err
		}

		if err := authorRepo.CreateBatch(authors); err != nil {
			return fmt.Errorf("insert authors: %w", err)
		}
		if err := postRepo.CreateBatch(posts); err != nil {
			return fmt.Errorf("insert posts: %w", err)
		}

		result = Result{Authors: len(authors), Posts: len(posts)}
		return nil
	})
	if err != nil {
		s.opts.Logger.Errorw("seed_failed", "error", err)
		return Result{}, err
	}
	s.opts.Logger.Infow("seed_completed", "authors", result.Authors, "posts", result.Posts)

	// 旧记录已删除，清掉对应的快照
	purged, err := cache.PurgeRecords(ctx)
	if err != nil {
		s.opts.Logger.Warnw("seed_cache_purge_failed", "purged", purged, "error", err)
	} else if purged > 0 {
		s.opts.Logger.Infow("seed_cache_purged", "keys", purged)
	}
	return result, nil
}

func (s *Seeder) buildAuthors(repo models.AuthorNameChecker) ([]*models.Author, error) {
	checker := newBatchNameChecker(repo)
	authors := make([]*models.Author, 0, s.opts.AuthorCount)
	for i := 0; i < s.opts.AuthorCount; i++ {
		name, err := s.uniqueName(checker)
		if err != nil {
			return nil, err
		}
		phone := s.gen.PhoneDigits(constants.PhoneNumberDigits)
		author, err := models.NewAuthor(name, &phone, checker)
		if err != nil {
			return nil, fmt.Errorf("author %d: %w", i+1, err)
		}
		checker.add(author.Name)
		authors = append(authors, author)
	}
	return authors, nil
}

func (s *Seeder) uniqueName(checker *batchNameChecker) (string, error) {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := s.gen.Name()
		if !checker.pending(name) {
			return name, nil
		}
	}
	return "", ErrNameSpaceExhausted
}

func (s *Seeder) buildPosts() ([]*models.Post, error) {
	posts := make([]*models.Post, 0, s.opts.PostCount)
	for i := 0; i < s.opts.PostCount; i++ {
		content := s.buildContent()
		summary := s.gen.Text(summaryMaxChars)
		category := s.gen.Pick(constants.PostCategories)

		post, err := models.NewPost(models.PostFields{
			Title:    s.gen.Pick(ClickbaitTitles),
			Content:  &content,
			Summary:  &summary,
			Category: &category,
		})
		if err != nil {
			return nil, fmt.Errorf("post %d: %w", i+1, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// buildContent 段落不足 250 字符时逐句追加
func (s *Seeder) buildContent() string {
	content := s.gen.Paragraph(contentParagraphSentences)
	for utf8.RuneCountInString(content) < constants.PostContentMinLen {
		content += " " + s.gen.Sentence()
	}
	return content
}

// batchNameChecker 同时检查数据库与本批次待写入的姓名
type batchNameChecker struct {
	base  models.AuthorNameChecker
	names map[string]struct{}
}

func newBatchNameChecker(base models.AuthorNameChecker) *batchNameChecker {
	return &batchNameChecker{base: base, names: make(map[string]struct{})}
}

func (c *batchNameChecker) CountByName(name string, excludeID *uint) (int64, error) {
	var count int64
	if c.base != nil {
		stored, err := c.base.CountByName(name, excludeID)
		if err != nil {
			return 0, err
		}
		count = stored
	}
	if c.pending(name) {
		count++
	}
	return count, nil
}

func (c *batchNameChecker) pending(name string) bool {
	_, ok := c.names[name]
	return ok
}

func (c *batchNameChecker) add(name string) {
	c.names[name] = struct{}{}
}
