package cache

import (
	"context"
	"fmt"

	"github.com/inkwell/internal/constants"
	"github.com/inkwell/internal/models"
)

func authorKey(id uint) string {
	return fmt.Sprintf("%s:%d", constants.CacheKeyAuthorPrefix, id)
}

func postKey(id uint) string {
	return fmt.Sprintf("%s:%d", constants.CacheKeyPostPrefix, id)
}

// GetAuthor 获取作者快照
func GetAuthor(ctx context.Context, id uint) (*models.Author, bool, error) {
	if id == 0 {
		return nil, false, nil
	}
	var author models.Author
	hit, err := GetJSON(ctx, authorKey(id), &author)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &author, true, nil
}

// SetAuthor 写入作者快照
func SetAuthor(ctx context.Context, author *models.Author) error {
	if author == nil || author.ID == 0 {
		return nil
	}
	return SetJSON(ctx, authorKey(author.ID), author, recordTTL)
}

// DelAuthor 删除作者快照
func DelAuthor(ctx context.Context, id uint) error {
	if id == 0 {
		return nil
	}
	return Del(ctx, authorKey(id))
}

// GetPost 获取文章快照
func GetPost(ctx context.Context, id uint) (*models.Post, bool, error) {
	if id == 0 {
		return nil, false, nil
	}
	var post models.Post
	hit, err := GetJSON(ctx, postKey(id), &post)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &post, true, nil
}

// SetPost 写入文章快照
func SetPost(ctx context.Context, post *models.Post) error {
	if post == nil || post.ID == 0 {
		return nil
	}
	return SetJSON(ctx, postKey(post.ID), post, recordTTL)
}

// DelPost 删除文章快照
func DelPost(ctx context.Context, id uint) error {
	if id == 0 {
		return nil
	}
	return Del(ctx, postKey(id))
}

// PurgeRecords 清除全部作者与文章快照
func PurgeRecords(ctx context.Context) (int64, error) {
	return DelByPattern(ctx, constants.CacheKeyAuthorPrefix+":*", constants.CacheKeyPostPrefix+":*")
}
