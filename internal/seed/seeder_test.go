package seed

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/inkwell/internal/cache"
	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/constants"
	"github.com/inkwell/internal/models"
	"github.com/inkwell/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type stubGenerator struct {
	names    []string
	nameIdx  int
	titles   []string
	pickIdx  int
	sentence string
}

func (g *stubGenerator) Name() string {
	if len(g.names) > 0 {
		name := g.names[g.nameIdx%len(g.names)]
		g.nameIdx++
		return name
	}
	g.nameIdx++
	return fmt.Sprintf("Writer %d", g.nameIdx)
}

func (g *stubGenerator) PhoneDigits(n int) string {
	return strings.Repeat("7", n)
}

func (g *stubGenerator) Paragraph(sentences int) string {
	return strings.TrimSpace(strings.Repeat(g.Sentence()+" ", sentences/5))
}

func (g *stubGenerator) Sentence() string {
	if g.sentence != "" {
		return g.sentence
	}
	return "The quick brown fox jumps over the lazy dog."
}

func (g *stubGenerator) Text(maxChars int) string {
	return buildText(g.Sentence, maxChars)
}

func (g *stubGenerator) Pick(options []string) string {
	if g.titles != nil && len(options) == len(ClickbaitTitles) && options[0] == ClickbaitTitles[0] {
		options = g.titles
	}
	value := options[g.pickIdx%len(options)]
	g.pickIdx++
	return value
}

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	t.Cleanup(func() {
		_ = models.CloseDB(db)
	})
	return db
}

func countRows(t *testing.T, db *gorm.DB) (int64, int64) {
	t.Helper()
	authors, err := repository.NewAuthorRepository(db).Count()
	if err != nil {
		t.Fatalf("count authors failed: %v", err)
	}
	posts, err := repository.NewPostRepository(db).Count()
	if err != nil {
		t.Fatalf("count posts failed: %v", err)
	}
	return authors, posts
}

func defaultOptions() Options {
	return Options{
		AuthorCount: constants.SeedDefaultAuthorCount,
		PostCount:   constants.SeedDefaultPostCount,
	}
}

func TestSeederRunCreatesValidRows(t *testing.T) {
	db := newSeedTestDB(t)
	result, err := New(db, &stubGenerator{}, defaultOptions()).Run(context.Background())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if result.Authors != 25 || result.Posts != 25 {
		t.Fatalf("result want 25/25 got %d/%d", result.Authors, result.Posts)
	}

	var posts []models.Post
	if err := db.Find(&posts).Error; err != nil {
		t.Fatalf("load posts failed: %v", err)
	}
	for _, post := range posts {
		if err := post.Validate(); err != nil {
			t.Fatalf("seeded post %d invalid: %v", post.ID, err)
		}
		if post.Content == nil || utf8.RuneCountInString(*post.Content) < constants.PostContentMinLen {
			t.Fatalf("seeded content too short")
		}
		if post.Summary == nil || utf8.RuneCountInString(*post.Summary) > summaryMaxChars {
			t.Fatalf("seeded summary too long")
		}
	}

	var authors []models.Author
	if err := db.Find(&authors).Error; err != nil {
		t.Fatalf("load authors failed: %v", err)
	}
	for _, author := range authors {
		if err := author.Validate(); err != nil {
			t.Fatalf("seeded author %d invalid: %v", author.ID, err)
		}
	}
}

func TestSeederRunTwiceReplacesRows(t *testing.T) {
	db := newSeedTestDB(t)
	for i := 0; i < 2; i++ {
		if _, err := New(db, &stubGenerator{}, defaultOptions()).Run(context.Background()); err != nil {
			t.Fatalf("seed run %d failed: %v", i+1, err)
		}
	}
	authors, posts := countRows(t, db)
	if authors != 25 || posts != 25 {
		t.Fatalf("rows after two runs want 25/25 got %d/%d", authors, posts)
	}
}

func TestSeederPurgesRecordCache(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse miniredis port failed: %v", err)
	}
	if err := cache.InitRedis(&config.RedisConfig{Enabled: true, Host: mr.Host(), Port: port}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	t.Cleanup(func() {
		_ = cache.Close()
	})

	db := newSeedTestDB(t)
	ctx := context.Background()
	author, err := models.NewAuthor("Jane Doe", nil, nil)
	if err != nil {
		t.Fatalf("build author failed: %v", err)
	}
	if err := repository.NewAuthorRepository(db).Create(author); err != nil {
		t.Fatalf("create author failed: %v", err)
	}
	if err := cache.SetAuthor(ctx, author); err != nil {
		t.Fatalf("cache author failed: %v", err)
	}
	if err := cache.SetPost(ctx, &models.Post{ID: 9, Title: "Top 5 Tips"}); err != nil {
		t.Fatalf("cache post failed: %v", err)
	}

	if _, err := New(db, &stubGenerator{}, defaultOptions()).Run(ctx); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if cached, hit, err := cache.GetAuthor(ctx, author.ID); hit || err != nil {
		t.Fatalf("author cache should be purged after reseed, got %v hit=%v err=%v", cached, hit, err)
	}
	if _, hit, err := cache.GetPost(ctx, 9); hit || err != nil {
		t.Fatalf("post cache should be purged after reseed, hit=%v err=%v", hit, err)
	}
}

func TestSeederSkipsRepeatedNames(t *testing.T) {
	db := newSeedTestDB(t)
	gen := &stubGenerator{names: []string{"Ann Lee", "Ann Lee", "Bo Kim", "Cy Park"}}
	result, err := New(db, gen, Options{AuthorCount: 3}).Run(context.Background())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if result.Authors != 3 {
		t.Fatalf("authors want 3 got %d", result.Authors)
	}
}

func TestSeederNameSpaceExhausted(t *testing.T) {
	db := newSeedTestDB(t)
	gen := &stubGenerator{names: []string{"Only Name"}}
	_, err := New(db, gen, Options{AuthorCount: 2}).Run(context.Background())
	if !errors.Is(err, ErrNameSpaceExhausted) {
		t.Fatalf("expected ErrNameSpaceExhausted, got %v", err)
	}
}

func TestSeederValidationFailureRollsBack(t *testing.T) {
	db := newSeedTestDB(t)
	if _, err := New(db, &stubGenerator{}, defaultOptions()).Run(context.Background()); err != nil {
		t.Fatalf("initial seed failed: %v", err)
	}

	bad := &stubGenerator{titles: []string{"Top Story", "Hello World"}}
	_, err := New(db, bad, defaultOptions()).Run(context.Background())
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	authors, posts := countRows(t, db)
	if authors != 25 || posts != 25 {
		t.Fatalf("failed run must not delete existing rows, got %d/%d", authors, posts)
	}
}

func TestSeederWithFakeGenerator(t *testing.T) {
	db := newSeedTestDB(t)
	result, err := New(db, NewFakeGenerator(42), defaultOptions()).Run(context.Background())
	if err != nil {
		t.Fatalf("seed with faker failed: %v", err)
	}
	if result.Authors != 25 || result.Posts != 25 {
		t.Fatalf("result want 25/25 got %d/%d", result.Authors, result.Posts)
	}
}

func TestBuildTextRespectsLimit(t *testing.T) {
	sentence := "Lorem ipsum dolor sit amet."
	got := buildText(func() string { return sentence }, 200)
	if n := utf8.RuneCountInString(got); n > 200 || n == 0 {
		t.Fatalf("text length out of range: %d", n)
	}

	long := strings.Repeat("x", 300)
	got = buildText(func() string { return long }, 200)
	if utf8.RuneCountInString(got) != 200 {
		t.Fatalf("overlong first sentence should be truncated to 200, got %d", len(got))
	}

	if buildText(func() string { return sentence }, 0) != "" {
		t.Fatalf("zero budget should produce empty text")
	}
}
