package seed

import (
	"strings"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator 假数据来源
type Generator interface {
	Name() string
	PhoneDigits(n int) string
	Paragraph(sentences int) string
	Sentence() string
	Text(maxChars int) string
	Pick(options []string) string
}

const sentenceWords = 8

// FakeGenerator 基于 gofakeit 的假数据生成器
type FakeGenerator struct {
	faker *gofakeit.Faker
}

// NewFakeGenerator 创建生成器，seed 为 0 时使用随机种子
func NewFakeGenerator(seed uint64) *FakeGenerator {
	return &FakeGenerator{faker: gofakeit.New(seed)}
}

// Name 随机姓名
func (g *FakeGenerator) Name() string {
	return g.faker.Name()
}

// PhoneDigits 随机 n 位数字
func (g *FakeGenerator) PhoneDigits(n int) string {
	return g.faker.Numerify(strings.Repeat("#", n))
}

// Paragraph 由若干句子组成的段落
func (g *FakeGenerator) Paragraph(sentences int) string {
	return g.faker.Paragraph(1, sentences, sentenceWords, " ")
}

// Sentence 随机句子
func (g *FakeGenerator) Sentence() string {
	return g.faker.Sentence(sentenceWords)
}

// Text 不超过 maxChars 个字符的文本
func (g *FakeGenerator) Text(maxChars int) string {
	return buildText(g.Sentence, maxChars)
}

// Pick 随机选择一项
func (g *FakeGenerator) Pick(options []string) string {
	return g.faker.RandomString(options)
}

// buildText 拼接句子直到再加一句会超出上限，首句过长时截断
func buildText(next func() string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	var b strings.Builder
	length := 0
	for {
		sentence := next()
		if sentence == "" {
			break
		}
		sentenceLen := utf8.RuneCountInString(sentence)
		if length == 0 {
			if sentenceLen > maxChars {
				return string([]rune(sentence)[:maxChars])
			}
			b.WriteString(sentence)
			length = sentenceLen
			continue
		}
		if length+1+sentenceLen > maxChars {
			break
		}
		b.WriteByte(' ')
		b.WriteString(sentence)
		length += 1 + sentenceLen
	}
	return b.String()
}
