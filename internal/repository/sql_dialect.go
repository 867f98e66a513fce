package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// containsCondition 构建不区分大小写的包含匹配条件，兼容 sqlite 与 postgres。
func containsCondition(db *gorm.DB, column string) string {
	return containsConditionByDialect(dbDialectName(db), column)
}

func containsConditionByDialect(dialect, column string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return fmt.Sprintf("%s ILIKE ?", column)
	default:
		// sqlite 的 LIKE 对 ASCII 已不区分大小写，但没有默认转义符
		return fmt.Sprintf(`%s LIKE ? ESCAPE '\'`, column)
	}
}

// containsPattern 转义通配符后包裹为 %keyword%
func containsPattern(keyword string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return "%" + replacer.Replace(strings.TrimSpace(keyword)) + "%"
}
