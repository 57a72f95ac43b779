package page

import (
	"class-hive/biz/application/dto/basic"
	"class-hive/biz/infrastructure/consts"
)

// Parse resolves pagination options to (page, pageSize) with defaults.
func Parse(p *basic.PaginationOptions) (page int64, pageSize int64) {
	page = 1
	pageSize = consts.PageSize

	if p != nil {
		if p.Page != nil && *p.Page > 0 {
			page = *p.Page
		}
		if p.Limit != nil && *p.Limit > 0 {
			pageSize = *p.Limit
		}
	}
	return page, pageSize
}
