package repository

import "gorm.io/gorm"

// applyPagination 应用分页参数，统一处理非法页码与偏移量。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return query.Limit(pageSize).Offset(offset)
}

// clampPage 把越界页码收敛到 [1, 总页数]。
// 超过末页的请求落在末页而不是返回空列表；total 为 0 时回到第 1 页。
func clampPage(page, pageSize int, total int64) int {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if page > totalPages {
		return totalPages
	}
	return page
}
