package dto

import (
	"agency/shared/constant"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries paging and ordering for list endpoints. SortBy is interpolated into SQL,
// so handlers must check it against their own column whitelist.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string. Non-positive numbers and
// unknown directions are ignored. With withDefaults, a missing page or limit falls back to the defaults.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	q.Page = positiveOr(query.Get(constant.RequestParamPage), q.Page)
	q.Limit = positiveOr(query.Get(constant.RequestParamLimit), q.Limit)

	if sortBy := query.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir == SortDirAsc || dir == SortDirDesc {
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// OrderBy renders the ORDER BY clause, empty unless both SortBy and SortDir are set.
func (q QueryParams) OrderBy() string {
	if q.SortBy == "" || q.SortDir == "" {
		return ""
	}

	return fmt.Sprintf("ORDER BY %s %s", q.SortBy, q.SortDir)
}

// Pagination renders the LIMIT/OFFSET clause with its named arguments. Without a limit nothing is paged.
func (q QueryParams) Pagination() (string, map[string]any) {
	switch {
	case q.Limit <= 0:
		return "", map[string]any{}
	case q.Page <= 0:
		return "LIMIT :limit", map[string]any{"limit": q.Limit}
	default:
		return "LIMIT :limit OFFSET :offset", map[string]any{"limit": q.Limit, "offset": (q.Page - 1) * q.Limit}
	}
}

func positiveOr(raw string, fallback int) int {
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return n
	}

	return fallback
}
