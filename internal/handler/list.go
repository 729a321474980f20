package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/utils"
)

// listState reads q, sort, dir, page and page_size. Without page_size the
// actor's stored size for the page applies; an explicit size is remembered.
func listState(c *gin.Context, prefs service.PreferenceService, page string) listview.State {
	p, size := utils.GetPaginationParams(c)
	actor := middleware.GetSession(c).Actor

	if size == 0 {
		size = prefs.PageSize(actor, page)
	} else if listview.ValidPageSize(size) {
		_ = prefs.SetPageSize(actor, page, size)
	}

	return listview.State{
		Query: strings.TrimSpace(c.Query("q")),
		Sort: listview.Sort{
			Key:       c.Query("sort"),
			Direction: listview.ParseDirection(c.Query("dir")),
		},
		Page:     p,
		PageSize: listview.NormalizePageSize(size),
	}
}

// respondPage writes one listview page with its pagination meta
func respondPage[T any](c *gin.Context, message string, res listview.Result[T]) {
	utils.PaginatedSuccessResponse(c, message, res.Items, res.State.Page, res.State.PageSize, int64(res.Total))
}
