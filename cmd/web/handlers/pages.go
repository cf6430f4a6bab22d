package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"congress-tracker/cmd/internal/logger"
	"congress-tracker/cmd/web/query"
	"congress-tracker/cmd/web/services"
	"congress-tracker/cmd/web/trace"
	"congress-tracker/cmd/web/view"
)

// ListingPageHandler renders the filterable trade table. The form and the
// pagination links point back at the path the page was served from.
func ListingPageHandler(svc *services.TradeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		q := c.Request.URL.Query()
		filter := query.Decode(q)
		page := query.ParsePage(q.Get(query.KeyPage))

		opts, err := svc.Options(ctx)
		if err != nil {
			renderErrorPage(c, http.StatusInternalServerError, "failed to load filter options", err)
			return
		}
		trades, err := svc.List(ctx, filter, page)
		if err != nil {
			renderErrorPage(c, http.StatusInternalServerError, "failed to load trades", err)
			return
		}
		c.HTML(http.StatusOK, view.ListingTemplate, view.NewListingPage(c.Request.URL.Path, filter, opts, trades))
	}
}

// ProfilePageHandler renders one politician. Only "page" is read from the
// query string.
func ProfilePageHandler(svc *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		page := query.ParsePage(c.Query(query.KeyPage))

		profile, err := svc.Get(c.Request.Context(), name, page)
		if err != nil {
			if errors.Is(err, services.ErrPoliticianNotFound) {
				renderErrorPage(c, http.StatusNotFound, "politician not found", err)
				return
			}
			renderErrorPage(c, http.StatusInternalServerError, "failed to load politician", err)
			return
		}
		c.HTML(http.StatusOK, view.ProfileTemplate, view.NewProfilePage(profile))
	}
}

func renderErrorPage(c *gin.Context, status int, message string, err error) {
	_ = c.Error(err)
	logError(c, status, err)
	c.HTML(status, view.ErrorTemplate, view.ErrorPage{Status: status, Message: message})
}

func logError(c *gin.Context, status int, err error) {
	fields := logger.Fields{
		"path":       c.Request.URL.Path,
		"status":     status,
		"request_id": trace.RequestIDFromContext(c.Request.Context()),
		"error":      err.Error(),
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorWithFields("request failed", fields)
		return
	}
	logger.DebugWithFields("request rejected", fields)
}
