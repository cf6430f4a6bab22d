package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"congress-tracker/cmd/web/dto"
	"congress-tracker/cmd/web/query"
	"congress-tracker/cmd/web/services"
)

// TradesBasePath is the path the JSON pagination links point at.
const TradesBasePath = "/api/v1/trades"

// ListTradesHandler godoc
// @Summary      List trades
// @Description  List disclosed trades with filters and pagination
// @Tags         trades
// @Param        page         query  int       false  "Page number (1-based)"
// @Param        name         query  string    false  "Politician name (substring)"
// @Param        party        query  string    false  "Party code"
// @Param        state        query  string    false  "State"
// @Param        industry     query  []string  false  "Industries (OR match)"
// @Param        committee    query  []string  false  "Committees (OR match)"
// @Param        transaction  query  string    false  "Transaction type"
// @Param        range        query  string    false  "Trade size bucket"
// @Param        after        query  string    false  "Traded on or after (YYYY-MM-DD)"
// @Produce      json
// @Success      200  {object}  dto.TradeListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/trades [get]
func ListTradesHandler(svc *services.TradeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		filter := query.Decode(q)
		page := query.ParsePage(q.Get(query.KeyPage))

		trades, err := svc.List(c.Request.Context(), filter, page)
		if err != nil {
			abortJSON(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, dto.TradeListResponse{
			Filter: filter,
			Trades: trades,
			Links:  query.BuildLinks(TradesBasePath, trades.Page, trades.TotalPages, &filter),
		})
	}
}

// GetPoliticianHandler godoc
// @Summary      Get politician profile
// @Description  Politician metadata, committees and a page of trades
// @Tags         politicians
// @Param        name  path   string  true   "Politician name"
// @Param        page  query  int     false  "Page number (1-based)"
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/politicians/{name} [get]
func GetPoliticianHandler(svc *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		page := query.ParsePage(c.Query(query.KeyPage))

		profile, err := svc.Get(c.Request.Context(), name, page)
		if err != nil {
			if errors.Is(err, services.ErrPoliticianNotFound) {
				abortJSON(c, http.StatusNotFound, err)
				return
			}
			abortJSON(c, http.StatusInternalServerError, err)
			return
		}
		base := "/api/v1/politicians/" + url.PathEscape(profile.Name)
		c.JSON(http.StatusOK, dto.ProfileResponse{
			Profile: profile,
			Links:   query.BuildLinks(base, profile.Trades.Page, profile.Trades.TotalPages, nil),
		})
	}
}

// FilterOptionsHandler godoc
// @Summary      Filter options
// @Description  Values offered by the listing filter controls
// @Tags         trades
// @Produce      json
// @Success      200  {object}  dto.FilterOptions
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/filters [get]
func FilterOptionsHandler(svc *services.TradeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts, err := svc.Options(c.Request.Context())
		if err != nil {
			abortJSON(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, opts)
	}
}

func abortJSON(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	logError(c, status, err)
	msg := err.Error()
	if status == http.StatusNotFound {
		msg = "not found"
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}
