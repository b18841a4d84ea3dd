package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/search"
	"weatherdash.app/pkg/errors"
)

type searchValueRequest struct {
	Value string `json:"value"`
}

// SearchResponse is the search state plus what the dropdown renders
type SearchResponse struct {
	Input        string         `json:"input"`
	City         string         `json:"city"`
	Suggestions  []string       `json:"suggestions"`
	Visible      bool           `json:"visible"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Pending      bool           `json:"pending"`
	Generation   uint64         `json:"generation"`
	View         SearchViewBody `json:"view"`
}

type SearchViewBody struct {
	Render  bool     `json:"render"`
	Entries []string `json:"entries"`
	IsError bool     `json:"is_error"`
}

func newSearchResponse(state search.State) SearchResponse {
	items := state.Suggestions.Items
	if items == nil {
		items = []string{}
	}
	view := search.ViewOf(state.Suggestions)

	return SearchResponse{
		Input:        state.Query.RawInput,
		City:         state.Query.NormalizedName,
		Suggestions:  items,
		Visible:      state.Suggestions.Visible,
		ErrorMessage: state.Suggestions.ErrorMessage,
		Pending:      state.Pending,
		Generation:   state.Generation,
		View: SearchViewBody{
			Render:  view.Render,
			Entries: view.Entries,
			IsError: view.IsError,
		},
	}
}

// getSearch handles GET /api/search
func (s *HTTPServerAdapter) getSearch(c *gin.Context) {
	c.JSON(http.StatusOK, newSearchResponse(s.search.State()))
}

// searchInput handles POST /api/search/input. The lookup runs in the background;
// clients poll GET /api/search until pending is false.
func (s *HTTPServerAdapter) searchInput(c *gin.Context) {
	var req searchValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("invalid request body"))
		return
	}

	s.search.OnInputChange(c.Request.Context(), req.Value)
	c.JSON(http.StatusAccepted, newSearchResponse(s.search.State()))
}

// searchSelect handles POST /api/search/select
func (s *HTTPServerAdapter) searchSelect(c *gin.Context) {
	var req searchValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("invalid request body"))
		return
	}

	s.search.OnSuggestionSelect(req.Value)
	c.JSON(http.StatusOK, newSearchResponse(s.search.State()))
}

// searchSubmit handles POST /api/search/submit. Success starts a dashboard fetch.
func (s *HTTPServerAdapter) searchSubmit(c *gin.Context) {
	if err := s.search.OnSubmit(c.Request.Context()); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"search":    newSearchResponse(s.search.State()),
		"dashboard": s.dashboard.Snapshot(),
	})
}
