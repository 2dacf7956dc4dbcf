package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pickwise/laptop-advisor-backend/internal/http/response"
	"github.com/pickwise/laptop-advisor-backend/internal/services"
	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

type RecommendHandler struct {
	recommender  services.RecommendationService
	defaultLimit int
}

func NewRecommendHandler(recommender services.RecommendationService, defaultLimit int) *RecommendHandler {
	if defaultLimit <= 0 {
		defaultLimit = services.DefaultRecommendLimit
	}
	return &RecommendHandler{recommender: recommender, defaultLimit: defaultLimit}
}

type recommendReq struct {
	Budget       *float64 `json:"budget"`
	BudgetTarget *float64 `json:"budget_target"`
	UsageType    string   `json:"usage_type"`
	Brands       []string `json:"brands"`
	MinRAMGB     *int     `json:"min_ram_gb"`
	MinStorageGB *int     `json:"min_storage_gb"`
	ScreenInches *float64 `json:"screen_inches"`
	PreferGPU    *bool    `json:"prefer_gpu"`
	OS           *string  `json:"os"`
	Limit        int      `json:"limit"`
}

// POST /api/recommendations
// One-shot scoring without a conversation: the caller supplies a fully
// formed preference payload.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Budget == nil || *req.Budget <= 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_budget", errors.New("budget must be a positive number"))
		return
	}
	usage, ok := types.ParseUsageType(req.UsageType)
	if !ok {
		response.RespondError(c, http.StatusBadRequest, "invalid_usage_type",
			fmt.Errorf("unknown usage_type %q", req.UsageType))
		return
	}

	prefs := types.PreferenceRecord{
		Budget:       types.BudgetPref{Max: req.Budget, Target: req.BudgetTarget},
		Usage:        &usage,
		MinRAMGB:     req.MinRAMGB,
		MinStorageGB: req.MinStorageGB,
		ScreenInches: req.ScreenInches,
		PreferGPU:    req.PreferGPU,
		OS:           req.OS,
	}
	prefs.AddBrands(req.Brands...)

	limit := req.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}

	recs := h.recommender.Recommend(c.Request.Context(), prefs, limit)
	response.RespondOK(c, gin.H{
		"recommendations": recs,
		"count":           len(recs),
	})
}
