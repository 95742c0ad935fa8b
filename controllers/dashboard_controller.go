package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hms-backend/services"
	"hms-backend/utils"
)

// DashboardStatsCacheKey is the Redis key for cached dashboard stats.
// Booking and room mutations invalidate it.
const DashboardStatsCacheKey = "dashboard:stats"

const dashboardStatsCacheTTL = 30 * time.Second

type DashboardController struct {
	Svc   *services.DashboardService
	Cache *redis.Client
}

func NewDashboardController(svc *services.DashboardService, cache *redis.Client) *DashboardController {
	return &DashboardController{Svc: svc, Cache: cache}
}

// GetStats GET /api/dashboard/stats
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	if ctrl.Cache != nil {
		var cached services.DashboardStats
		hit, err := services.GetFromCache(ctx, ctrl.Cache, DashboardStatsCacheKey, &cached)
		if err != nil {
			log.Printf("warning: dashboard cache read failed: %v", err)
		} else if hit {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	stats, err := ctrl.Svc.Stats(time.Now())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	if ctrl.Cache != nil {
		if err := services.SetToCache(ctx, ctrl.Cache, DashboardStatsCacheKey, stats, dashboardStatsCacheTTL); err != nil {
			log.Printf("warning: dashboard cache write failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, stats)
}
