package controllers

import (
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/utils"
	"net/http"
	"time"
)

type HealthController struct {
	StartedAt time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{StartedAt: time.Now()}
}

func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthyMessage, map[string]interface{}{
		"name":    constvars.AppName,
		"uptime":  time.Since(ctrl.StartedAt).Round(time.Second).String(),
		"started": ctrl.StartedAt.Format(time.RFC3339),
	})
}
