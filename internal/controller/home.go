package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/middleware"
)

// HomePage renders the landing page with a best-effort recent-jobs strip.
// A listing failure is not worth an error banner here.
func (ct *Controller) HomePage(c *gin.Context) {
	data := pageData(c, "Home")

	jobs, err := ct.API.ListJobs(c.Request.Context(), middleware.ExtractToken(c))
	if err == nil {
		if len(jobs) > 5 {
			jobs = jobs[:5]
		}
		data["Featured"] = jobs
	}

	c.HTML(http.StatusOK, "home.html", data)
}
