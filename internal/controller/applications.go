package controller

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/api"
	"opportune-web/internal/middleware"
	"opportune-web/internal/model"
	"opportune-web/internal/utilities"
)

// ApplicationsPage lists the current user's applications.
func (ct *Controller) ApplicationsPage(c *gin.Context) {
	data := pageData(c, "My applications")

	apps, err := ct.API.MyApplications(c.Request.Context(), middleware.ExtractToken(c))
	if err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		data["Error"] = msg
	}
	data["Applications"] = apps

	c.HTML(http.StatusOK, "applications.html", data)
}

// ApplicationDetailPage shows one application. HR additionally gets the
// status dropdown and the resume-analysis panel, fetched independently of
// the application record; a 404 there renders as "not yet analyzed".
func (ct *Controller) ApplicationDetailPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("applicationId"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/applications")
		return
	}

	token := middleware.ExtractToken(c)
	user := middleware.ExtractUser(c)
	data := pageData(c, "Application")
	data["Statuses"] = model.ApplicationStatuses

	app, err := ct.API.GetApplication(c.Request.Context(), token, id)
	if err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, api.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, api.ErrForbidden):
			status = http.StatusForbidden
		}
		data["Error"] = msg
		c.HTML(status, "error.html", data)
		return
	}
	data["Application"] = app

	if user.Role == model.RoleHR {
		resume, err := ct.API.ParsedResume(c.Request.Context(), token, app.ID)
		switch {
		case err == nil:
			data["Resume"] = resume
		case errors.Is(err, api.ErrNotFound):
			// Not yet analyzed; the panel renders its placeholder.
		case errors.Is(err, api.ErrUnauthorized):
			ct.Sessions.HandleUnauthorized(c, middleware.ExtractSessionID(c))
			return
		}

		if app.ResumeFileID != nil {
			if file, err := ct.API.GetFile(c.Request.Context(), token, *app.ResumeFileID); err == nil {
				data["ResumeFile"] = file
			}
		}
	}

	c.HTML(http.StatusOK, "application_detail.html", data)
}

// WithdrawHandler deletes the user's own application. Only offered while
// the status is still APPLIED; the backend rejects anything else.
func (ct *Controller) WithdrawHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("applicationId"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/applications")
		return
	}

	if err := ct.API.WithdrawApplication(c.Request.Context(), middleware.ExtractToken(c), id); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/applications?error="+url.QueryEscape(msg))
		return
	}
	c.Redirect(http.StatusFound, "/applications?flash="+url.QueryEscape("Application withdrawn."))
}

// StatusUpdateHandler requests a status transition for an application. Any
// listed status may be submitted; transition validity is the backend's
// call.
func (ct *Controller) StatusUpdateHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("applicationId"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/hr-dashboard")
		return
	}

	status := c.PostForm("status")
	if !utilities.Contains(model.ApplicationStatuses, status) {
		c.Redirect(http.StatusFound, "/applications/"+c.Param("applicationId")+
			"?error="+url.QueryEscape("Unknown status."))
		return
	}

	if _, err := ct.API.UpdateApplicationStatus(c.Request.Context(), middleware.ExtractToken(c), id, status); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/applications/"+c.Param("applicationId")+
			"?error="+url.QueryEscape(msg))
		return
	}

	if ref := c.GetHeader("Referer"); ref != "" {
		c.Redirect(http.StatusFound, ref)
		return
	}
	c.Redirect(http.StatusFound, "/applications/"+c.Param("applicationId"))
}
