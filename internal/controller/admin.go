package controller

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/middleware"
	"opportune-web/internal/model"
	"opportune-web/internal/utilities"
)

var adminTabs = []string{"overview", "users", "analytics", "invites", "requests"}

// AdminPage renders the admin tabs. Every tab's data is precomputed or
// owned by the backend; this page only fetches and renders. Mutations
// redirect back here, so the affected list is always re-fetched.
func (ct *Controller) AdminPage(c *gin.Context) {
	tab := c.Query("tab")
	if !utilities.Contains(adminTabs, tab) {
		tab = "overview"
	}

	token := middleware.ExtractToken(c)
	data := pageData(c, "Administration")
	data["Tab"] = tab

	var err error
	switch tab {
	case "overview":
		var overview model.AdminOverview
		overview, err = ct.API.AdminOverview(c.Request.Context(), token)
		data["Overview"] = overview
	case "users":
		var users []model.User
		users, err = ct.API.ListUsers(c.Request.Context(), token)
		data["Users"] = users
	case "analytics":
		var analytics model.JobAnalytics
		analytics, err = ct.API.JobAnalytics(c.Request.Context(), token)
		data["Analytics"] = analytics
	case "invites":
		var invites []model.Invite
		invites, err = ct.API.PendingInvites(c.Request.Context(), token)
		data["Invites"] = invites
		data["InviteBase"] = requestBase(c)
	case "requests":
		var requests []model.AccessRequest
		requests, err = ct.API.ListAccessRequests(c.Request.Context(), token)
		data["Requests"] = requests
	}

	if err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		data["Error"] = msg
	}

	c.HTML(http.StatusOK, "admin.html", data)
}

// requestBase reconstructs this app's external base URL for copyable
// invite links.
func requestBase(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func adminRedirect(c *gin.Context, tab, param, msg string) {
	c.Redirect(http.StatusFound, "/admin?tab="+tab+"&"+param+"="+url.QueryEscape(msg))
}

// SetUserEnabledHandler enables or disables an account.
func (ct *Controller) SetUserEnabledHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin?tab=users")
		return
	}
	enabled := c.PostForm("enabled") == "true"

	if _, err := ct.API.SetUserEnabled(c.Request.Context(), middleware.ExtractToken(c), id, enabled); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		adminRedirect(c, "users", "error", msg)
		return
	}
	adminRedirect(c, "users", "flash", "User updated.")
}

// DeleteUserHandler removes an account after the confirm dialog.
func (ct *Controller) DeleteUserHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin?tab=users")
		return
	}

	if err := ct.API.DeleteUser(c.Request.Context(), middleware.ExtractToken(c), id); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		adminRedirect(c, "users", "error", msg)
		return
	}
	adminRedirect(c, "users", "flash", "User deleted.")
}

// CreateInviteHandler issues an invite. Company name is optional at this
// layer regardless of role; the backend decides what it requires.
func (ct *Controller) CreateInviteHandler(c *gin.Context) {
	req := model.CreateInvite{
		Email:       c.PostForm("email"),
		Role:        c.PostForm("role"),
		CompanyName: c.PostForm("company"),
	}

	if !validEmail(req.Email) {
		adminRedirect(c, "invites", "error", "Please enter a valid email address.")
		return
	}
	if req.Role != model.RoleHR && req.Role != model.RoleAdmin {
		adminRedirect(c, "invites", "error", "Invites are for HR or ADMIN roles.")
		return
	}

	if _, err := ct.API.CreateInvite(c.Request.Context(), middleware.ExtractToken(c), req); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		adminRedirect(c, "invites", "error", msg)
		return
	}
	adminRedirect(c, "invites", "flash", "Invite created.")
}

// RevokeInviteHandler cancels a pending invite after the confirm dialog.
func (ct *Controller) RevokeInviteHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin?tab=invites")
		return
	}

	if err := ct.API.RevokeInvite(c.Request.Context(), middleware.ExtractToken(c), id); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		adminRedirect(c, "invites", "error", msg)
		return
	}
	adminRedirect(c, "invites", "flash", "Invite revoked.")
}

// ApproveRequestHandler approves an access request; the backend cascades
// the approval into an invite.
func (ct *Controller) ApproveRequestHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin?tab=requests")
		return
	}

	if _, err := ct.API.ApproveAccessRequest(c.Request.Context(), middleware.ExtractToken(c), id); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		adminRedirect(c, "requests", "error", msg)
		return
	}
	adminRedirect(c, "requests", "flash", "Request approved; invite created.")
}

// DenyRequestHandler denies an access request.
func (ct *Controller) DenyRequestHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin?tab=requests")
		return
	}

	if _, err := ct.API.DenyAccessRequest(c.Request.Context(), middleware.ExtractToken(c), id); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		adminRedirect(c, "requests", "error", msg)
		return
	}
	adminRedirect(c, "requests", "flash", "Request denied.")
}

// DeleteRequestHandler removes an access-request record after the confirm
// dialog.
func (ct *Controller) DeleteRequestHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin?tab=requests")
		return
	}

	if err := ct.API.DeleteAccessRequest(c.Request.Context(), middleware.ExtractToken(c), id); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		adminRedirect(c, "requests", "error", msg)
		return
	}
	adminRedirect(c, "requests", "flash", "Request deleted.")
}
