package controller

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/middleware"
	"opportune-web/internal/model"
)

// ProfilePage renders the profile form with a best-effort preferences
// fetch.
func (ct *Controller) ProfilePage(c *gin.Context) {
	data := pageData(c, "Your profile")
	data["Prefs"] = model.EmailPreferences{}

	if prefs, err := ct.API.EmailPreferences(c.Request.Context(), middleware.ExtractToken(c)); err == nil {
		data["Prefs"] = prefs
	}

	c.HTML(http.StatusOK, "profile.html", data)
}

// UpdateProfileHandler saves the editable fields and refreshes the cached
// session user with the backend's response.
func (ct *Controller) UpdateProfileHandler(c *gin.Context) {
	upd := model.ProfileUpdate{
		FirstName: strings.TrimSpace(c.PostForm("first_name")),
		LastName:  strings.TrimSpace(c.PostForm("last_name")),
		Email:     strings.TrimSpace(c.PostForm("email")),
		Phone:     strings.TrimSpace(c.PostForm("phone")),
	}

	if upd.FirstName == "" || upd.LastName == "" || !validEmail(upd.Email) {
		c.Redirect(http.StatusFound, "/profile?error="+
			url.QueryEscape("Please fill in name and a valid email."))
		return
	}

	user, err := ct.API.UpdateProfile(c.Request.Context(), middleware.ExtractToken(c), upd)
	if err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/profile?error="+url.QueryEscape(msg))
		return
	}

	ct.Sessions.UpdateUser(middleware.ExtractSessionID(c), user)
	c.Redirect(http.StatusFound, "/profile?flash="+url.QueryEscape("Profile saved."))
}

// ChangePasswordHandler validates the confirmation locally, then submits
// the change.
func (ct *Controller) ChangePasswordHandler(c *gin.Context) {
	current := c.PostForm("current_password")
	next := c.PostForm("new_password")
	confirm := c.PostForm("confirm_password")

	switch {
	case current == "" || next == "":
		c.Redirect(http.StatusFound, "/profile?error="+
			url.QueryEscape("Please fill in both password fields."))
		return
	case len(next) < 8:
		c.Redirect(http.StatusFound, "/profile?error="+
			url.QueryEscape("New password must be at least 8 characters."))
		return
	case next != confirm:
		c.Redirect(http.StatusFound, "/profile?error="+
			url.QueryEscape("New passwords do not match."))
		return
	}

	err := ct.API.ChangePassword(c.Request.Context(), middleware.ExtractToken(c), model.PasswordChange{
		CurrentPassword: current,
		NewPassword:     next,
	})
	if err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/profile?error="+url.QueryEscape(msg))
		return
	}
	c.Redirect(http.StatusFound, "/profile?flash="+url.QueryEscape("Password changed."))
}

// EmailPreferencesHandler saves the notification checkboxes.
func (ct *Controller) EmailPreferencesHandler(c *gin.Context) {
	prefs := model.EmailPreferences{
		ApplicationUpdates: c.PostForm("application_updates") != "",
		JobRecommendations: c.PostForm("job_recommendations") != "",
		Newsletter:         c.PostForm("newsletter") != "",
	}

	if err := ct.API.UpdateEmailPreferences(c.Request.Context(), middleware.ExtractToken(c), prefs); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/profile?error="+url.QueryEscape(msg))
		return
	}
	c.Redirect(http.StatusFound, "/profile?flash="+url.QueryEscape("Preferences saved."))
}
