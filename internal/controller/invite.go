package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/api"
	"opportune-web/internal/model"
)

// InvitePage renders the invite-acceptance form. The page is public and
// headerless: the invitee has no account yet.
func (ct *Controller) InvitePage(c *gin.Context) {
	data := gin.H{
		"Title": "Invitation",
		"Error": "",
		"Flash": "",
	}

	invite, err := ct.API.InviteByToken(c.Request.Context(), c.Param("token"))
	switch {
	case errors.Is(err, api.ErrNotFound):
		data["Invalid"] = "not recognized"
		c.HTML(http.StatusNotFound, "invite.html", data)
		return
	case err != nil:
		data["Invalid"] = "temporarily unavailable"
		c.HTML(http.StatusBadGateway, "invite.html", data)
		return
	}

	switch {
	case invite.Status == model.InviteRevoked:
		data["Invalid"] = "revoked"
	case invite.Status == model.InviteAccepted:
		data["Invalid"] = "already used"
	case invite.Status == model.InviteExpired || invite.Expired(time.Now()):
		data["Invalid"] = "expired"
	default:
		data["Invite"] = invite
	}

	c.HTML(http.StatusOK, "invite.html", data)
}

// AcceptInviteHandler completes the invited registration and starts a
// session with the returned token.
func (ct *Controller) AcceptInviteHandler(c *gin.Context) {
	token := c.Param("token")
	form := model.AcceptInvite{
		Token:     token,
		Username:  c.PostForm("username"),
		Password:  c.PostForm("password"),
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
	}
	confirm := c.PostForm("confirm_password")

	data := gin.H{
		"Title": "Invitation",
		"Flash": "",
	}

	var msg string
	switch {
	case form.Username == "" || form.FirstName == "" || form.LastName == "":
		msg = "Please fill in all required fields."
	case len(form.Password) < 8:
		msg = "Password must be at least 8 characters."
	case form.Password != confirm:
		msg = "Passwords do not match."
	}
	if msg != "" {
		invite, err := ct.API.InviteByToken(c.Request.Context(), token)
		if err == nil {
			data["Invite"] = invite
		} else {
			data["Invalid"] = "not recognized"
		}
		data["Error"] = msg
		c.HTML(http.StatusBadRequest, "invite.html", data)
		return
	}

	auth, err := ct.API.AcceptInvite(c.Request.Context(), form)
	if err != nil {
		invite, ierr := ct.API.InviteByToken(c.Request.Context(), token)
		if ierr == nil {
			data["Invite"] = invite
		} else {
			data["Invalid"] = "not recognized"
		}
		if errors.Is(err, api.ErrNotFound) {
			data["Invalid"] = "not recognized"
			data["Error"] = ""
		} else {
			data["Error"] = msgGeneric
		}
		c.HTML(http.StatusBadRequest, "invite.html", data)
		return
	}

	sid := ct.Sessions.Renew(c)
	ct.Sessions.Login(c.Request.Context(), sid, auth)
	c.Redirect(http.StatusFound, "/")
}
