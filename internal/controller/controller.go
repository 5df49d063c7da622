// Package controller contains the page handlers. Each handler owns its
// local UI state (form values, error banners), calls the API client, and
// renders a template; backend rules are never re-implemented here.
package controller

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/api"
	"opportune-web/internal/middleware"
	"opportune-web/internal/model"
	"opportune-web/internal/savedjobs"
	"opportune-web/internal/session"
)

// Messages for the non-validation error classes. 401 never produces a
// message; it clears the session and redirects instead.
const (
	msgForbidden = "You do not have permission to perform this action."
	msgNotFound  = "The requested item could not be found."
	msgGeneric   = "Something went wrong, please try again."
)

// Controller bundles the dependencies every page handler needs.
type Controller struct {
	API      *api.Client
	Sessions *session.Manager
	Saved    *savedjobs.Store
}

// New creates a Controller with the provided API client, session manager
// and saved-jobs store.
func New(client *api.Client, sm *session.Manager, saved *savedjobs.Store) *Controller {
	return &Controller{
		API:      client,
		Sessions: sm,
		Saved:    saved,
	}
}

// apiError classifies an API failure per the page error taxonomy. A 401
// clears the session, redirects to the login page and reports done=true;
// every other failure maps to a page-level message.
func (ct *Controller) apiError(c *gin.Context, err error) (msg string, done bool) {
	if errors.Is(err, api.ErrUnauthorized) {
		ct.Sessions.HandleUnauthorized(c, middleware.ExtractSessionID(c))
		return "", true
	}

	switch {
	case errors.Is(err, api.ErrForbidden):
		return msgForbidden, false
	case errors.Is(err, api.ErrNotFound):
		return msgNotFound, false
	default:
		log.Printf("api call failed: %v", err)
		return msgGeneric, false
	}
}

// pageData seeds the template payload shared by every page: title, the
// current user for the header, and the banner slots. Redirecting handlers
// pass their outcome message through the error/flash query parameters.
func pageData(c *gin.Context, title string) gin.H {
	return gin.H{
		"Title": title,
		"User":  middleware.ExtractUser(c),
		"Error": c.Query("error"),
		"Flash": c.Query("flash"),
	}
}

// savedOwner is the bookmark namespace for the user, guest before login.
func savedOwner(user model.User) string {
	return savedjobs.OwnerKey(user.ID)
}
