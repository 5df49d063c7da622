package controller

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/api"
	"opportune-web/internal/middleware"
	"opportune-web/internal/model"
)

// registerForm is the typed register form; gin binds by input name.
type registerForm struct {
	Username        string `form:"username"`
	Email           string `form:"email"`
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	Phone           string `form:"phone"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (f registerForm) validate() string {
	switch {
	case f.Username == "" || f.Email == "" || f.FirstName == "" || f.LastName == "":
		return "Please fill in all required fields."
	case !validEmail(f.Email):
		return "Please enter a valid email address."
	case len(f.Password) < 8:
		return "Password must be at least 8 characters."
	case f.Password != f.ConfirmPassword:
		return "Passwords do not match."
	}
	return ""
}

func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

// LoginPage renders the login form.
func (ct *Controller) LoginPage(c *gin.Context) {
	data := pageData(c, "Log in")
	data["Username"] = ""
	c.HTML(http.StatusOK, "login.html", data)
}

// LoginHandler exchanges credentials for a token, persists the session and
// reconciles the user via the profile fetch.
func (ct *Controller) LoginHandler(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	data := pageData(c, "Log in")
	data["Username"] = username

	if username == "" || password == "" {
		data["Error"] = "Please enter your username and password."
		c.HTML(http.StatusBadRequest, "login.html", data)
		return
	}

	auth, err := ct.API.Login(c.Request.Context(), username, password)
	if err != nil {
		// A 401 here is bad credentials, not an expired session; show it
		// inline instead of the global redirect. Anything else is backend
		// trouble, not the user's fault.
		if errors.Is(err, api.ErrUnauthorized) {
			data["Error"] = "Username or password is incorrect."
			c.HTML(http.StatusUnauthorized, "login.html", data)
			return
		}
		data["Error"] = msgGeneric
		c.HTML(http.StatusBadGateway, "login.html", data)
		return
	}

	sid := ct.Sessions.Renew(c)
	ct.Sessions.Login(c.Request.Context(), sid, auth)
	c.Redirect(http.StatusFound, "/")
}

// RegisterPage renders the registration form.
func (ct *Controller) RegisterPage(c *gin.Context) {
	data := pageData(c, "Register")
	data["Form"] = registerForm{}
	c.HTML(http.StatusOK, "register.html", data)
}

// RegisterHandler validates the form client-side, creates the account and
// logs the new user in with the returned token.
func (ct *Controller) RegisterHandler(c *gin.Context) {
	var form registerForm
	_ = c.ShouldBind(&form)

	data := pageData(c, "Register")
	data["Form"] = form

	if msg := form.validate(); msg != "" {
		data["Error"] = msg
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	auth, err := ct.API.Register(c.Request.Context(), model.RegisterRequest{
		Username:  form.Username,
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Phone:     form.Phone,
	})
	if err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		data["Error"] = msg
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	sid := ct.Sessions.Renew(c)
	ct.Sessions.Login(c.Request.Context(), sid, auth)
	c.Redirect(http.StatusFound, "/")
}

// LogoutHandler drops the session. No backend call is made.
func (ct *Controller) LogoutHandler(c *gin.Context) {
	ct.Sessions.Logout(middleware.ExtractSessionID(c))
	c.Redirect(http.StatusFound, "/login")
}
