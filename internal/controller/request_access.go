package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/model"
)

type accessRequestForm struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	CompanyName string `form:"company"`
	Role        string `form:"role"`
	Reason      string `form:"reason"`
}

// RequestAccessPage renders the public request-access form.
func (ct *Controller) RequestAccessPage(c *gin.Context) {
	data := pageData(c, "Request access")
	data["Form"] = accessRequestForm{}
	c.HTML(http.StatusOK, "request_access.html", data)
}

// RequestAccessHandler files the request. Company name is optional at
// this layer for every role.
func (ct *Controller) RequestAccessHandler(c *gin.Context) {
	var form accessRequestForm
	_ = c.ShouldBind(&form)

	data := pageData(c, "Request access")
	data["Form"] = form

	var msg string
	switch {
	case form.Name == "" || form.Email == "":
		msg = "Please fill in your name and email."
	case !validEmail(form.Email):
		msg = "Please enter a valid email address."
	case form.Role != model.RoleHR && form.Role != model.RoleAdmin:
		msg = "Please choose the role you are requesting."
	}
	if msg != "" {
		data["Error"] = msg
		c.HTML(http.StatusBadRequest, "request_access.html", data)
		return
	}

	_, err := ct.API.CreateAccessRequest(c.Request.Context(), model.CreateAccessRequest{
		Name:        form.Name,
		Email:       form.Email,
		CompanyName: form.CompanyName,
		Role:        form.Role,
		Reason:      form.Reason,
	})
	if err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		data["Error"] = msg
		c.HTML(http.StatusBadGateway, "request_access.html", data)
		return
	}

	data["Form"] = accessRequestForm{}
	data["Flash"] = "Request submitted. An administrator will review it shortly."
	c.HTML(http.StatusOK, "request_access.html", data)
}
