package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/middleware"
	"opportune-web/internal/utilities"
)

// FilesPage lists the current user's uploads. Scan status and the verified
// flag render read-only; there is no polling, the page shows whatever was
// present at the last fetch.
func (ct *Controller) FilesPage(c *gin.Context) {
	data := pageData(c, "My files")
	data["AllowedTypes"] = fmt.Sprintf("%v", utilities.AllowedResumeExtensions)
	data["MaxSizeMB"] = utilities.MaxResumeSize >> 20

	files, err := ct.API.MyFiles(c.Request.Context(), middleware.ExtractToken(c))
	if err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		data["Error"] = msg
	}
	data["Files"] = files

	c.HTML(http.StatusOK, "files.html", data)
}

// UploadHandler validates the file locally and only then forwards it to
// the backend. Bad extension and oversize each get their own reason and
// never reach the network.
func (ct *Controller) UploadHandler(c *gin.Context) {
	rawFile, err := c.FormFile("resume")
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.Redirect(http.StatusFound, "/files?error="+
			url.QueryEscape("File is too large for the server to accept."))
		return
	}
	if err != nil {
		c.Redirect(http.StatusFound, "/files?error="+
			url.QueryEscape("Please choose a file to upload."))
		return
	}

	if err := utilities.ValidateResumeFile(rawFile.Filename, rawFile.Size); err != nil {
		c.Redirect(http.StatusFound, "/files?error="+url.QueryEscape(err.Error()))
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		c.Redirect(http.StatusFound, "/files?error="+url.QueryEscape(msgGeneric))
		return
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := ct.API.UploadResume(c.Request.Context(), middleware.ExtractToken(c), rawFile.Filename, f); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/files?error="+url.QueryEscape(msg))
		return
	}
	c.Redirect(http.StatusFound, "/files?flash="+url.QueryEscape("File uploaded."))
}

// DeleteFileHandler removes an upload after the confirm dialog.
func (ct *Controller) DeleteFileHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/files")
		return
	}

	if err := ct.API.DeleteFile(c.Request.Context(), middleware.ExtractToken(c), id); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/files?error="+url.QueryEscape(msg))
		return
	}
	c.Redirect(http.StatusFound, "/files?flash="+url.QueryEscape("File deleted."))
}
