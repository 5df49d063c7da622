package controller

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/api"
	"opportune-web/internal/middleware"
	"opportune-web/internal/model"
)

// PageSize is the fixed job-search page size.
const PageSize = 10

func parseJobFilters(c *gin.Context) model.JobFilters {
	f := model.JobFilters{
		Query:    strings.TrimSpace(c.Query("q")),
		Location: strings.TrimSpace(c.Query("location")),
		SortBy:   c.Query("sort_by"),
		SortDir:  c.Query("sort_dir"),
		Size:     PageSize,
	}
	if v, err := strconv.Atoi(c.Query("min_exp")); err == nil && v > 0 {
		f.MinExperience = v
	}
	if v, err := strconv.ParseInt(c.Query("min_salary"), 10, 64); err == nil && v > 0 {
		f.MinSalary = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		f.Page = v
	}
	return f
}

// pageQuery rebuilds the filter query string without the page parameter,
// for the pagination links.
func pageQuery(f model.JobFilters) string {
	q := url.Values{}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.MinExperience > 0 {
		q.Set("min_exp", strconv.Itoa(f.MinExperience))
	}
	if f.MinSalary > 0 {
		q.Set("min_salary", strconv.FormatInt(f.MinSalary, 10))
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
		q.Set("sort_dir", f.SortDir)
	}
	return q.Encode()
}

// JobsPage renders the job listing. Without filters or paging it shows the
// unfiltered, unpaginated listing ("clear filters" links back here);
// otherwise every change is a fresh search call, nothing is cached.
func (ct *Controller) JobsPage(c *gin.Context) {
	token := middleware.ExtractToken(c)
	filters := parseJobFilters(c)

	data := pageData(c, "Jobs")
	data["Filters"] = filters
	data["PageQuery"] = pageQuery(filters)
	data["TotalPages"] = 0

	if filters.IsZero() && filters.Page == 0 {
		jobs, err := ct.API.ListJobs(c.Request.Context(), token)
		if err != nil {
			msg, done := ct.apiError(c, err)
			if done {
				return
			}
			data["Error"] = msg
		}
		data["Jobs"] = jobs
	} else {
		page, err := ct.API.SearchJobs(c.Request.Context(), token, filters)
		if err != nil {
			msg, done := ct.apiError(c, err)
			if done {
				return
			}
			data["Error"] = msg
		}
		data["Jobs"] = page.Content
		data["Page"] = page.Page
		data["TotalPages"] = page.TotalPages
		data["TotalElements"] = page.TotalElements
	}

	ct.attachSavedJobs(c, data)
	c.HTML(http.StatusOK, "jobs.html", data)
}

// attachSavedJobs loads the owner's bookmark list for the sidebar. Store
// trouble only logs; bookmarks are never worth failing the page.
func (ct *Controller) attachSavedJobs(c *gin.Context, data gin.H) {
	user := middleware.ExtractUser(c)
	ids, err := ct.Saved.List(savedOwner(user))
	if err != nil || len(ids) == 0 {
		return
	}

	token := middleware.ExtractToken(c)
	saved := make([]model.JobPost, 0, len(ids))
	for _, id := range ids {
		job, err := ct.API.GetJob(c.Request.Context(), token, id)
		if err != nil {
			// A bookmarked job the backend no longer has is silently
			// skipped; the bookmark itself stays until removed.
			continue
		}
		saved = append(saved, job)
	}
	data["SavedJobs"] = saved
}

// JobDetailPage renders one job. The related-jobs fetch runs only after
// the job data is loaded, keyed on its tech stack rather than the route
// parameter.
func (ct *Controller) JobDetailPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title": "Not found",
			"User":  middleware.ExtractUser(c),
			"Error": msgNotFound,
		})
		return
	}

	token := middleware.ExtractToken(c)
	user := middleware.ExtractUser(c)
	data := pageData(c, "Job")

	job, err := ct.API.GetJob(c.Request.Context(), token, id)
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
	data["Title"] = job.Title
	data["Job"] = job

	if len(job.TechStack) > 0 {
		if related, err := ct.API.RelatedJobs(c.Request.Context(), token, job.TechStack); err == nil {
			filtered := related[:0]
			for _, r := range related {
				if r.ID != job.ID {
					filtered = append(filtered, r)
				}
			}
			data["Related"] = filtered
		}
	}

	if user.Role == model.RoleUser {
		if saved, err := ct.Saved.IsSaved(savedOwner(user), job.ID); err == nil {
			data["Saved"] = saved
		}
		if resumes, err := ct.API.MyFiles(c.Request.Context(), token); err == nil {
			data["Resumes"] = resumes
		}
	}

	c.HTML(http.StatusOK, "job_detail.html", data)
}

// ApplyHandler submits an application for the current user.
func (ct *Controller) ApplyHandler(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/jobs")
		return
	}

	req := model.ApplyRequest{
		JobID:       jobID,
		CoverLetter: strings.TrimSpace(c.PostForm("cover_letter")),
	}
	if raw := c.PostForm("resume_id"); raw != "" {
		if rid, err := strconv.ParseInt(raw, 10, 64); err == nil {
			req.ResumeFileID = &rid
		}
	}

	if _, err := ct.API.Apply(c.Request.Context(), middleware.ExtractToken(c), req); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/jobs/"+c.Param("id")+"?error="+url.QueryEscape(msg))
		return
	}
	c.Redirect(http.StatusFound, "/applications")
}

// SaveToggleHandler flips the bookmark for a job and returns to the
// referring page.
func (ct *Controller) SaveToggleHandler(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/jobs")
		return
	}

	user := middleware.ExtractUser(c)
	if _, err := ct.Saved.Toggle(savedOwner(user), jobID); err != nil {
		c.Redirect(http.StatusFound, "/jobs")
		return
	}

	if ref := c.GetHeader("Referer"); ref != "" {
		c.Redirect(http.StatusFound, ref)
		return
	}
	c.Redirect(http.StatusFound, "/jobs")
}

// SaveToggleJSON flips the bookmark and reports the new state, for page
// scripts that toggle without a reload.
func (ct *Controller) SaveToggleJSON(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	user := middleware.ExtractUser(c)
	saved, err := ct.Saved.Toggle(savedOwner(user), jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGeneric})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// SuggestionsJSON serves the search-box autocomplete.
func (ct *Controller) SuggestionsJSON(c *gin.Context) {
	prefix := strings.TrimSpace(c.Query("prefix"))
	if prefix == "" {
		c.JSON(http.StatusOK, []string{})
		return
	}

	suggestions, err := ct.API.JobSuggestions(c.Request.Context(), middleware.ExtractToken(c), prefix)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			ct.Sessions.HandleUnauthorized(c, middleware.ExtractSessionID(c))
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": msgGeneric})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}
