package controller

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/middleware"
	"opportune-web/internal/model"
)

// jobForm is the typed posting form used for create and edit.
type jobForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	TechStack   string `form:"tech_stack"`
	Experience  int    `form:"experience"`
	Salary      int64  `form:"salary"`
	Location    string `form:"location"`
	Company     string `form:"company"`
}

func (f jobForm) toPost() model.EditableJobPost {
	var stack []string
	for _, t := range strings.Split(f.TechStack, ",") {
		if t = strings.TrimSpace(t); t != "" {
			stack = append(stack, t)
		}
	}
	return model.EditableJobPost{
		Title:       f.Title,
		Description: f.Description,
		TechStack:   stack,
		Experience:  f.Experience,
		Salary:      f.Salary,
		Location:    f.Location,
		CompanyName: f.Company,
	}
}

// HRDashboardPage lists the HR user's postings and, when one is selected
// with ?job=, its applicants.
func (ct *Controller) HRDashboardPage(c *gin.Context) {
	token := middleware.ExtractToken(c)
	data := pageData(c, "HR dashboard")
	data["Statuses"] = model.ApplicationStatuses

	jobs, err := ct.API.JobsByHR(c.Request.Context(), token)
	if err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		data["Error"] = msg
	}
	data["Jobs"] = jobs

	if raw := c.Query("job"); raw != "" {
		if jobID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			for _, j := range jobs {
				if j.ID == jobID {
					data["SelectedJob"] = j
					break
				}
			}
			if data["SelectedJob"] != nil {
				apps, err := ct.API.ApplicationsByJob(c.Request.Context(), token, jobID)
				if err != nil {
					msg, done := ct.apiError(c, err)
					if done {
						return
					}
					data["Error"] = msg
				}
				data["Applications"] = apps
			}
		}
	}

	c.HTML(http.StatusOK, "hr_dashboard.html", data)
}

// CreateJobHandler creates a posting from the dashboard form.
func (ct *Controller) CreateJobHandler(c *gin.Context) {
	var form jobForm
	_ = c.ShouldBind(&form)

	if form.Title == "" || form.Description == "" {
		c.Redirect(http.StatusFound, "/hr-dashboard?error="+
			url.QueryEscape("Title and description are required."))
		return
	}

	if _, err := ct.API.CreateJob(c.Request.Context(), middleware.ExtractToken(c), form.toPost()); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/hr-dashboard?error="+url.QueryEscape(msg))
		return
	}
	c.Redirect(http.StatusFound, "/hr-dashboard?flash="+url.QueryEscape("Job posted."))
}

// UpdateJobHandler saves edits to an existing posting.
func (ct *Controller) UpdateJobHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/hr-dashboard")
		return
	}

	var form jobForm
	_ = c.ShouldBind(&form)

	if _, err := ct.API.UpdateJob(c.Request.Context(), middleware.ExtractToken(c), id, form.toPost()); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/hr-dashboard?error="+url.QueryEscape(msg))
		return
	}
	c.Redirect(http.StatusFound, "/hr-dashboard?flash="+url.QueryEscape("Job updated."))
}

// DeleteJobHandler removes a posting after the confirm dialog.
func (ct *Controller) DeleteJobHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/hr-dashboard")
		return
	}

	if err := ct.API.DeleteJob(c.Request.Context(), middleware.ExtractToken(c), id); err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		c.Redirect(http.StatusFound, "/hr-dashboard?error="+url.QueryEscape(msg))
		return
	}
	c.Redirect(http.StatusFound, "/hr-dashboard?flash="+url.QueryEscape("Job deleted."))
}

// CandidateSearchPage runs the HR skill/experience search over parsed
// resumes.
func (ct *Controller) CandidateSearchPage(c *gin.Context) {
	data := pageData(c, "Candidate search")

	skillsRaw := strings.TrimSpace(c.Query("skills"))
	minExpRaw := c.Query("min_exp")
	data["SkillsRaw"] = skillsRaw
	data["MinExp"] = minExpRaw

	// The search is only as fresh as the analysis service; surface its
	// availability so HR knows when results may be stale.
	if status, err := ct.API.ResumeAIStatus(c.Request.Context(), middleware.ExtractToken(c)); err == nil {
		data["AIStatus"] = status
	}

	if skillsRaw == "" && minExpRaw == "" {
		c.HTML(http.StatusOK, "candidate_search.html", data)
		return
	}
	data["Searched"] = true

	query := model.CandidateQuery{}
	for _, s := range strings.Split(skillsRaw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			query.Skills = append(query.Skills, s)
		}
	}
	if v, err := strconv.ParseFloat(minExpRaw, 64); err == nil && v > 0 {
		query.MinExperience = v
	}

	hits, err := ct.API.SearchCandidates(c.Request.Context(), middleware.ExtractToken(c), query)
	if err != nil {
		msg, done := ct.apiError(c, err)
		if done {
			return
		}
		data["Error"] = msg
	}
	data["Hits"] = hits

	c.HTML(http.StatusOK, "candidate_search.html", data)
}
