package controllers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"projecthub/api/errs"
	"projecthub/api/types"
	"projecthub/api/validate"
	"projecthub/services"
)

type ProjectController struct {
	projects ProjectService
	tasks    TaskService
}

func NewProjectController(projects ProjectService, tasks TaskService) *ProjectController {
	return &ProjectController{projects: projects, tasks: tasks}
}

func (ctl *ProjectController) Register(rg *gin.RouterGroup) {
	byID := validate.Path[types.IDParam]()
	create := validate.JSON[types.ProjectCreateRequest]()
	update := validate.JSON[types.ProjectUpdateRequest]()

	rg.GET("/list", validate.Query[types.ProjectListQuery](), ctl.List)
	rg.GET("/:id", byID, ctl.Get)
	rg.POST("/create", create, ctl.Create)
	rg.POST("", create, ctl.Create)
	rg.PUT("/:id", byID, update, ctl.Update)
	rg.PATCH("/:id", byID, update, ctl.Update)
	rg.PUT("/update/:id", byID, update, ctl.Update)
	rg.DELETE("/:id", byID, ctl.Delete)
	rg.DELETE("/delete/:id", byID, ctl.Delete)

	rg.GET("/:id/stats", byID, ctl.Stats)
	rg.GET("/:id/tasks", byID, ctl.Tasks)
	rg.POST("/:id/members", byID, validate.JSON[types.MemberAddRequest](), ctl.AddMember)
	rg.GET("/:id/members", byID, ctl.Members)
	rg.DELETE("/:id/members/:contactId", validate.Path[types.MemberParam](), ctl.RemoveMember)
}

func (ctl *ProjectController) List(c *gin.Context) {
	query := validate.QueryFrom[types.ProjectListQuery](c)
	projects, err := ctl.projects.List(c.Request.Context(), services.ProjectFilter{Status: query.Status})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.Success(projects, "Projects retrieved successfully"))
}

func (ctl *ProjectController) Get(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	project, err := ctl.projects.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if project == nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(project, "Project retrieved successfully"))
}

func (ctl *ProjectController) Create(c *gin.Context) {
	req := validate.BodyFrom[types.ProjectCreateRequest](c)
	project, err := ctl.projects.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, types.Success(project, "Project created successfully"))
}

func (ctl *ProjectController) Update(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	req := validate.BodyFrom[types.ProjectUpdateRequest](c)
	project, err := ctl.projects.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	if project == nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(project, "Project updated successfully"))
}

func (ctl *ProjectController) Delete(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	deleted, err := ctl.projects.Remove(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if !deleted {
		c.Error(errs.ErrProjectNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(nil, "Project deleted successfully"))
}

func (ctl *ProjectController) Stats(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	stats, err := ctl.projects.Stats(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if stats == nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(stats, "Project statistics retrieved successfully"))
}

func (ctl *ProjectController) Tasks(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	tasks, err := ctl.tasks.FindByProject(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.Success(tasks, "Project tasks retrieved successfully"))
}

func (ctl *ProjectController) AddMember(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	req := validate.BodyFrom[types.MemberAddRequest](c)
	member, err := ctl.projects.AddMember(c.Request.Context(), id, req)
	switch {
	case errors.Is(err, services.ErrDuplicate):
		c.Error(errs.ErrMemberConflict)
		return
	case errors.Is(err, services.ErrContactMissing):
		c.Error(errs.ErrContactNotFound)
		return
	case err != nil:
		c.Error(err)
		return
	case member == nil:
		c.Error(errs.ErrProjectNotFound)
		return
	}
	c.JSON(http.StatusCreated, types.Success(member, "Member added to project successfully"))
}

func (ctl *ProjectController) Members(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	members, err := ctl.projects.GetMembers(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if members == nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(members, "Project members retrieved successfully"))
}

func (ctl *ProjectController) RemoveMember(c *gin.Context) {
	params := validate.PathFrom[types.MemberParam](c)
	removed, err := ctl.projects.RemoveMember(c.Request.Context(), params.ID, params.ContactID)
	if err != nil {
		c.Error(err)
		return
	}
	if !removed {
		c.Error(errs.ErrMemberNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(nil, "Member removed from project successfully"))
}
