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

type TaskController struct {
	tasks TaskService
}

func NewTaskController(tasks TaskService) *TaskController {
	return &TaskController{tasks: tasks}
}

func (ctl *TaskController) Register(rg *gin.RouterGroup) {
	byID := validate.Path[types.IDParam]()
	create := validate.JSON[types.TaskCreateRequest]()
	update := validate.JSON[types.TaskUpdateRequest]()

	rg.GET("/list", validate.Query[types.TaskListQuery](), ctl.List)
	rg.GET("/:id", byID, ctl.Get)
	rg.POST("/create", create, ctl.Create)
	rg.POST("", create, ctl.Create)
	rg.PUT("/:id", byID, update, ctl.Update)
	rg.PATCH("/:id", byID, update, ctl.Update)
	rg.PUT("/update/:id", byID, update, ctl.Update)
	rg.PATCH("/:id/status", byID, validate.JSON[types.TaskStatusRequest](), ctl.UpdateStatus)
	rg.DELETE("/:id", byID, ctl.Delete)
	rg.DELETE("/delete/:id", byID, ctl.Delete)
}

func (ctl *TaskController) List(c *gin.Context) {
	query := validate.QueryFrom[types.TaskListQuery](c)
	tasks, err := ctl.tasks.List(c.Request.Context(), services.TaskFilter{
		Status:     query.Status,
		Priority:   query.Priority,
		AssigneeID: query.AssigneeID,
		ProjectID:  query.ProjectID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.Success(tasks, "Tasks retrieved successfully"))
}

func (ctl *TaskController) Get(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	task, err := ctl.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if task == nil {
		c.Error(errs.ErrTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(task, "Task retrieved successfully"))
}

func (ctl *TaskController) Create(c *gin.Context) {
	req := validate.BodyFrom[types.TaskCreateRequest](c)
	task, err := ctl.tasks.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(referenceError(err))
		return
	}
	c.JSON(http.StatusCreated, types.Success(task, "Task created successfully"))
}

func (ctl *TaskController) Update(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	req := validate.BodyFrom[types.TaskUpdateRequest](c)
	task, err := ctl.tasks.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(referenceError(err))
		return
	}
	if task == nil {
		c.Error(errs.ErrTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(task, "Task updated successfully"))
}

func (ctl *TaskController) UpdateStatus(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	req := validate.BodyFrom[types.TaskStatusRequest](c)
	task, err := ctl.tasks.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	if task == nil {
		c.Error(errs.ErrTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(task, "Task status updated successfully"))
}

func (ctl *TaskController) Delete(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	deleted, err := ctl.tasks.Remove(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if !deleted {
		c.Error(errs.ErrTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(nil, "Task deleted successfully"))
}

// referenceError turns dangling assignee/project ids into 400s.
func referenceError(err error) error {
	switch {
	case errors.Is(err, services.ErrContactMissing):
		return errs.ErrUnknownAssignee
	case errors.Is(err, services.ErrProjectMissing):
		return errs.ErrUnknownProject
	}
	return err
}
