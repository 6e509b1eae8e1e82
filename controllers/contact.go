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

type ContactController struct {
	contacts ContactService
	tasks    TaskService
}

func NewContactController(contacts ContactService, tasks TaskService) *ContactController {
	return &ContactController{contacts: contacts, tasks: tasks}
}

func (ctl *ContactController) Register(rg *gin.RouterGroup) {
	byID := validate.Path[types.IDParam]()
	create := validate.JSON[types.ContactCreateRequest]()
	update := validate.JSON[types.ContactUpdateRequest]()

	rg.GET("/list", ctl.List)
	rg.GET("/:id", byID, ctl.Get)
	rg.GET("/:id/tasks", byID, ctl.Tasks)
	rg.POST("/create", create, ctl.Create)
	rg.POST("", create, ctl.Create)
	rg.PUT("/:id", byID, update, ctl.Update)
	rg.PATCH("/:id", byID, update, ctl.Update)
	rg.PUT("/update/:id", byID, update, ctl.Update)
	rg.DELETE("/:id", byID, ctl.Delete)
	rg.DELETE("/delete/:id", byID, ctl.Delete)
}

func (ctl *ContactController) List(c *gin.Context) {
	contacts, err := ctl.contacts.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.Success(contacts, "Contacts retrieved successfully"))
}

func (ctl *ContactController) Get(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	contact, err := ctl.contacts.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if contact == nil {
		c.Error(errs.ErrContactNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(contact, "Contact retrieved successfully"))
}

func (ctl *ContactController) Tasks(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	contact, err := ctl.contacts.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if contact == nil {
		c.Error(errs.ErrContactNotFound)
		return
	}
	tasks, err := ctl.tasks.FindByAssignee(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.Success(tasks, "Contact tasks retrieved successfully"))
}

func (ctl *ContactController) Create(c *gin.Context) {
	req := validate.BodyFrom[types.ContactCreateRequest](c)
	contact, err := ctl.contacts.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(contactError(err))
		return
	}
	c.JSON(http.StatusCreated, types.Success(contact, "Contact created successfully"))
}

func (ctl *ContactController) Update(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	req := validate.BodyFrom[types.ContactUpdateRequest](c)
	contact, err := ctl.contacts.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(contactError(err))
		return
	}
	if contact == nil {
		c.Error(errs.ErrContactNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(contact, "Contact updated successfully"))
}

func (ctl *ContactController) Delete(c *gin.Context) {
	id := validate.PathFrom[types.IDParam](c).ID
	deleted, err := ctl.contacts.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if !deleted {
		c.Error(errs.ErrContactNotFound)
		return
	}
	c.JSON(http.StatusOK, types.Success(nil, "Contact deleted successfully"))
}

func contactError(err error) error {
	if errors.Is(err, services.ErrDuplicate) {
		return errs.ErrContactConflict
	}
	return err
}
