// Package validate binds and checks request input in middleware so handlers
// only ever see values that already passed validation.
package validate

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"projecthub/api/errs"
	"projecthub/api/types"
	"reflect"
	"regexp"
	"strings"
	"sync"
)

const (
	bodyKey  = "validate.body"
	queryKey = "validate.query"
	pathKey  = "validate.path"
)

var (
	rolePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	setupOnce   sync.Once
)

// Setup registers the custom rules on gin's validator. It is safe to call
// more than once.
func Setup() {
	setupOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Warn().Msg("gin validator is not go-playground/validator, custom rules not registered")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "form", "uri"} {
				name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		v.RegisterAlias("task_status", "oneof=TODO IN_PROGRESS REVIEW DONE")
		v.RegisterAlias("task_priority", "oneof=LOW MEDIUM HIGH URGENT")
		v.RegisterAlias("project_status", "oneof=active planning completed on_hold")
		if err := v.RegisterValidation("member_role", func(fl validator.FieldLevel) bool {
			return rolePattern.MatchString(fl.Field().String())
		}); err != nil {
			log.Error().Err(err).Msg("failed to register member_role rule")
		}

		// Null and absent validate as a nil *uint so omitnil skips them while
		// an explicit 0 still hits gt=0.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if n, ok := field.Interface().(types.Nullable[uint]); ok {
				return n.Ptr()
			}
			return (*uint)(nil)
		}, types.Nullable[uint]{})
	})
}

func reject(c *gin.Context, err error) {
	c.Error(errs.NewValidationError(err))
	c.Abort()
}

// JSON binds the request body into a T. Handlers read it with BodyFrom.
func JSON[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body T
		if err := c.ShouldBindJSON(&body); err != nil {
			reject(c, err)
			return
		}
		c.Set(bodyKey, &body)
		c.Next()
	}
}

// Query binds the query string into a T. Handlers read it with QueryFrom.
func Query[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var query T
		if err := c.ShouldBindQuery(&query); err != nil {
			reject(c, err)
			return
		}
		c.Set(queryKey, &query)
		c.Next()
	}
}

// Path binds the path parameters into a T. Handlers read it with PathFrom.
func Path[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var params T
		if err := c.ShouldBindUri(&params); err != nil {
			reject(c, err)
			return
		}
		c.Set(pathKey, &params)
		c.Next()
	}
}

func BodyFrom[T any](c *gin.Context) *T {
	return c.MustGet(bodyKey).(*T)
}

func QueryFrom[T any](c *gin.Context) *T {
	return c.MustGet(queryKey).(*T)
}

func PathFrom[T any](c *gin.Context) *T {
	return c.MustGet(pathKey).(*T)
}
