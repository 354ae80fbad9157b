package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"maya-connect/internal/pkg/password"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var nonBlank = regexp.MustCompile(`\S`)

// Validate carries the custom tags below and reports fields by their json names.
var Validate = New()

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	Register(v)
	return v
}

// Register adds the custom tags to v. gin's binding engine gets the same tags at router setup.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonName)

	// "notblank": not empty and not only whitespace
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonBlank.MatchString(fl.Field().String())
	})

	// "isodate": a real calendar date in YYYY-MM-DD
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})

	// "strongpassword": at least 8 characters, one digit and one uppercase letter
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return password.Check(fl.Field().String()).OK()
	})
}

var bindingOnce sync.Once

// RegisterBinding installs the custom tags on gin's request binding engine.
func RegisterBinding() {
	bindingOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			Register(v)
		}
	})
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
