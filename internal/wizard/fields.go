package wizard

import (
	"errors"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Field keys the form inputs and their inline errors.
type Field string

const (
	FieldEmail      Field = "email"
	FieldPassword   Field = "password"
	FieldPhone      Field = "phone"
	FieldCode       Field = "code"
	FieldTID        Field = "tid"
	FieldScreenshot Field = "screenshot"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidEmail applies the loose something@something.something check.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Each step owns exactly the fields it checks. The field tag names the
// error key.

type loginFields struct {
	Email    string `field:"email" validate:"required,simpleemail"`
	Password string `field:"password" validate:"required,min=6"`
}

type signupFields struct {
	Email    string `field:"email" validate:"required,simpleemail"`
	Password string `field:"password" validate:"required,min=6"`
	Phone    string `field:"phone" validate:"required"`
}

type verifyFields struct {
	Code string `field:"code" validate:"required"`
}

type paymentFields struct {
	TID   string      `field:"tid" validate:"required"`
	Proof *Attachment `field:"screenshot" validate:"required"`
}

var messages = map[Field]map[string]string{
	FieldEmail: {
		"required":    "Email is required",
		"simpleemail": "Email is invalid",
	},
	FieldPassword: {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
	FieldPhone:      {"required": "Phone number is required"},
	FieldCode:       {"required": "Verification code is required"},
	FieldTID:        {"required": "Transaction ID is required"},
	FieldScreenshot: {"required": "Payment screenshot is required"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})
	if err := v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// check validates one step's field set and returns the inline errors.
func check(fields any) map[Field]string {
	out := map[Field]string{}
	err := validate.Struct(fields)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		panic(err)
	}
	for _, fe := range verrs {
		f := Field(fe.Field())
		msg, ok := messages[f][fe.Tag()]
		if !ok {
			msg = string(f) + " is invalid"
		}
		out[f] = msg
	}
	return out
}
