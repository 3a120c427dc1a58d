package api

import (
	"encoding/json" // JSON checkbox values
	"errors"        // Error inspection
	"strconv"       // Number formatting
	"strings"       // String manipulation

	"github.com/gin-gonic/gin/binding"       // Gin request binding
	"github.com/go-playground/validator/v10" // Validator engine behind gin binding
)

// AdminLoginForm is the admin family login form
type AdminLoginForm struct {
	Email    string   `form:"email" json:"email" binding:"required,email"` // Email must be valid
	Password string   `form:"password" json:"password" binding:"required"` // Password must be provided
	Role     string   `form:"role" json:"role" binding:"required"`         // Hidden role field
	Remember Checkbox `form:"remember" json:"remember" binding:"checkbox"` // Remember me checkbox
}

// VendorLoginForm is the vendor login form, posted as form data or JSON
type VendorLoginForm struct {
	Email    string   `form:"email" json:"email" binding:"required,email"` // Vendor identity
	Password string   `form:"password" json:"password" binding:"required"` // Password must be provided
	Remember Checkbox `form:"remember" json:"remember" binding:"checkbox"` // Remember me checkbox
}

// CustomerLoginForm is the storefront login form
type CustomerLoginForm struct {
	Email    string   `form:"email" json:"email" binding:"required,email"` // Customer email
	Password string   `form:"password" json:"password" binding:"required"` // Password must be provided
	Remember Checkbox `form:"remember" json:"remember" binding:"checkbox"` // Remember me checkbox
}

// Checkbox is an HTML checkbox value. JSON clients may also send a boolean or a number.
type Checkbox string

// UnmarshalJSON accepts strings, booleans and numbers
func (cb *Checkbox) UnmarshalJSON(data []byte) error {
	var raw any // Decode whatever the client sent
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*cb = "" // null is unchecked
	case bool:
		*cb = Checkbox(strconv.FormatBool(v))
	case float64:
		*cb = Checkbox(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		*cb = Checkbox(v)
	default:
		return errors.New("remember must be a boolean or a string")
	}
	return nil
}

// Checked reports whether the checkbox was ticked
func (cb Checkbox) Checked() bool {
	checked, _ := checkboxValue(string(cb))
	return checked
}

// RegisterValidators adds the custom validations used by the login forms to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate) // Gin uses validator v10 by default
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation("checkbox", func(fl validator.FieldLevel) bool {
		_, valid := checkboxValue(fl.Field().String()) // Accept only checkbox-like values
		return valid
	})
}

// checkboxValue parses an HTML checkbox value
func checkboxValue(raw string) (checked bool, valid bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "off", "false":
		return false, true
	case "1", "on", "true", "yes":
		return true, true
	}
	return false, false
}

// validationMessages turns binding errors into readable messages
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request"} // Malformed body
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()) // Field name as shown in the form
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, "The "+field+" field is required.")
		case "email":
			msgs = append(msgs, "The "+field+" must be a valid email address.")
		default:
			msgs = append(msgs, "The "+field+" field is invalid.")
		}
	}
	return msgs
}
