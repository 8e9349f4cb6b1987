package contact

import (
	"errors"
	"html"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/microcosm-cc/bluemonday"
)

// Status is the state of the contact form as shown to the visitor.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Form is the contact form. All four fields are required.
type Form struct {
	Name    string `form:"name" json:"name" binding:"required,max=200"`
	Email   string `form:"email" json:"email" binding:"required,email,max=320"`
	Subject string `form:"subject" json:"subject" binding:"required,max=300"`
	Message string `form:"message" json:"message" binding:"required,max=5000"`
}

var strict = bluemonday.StrictPolicy()

// ErrMarkupOnlyName rejects a name that is empty once tags are removed.
var ErrMarkupOnlyName = errors.New("name has no text outside markup")

// Clean trims every field. The text is otherwise forwarded untouched: it is
// plain text to the relay and escaped by the templates when redisplayed.
func (f Form) Clean() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks the binding tags, the same rules gin applies to a bound
// request, and that the name is more than markup.
func (f Form) Validate() error {
	if err := binding.Validator.ValidateStruct(f); err != nil {
		return err
	}
	if strings.TrimSpace(html.UnescapeString(strict.Sanitize(f.Name))) == "" {
		return ErrMarkupOnlyName
	}
	return nil
}

// TemplateParams maps the form onto the relay template variables.
func (f Form) TemplateParams() map[string]string {
	return map[string]string{
		"from_name":  f.Name,
		"from_email": f.Email,
		"subject":    f.Subject,
		"message":    f.Message,
	}
}
