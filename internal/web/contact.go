package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chandan25sharma/portfolio/internal/contact"
	"github.com/chandan25sharma/portfolio/internal/content"
	"github.com/gin-gonic/gin"
)

const (
	msgSent        = "Thank you for your message! I'll get back to you soon."
	msgInvalid     = "Please fill in every field with a valid email address."
	msgRateLimited = "Too many messages from you. Please try again later."
	msgFailed      = "Failed to send message. Please try again later."
)

func (p *Pages) contactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", p.contactData(c, contact.StatusIdle, contact.Form{}, ""))
}

func (p *Pages) submitContact(c *gin.Context) {
	var form contact.Form
	// binding errors are ignored; Submit validates again after cleaning
	_ = c.ShouldBind(&form)

	ctx := c.Request.Context()
	key := p.hashIP(c.ClientIP())
	cleaned, err := p.contact.Submit(ctx, form, key)
	if left, ok := p.contact.Remaining(ctx, key); ok {
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(left, 10))
	}
	if err == nil {
		p.renderContact(c, http.StatusOK, contact.StatusSuccess, contact.Form{}, msgSent)
		return
	}

	code, msg := http.StatusOK, msgFailed
	switch {
	case errors.Is(err, contact.ErrInvalidForm):
		code, msg = http.StatusBadRequest, msgInvalid
	case errors.Is(err, contact.ErrRateLimited):
		code, msg = http.StatusTooManyRequests, msgRateLimited
	}
	p.renderContact(c, code, contact.StatusError, cleaned, msg)
}

// renderContact answers htmx posts with the form fragment and plain posts
// with the whole page.
func (p *Pages) renderContact(c *gin.Context, code int, status contact.Status, form contact.Form, msg string) {
	data := p.contactData(c, status, form, msg)
	switch {
	case !isHTMX(c):
		c.HTML(code, "contact.html", data)
	case status == contact.StatusSuccess:
		c.HTML(code, "contact-success.html", data)
	default:
		c.HTML(code, "contact-error.html", data)
	}
}

func (p *Pages) contactData(c *gin.Context, status contact.Status, form contact.Form, msg string) gin.H {
	h := gin.H{
		"cta":    content.ContactCTA,
		"status": string(status),
		"form":   form,
	}
	if status == contact.StatusError {
		h["error"] = msg
	} else {
		h["message"] = msg
	}
	return p.page(c, "Contact", h)
}
