package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/chandan25sharma/portfolio/internal/store"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware redirects to the login page unless the admin cookie holds
// the current token.
func (a *Admin) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || !a.validToken(token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *Admin) RegisterRoutes(r gin.IRouter) {
	r.GET("/admin/login", a.loginPage)
	r.POST("/admin/login", a.login)
	r.GET("/admin/logout", a.logout)

	g := r.Group("/admin")
	g.Use(a.AuthMiddleware())

	g.GET("/dashboard", a.dashboard)
	g.GET("/api/stats", a.apiStats)
	g.GET("/visitors", a.visitorList)
	g.GET("/messages", a.messageList)
	g.DELETE("/messages/:id", a.deleteMessage)
	g.POST("/privacy/cleanup", a.privacyCleanup)
	g.GET("/export/stats", a.exportStats)
}

func (a *Admin) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{
		"title": "Admin Login",
	})
}

func (a *Admin) login(c *gin.Context) {
	if !a.validCredentials(c.PostForm("username"), c.PostForm("password")) {
		log.Printf("Failed admin login attempt from %s", a.HashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}

	c.SetCookie(cookieName, a.token, cookieMaxAge, "/admin", "", a.secure, true)
	log.Printf("Admin login successful from %s", a.HashIP(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *Admin) logout(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, "/admin", "", a.secure, true)
	log.Printf("Admin logout from %s", a.HashIP(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (a *Admin) dashboard(c *gin.Context) {
	stats, err := a.Stats(c.Request.Context())
	if err != nil {
		log.Printf("Error loading admin stats: %v", err)
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"title": "Admin",
			"error": "Failed to load statistics",
		})
		return
	}

	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"title": "Admin Dashboard",
		"stats": stats,
	})
}

func (a *Admin) apiStats(c *gin.Context) {
	stats, err := a.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *Admin) visitorList(c *gin.Context) {
	visitors, err := a.visitors.Recent(c.Request.Context(), 200)
	if err != nil {
		log.Printf("Error loading visitors: %v", err)
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"title": "Admin",
			"error": "Failed to load visitors",
		})
		return
	}

	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
		"title":    "Visitors",
		"visitors": visitors,
	})
}

func (a *Admin) messageList(c *gin.Context) {
	messages, err := a.messages.List(c.Request.Context(), 200)
	if err != nil {
		log.Printf("Error loading messages: %v", err)
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"title": "Admin",
			"error": "Failed to load messages",
		})
		return
	}

	c.HTML(http.StatusOK, "admin-messages.html", gin.H{
		"title":    "Messages",
		"messages": messages,
	})
}

func (a *Admin) deleteMessage(c *gin.Context) {
	id := c.Param("id")

	err := a.messages.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	case err != nil:
		log.Printf("Error deleting message %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}

	log.Printf("Message %s deleted by admin from %s", id, a.HashIP(c.ClientIP()))
	// htmx swaps the table row with the empty body
	if c.GetHeader("HX-Request") == "true" {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

func (a *Admin) privacyCleanup(c *gin.Context) {
	// a client disconnect must not abort the cleanup
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), time.Minute)
	defer cancel()

	n, err := a.cleaner.Run(ctx)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup completed", "removed": n})
}

func (a *Admin) exportStats(c *gin.Context) {
	stats, err := a.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	log.Printf("Admin stats exported by %s", a.HashIP(c.ClientIP()))
	c.JSON(http.StatusOK, stats)
}
