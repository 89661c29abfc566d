package routes

import (
	adminapi "gallery-app/internal/api/admin"
	galleryapi "gallery-app/internal/api/gallery"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store catalog.Store) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	gallery := galleryapi.NewHandler(store)
	admin := adminapi.NewHandler(store)

	// Public gallery, with query sanitization on the way in
	public := r.Group("/")
	public.Use(middleware.SanitizeQueryMiddleware())
	public.GET("/gallery", gallery.List)
	public.GET("/gallery/product", gallery.Product)

	// Admin backend
	adm := r.Group("/admin")
	adm.GET("", admin.Dashboard)
	adm.GET("/create", admin.CreateForm)
	adm.POST("/create", admin.Create)
	adm.GET("/edit", admin.EditForm)
	adm.POST("/edit", admin.Edit)
	adm.GET("/delete", admin.Delete)
	adm.DELETE("/delete", admin.Delete)
	adm.POST("/csvupload", admin.CSVUpload)
}
