package http

import "github.com/gin-gonic/gin"

func RegisterPostRoutes(r *gin.Engine, handler *PostHandler) {
	posts := r.Group("/posts")
	{
		// Ruta vacía: /posts responde directo, sin redirección a /posts/.
		posts.POST("", handler.CreatePost)
		posts.GET("", handler.ListPosts)
		posts.GET("/top", handler.ListPinnedPosts)
		posts.GET("/:id", handler.GetPost)
		posts.PUT("/:id", handler.UpdatePost)
		posts.DELETE("/:id", handler.WithdrawPost)
	}
}
