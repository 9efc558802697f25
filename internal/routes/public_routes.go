package routes

import (
	"github.com/gin-gonic/gin"

	"notehub/internal/auth"
	"notehub/internal/constants"
	"notehub/internal/github"
	"notehub/internal/gitlab"
	"notehub/internal/note"
	"notehub/internal/slide"
)

func RegisterPublicRoutes(r *gin.Engine, controllerRegistry map[int]any) {

	// note
	noteApi := controllerRegistry[constants.Note].(note.Api)
	r.POST("/note", noteApi.NewNote)
	r.GET("/note/:noteId/:action", noteApi.PublishActions)

	// slide
	slideApi := controllerRegistry[constants.Slide].(slide.Api)
	r.GET("/slide/:noteId", slideApi.ShowPublishSlide)
	r.GET("/slide/:noteId/:action", slideApi.SlideActions)

	// code-hosting exports
	githubApi := controllerRegistry[constants.GitHub].(github.Api)
	r.GET("/github/:noteId/:action", githubApi.GithubActions)
	gitlabApi := controllerRegistry[constants.GitLab].(gitlab.Api)
	r.GET("/gitlab/:noteId/:action", gitlabApi.GitlabActions)

	// auth
	authApi := controllerRegistry[constants.Auth].(auth.Api)
	r.POST("/login", authApi.Login)
	r.GET("/logout", authApi.Logout)
}
