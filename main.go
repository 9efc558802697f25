package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapio"
	"golang.org/x/text/language"

	"notehub/internal/api"
	"notehub/internal/auth"
	"notehub/internal/config"
	"notehub/internal/constants"
	"notehub/internal/controllers"
	"notehub/internal/database"
	"notehub/internal/environment"
	"notehub/internal/github"
	"notehub/internal/gitlab"
	"notehub/internal/history"
	"notehub/internal/logging"
	"notehub/internal/note"
	"notehub/internal/routes"
	"notehub/internal/slide"
)

func main() {
	c := config.InitConfig()

	logger := logging.InitLogging(c)

	controllerRegistry, err := injectDependencies(c, logger)
	if err != nil {
		logger.LogErrorf(nil, "injecting dependencies failed: %s", err.Error())
		return
	}

	ginLogger := logging.InitGinLogger(c)

	gin.DefaultWriter = io.MultiWriter(&zapio.Writer{Log: ginLogger, Level: config.Config().Logging.Level})
	if config.Config().Logging.Level == zap.DebugLevel {
		logger.LogDebug(nil, "Enabling Gin debug (writes to access log)")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		ginzap.GinzapWithConfig(ginLogger, &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        false,
			SkipPaths:  []string{"/status"},
		}),
		ginzap.RecoveryWithZap(ginLogger, true),
	)
	r.SetHTMLTemplate(api.Templates())

	// Routes
	routes.InitRouter(r, c, controllerRegistry)

	SetupCloseHandler(logger)

	if len(config.Config().ListeningAddress) == 0 && len(config.Config().ListeningPort) == 0 {
		panic("No listening address/port provided")
	}

	logger.LogInfof(nil, "API running. Listening on %s:%s", config.Address(), config.Port())

	err = r.Run(config.Address() + ":" + config.Port())
	if err != nil {
		logger.LogErrorf(nil, "Listening on %s:%s failed: %s", config.Address(), config.Port(), err.Error())
		return
	}
}

func injectDependencies(c *config.Configuration, logger logging.Logger) (map[int]any, error) {
	db, err := database.InitDatabase(c, logger)
	if err != nil {
		logger.LogError(nil, "error initializing database: ", err)
		return nil, err
	}

	env := environment.Environment(
		&database.GormRepository{DB: db},
		logger,
	)

	serverURL := c.ServerBase()
	responder := api.Responder{ServerURL: serverURL}
	recorder := &history.Recorder{Env: env}

	noteController := &note.Controller{
		Env:               env,
		Responder:         responder,
		History:           recorder,
		ServerURL:         serverURL,
		DocumentMaxLength: c.Notes.DocumentMaxLength,
		AllowAnonymous:    c.Notes.AllowAnonymous,
	}
	resolver := note.NewResolver(env, responder, note.ResolverConfig{
		AllowFreeURL:             c.Notes.AllowFreeURL,
		ForbiddenNoteIDs:         c.Notes.ForbiddenNoteIDs,
		DecodeErrorsAsBadRequest: c.Notes.DecodeErrorsAsBadRequest,
	}, noteController)
	noteController.Resolver = resolver

	slideController := &slide.Controller{
		Env:       env,
		Responder: responder,
		Resolver:  resolver,
		History:   recorder,
		ServerURL: serverURL,
	}

	githubClient := github.NewClient(c.GitHub.ClientID, c.GitHub.ClientSecret)
	githubController := &github.Controller{
		Env:       env,
		Responder: responder,
		Resolver:  resolver,
		Exchanger: githubClient,
		Gists:     githubClient,
		ServerURL: serverURL,
	}

	gitlabBaseURL := ""
	if c.GitLab.BaseURL != nil && c.GitLab.BaseURL.URL != nil {
		gitlabBaseURL = c.GitLab.BaseURL.String()
	}
	gitlabController := &gitlab.Controller{
		Env:       env,
		Responder: responder,
		Resolver:  resolver,
		Projects:  gitlab.NewClient(),
		ServerURL: serverURL,
		BaseURL:   gitlabBaseURL,
		Version:   c.GitLab.Version,
	}

	historyController := &history.Controller{
		Env:          env,
		Responder:    responder,
		SortLanguage: language.English,
	}

	authController := &auth.Controller{
		Env:         env,
		AuthService: &auth.AuthService{Env: env},
		SigningKey:  c.Session.SigningKey,
		CookieName:  c.Session.CookieName,
		Lifetime:    c.Session.Lifetime.Duration,
	}

	statusController := &controllers.StatusController{Env: env, Responder: responder}

	controllerRegistry := make(map[int]any)
	controllerRegistry[constants.Note] = noteController
	controllerRegistry[constants.Slide] = slideController
	controllerRegistry[constants.GitHub] = githubController
	controllerRegistry[constants.GitLab] = gitlabController
	controllerRegistry[constants.History] = historyController
	controllerRegistry[constants.Auth] = authController
	controllerRegistry[constants.Status] = statusController

	return controllerRegistry, nil
}

func SetupCloseHandler(logger logging.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-c
		fmt.Println()
		logger.LogWarnf(nil, "Cleaning up...")
		time.Sleep(1 * time.Second)
		os.Exit(1)
	}()
}
