package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/mindclash/debate-arena/api/handlers"
	"github.com/mindclash/debate-arena/engine"
)

// NewRouter builds the REST API around a debate engine.
func NewRouter(e *engine.Engine) *gin.Engine {
	handlers.Setup(e)
	router := gin.Default()
	SetupRoutes(router)
	return router
}

// StartServer runs the REST API on the given port, blocking.
func StartServer(e *engine.Engine, port int) error {
	return NewRouter(e).Run(fmt.Sprintf(":%d", port))
}
