package routes

import (
	"studyhub/controllers"

	"github.com/gin-gonic/gin"
)

func SignUpRouteHandler(c *gin.Context) {
	controllers.SignUp(c)
}

func LoginRouteHandler(c *gin.Context) {
	controllers.Login(c)
}
