package api

import (
	"github.com/Aidin1998/goodbye/api/responses"
	"github.com/gin-gonic/gin"
)

// root lists the available endpoints
//
//	@Summary		API index
//	@Description	Lists the endpoints served by this API
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	responses.WelcomeResponse
//	@Router			/ [get]
func (s *Server) root(c *gin.Context) {
	responses.Success(c, responses.NewWelcomeResponse())
}

//	@Summary	Say goodbye
//	@Tags		Goodbye
//	@Produce	json
//	@Success	200	{object}	responses.GoodbyeResponse
//	@Router		/goodbye [get]
func (s *Server) goodbye(c *gin.Context) {
	responses.Success(c, responses.NewGoodbyeResponse())
}

// notFound answers every request no route matched
func (s *Server) notFound(c *gin.Context) {
	responses.NotFound(c)
}
