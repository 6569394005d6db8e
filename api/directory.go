package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biggrade/biggrade-api/consts"
	"github.com/biggrade/biggrade-api/schema"
)

// listDirectory is the public listing of helpers ordered by reputation
func (s *Server) listDirectory(c *gin.Context) {
	var params struct {
		UserType string `form:"user_type"`
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	switch params.UserType {
	case "", schema.UserTypeStudent, schema.UserTypeTutor:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	entries, err := s.mongoStore.ListDirectory(params.UserType, int64(listLimit(c, consts.DIRECTORY_LIST_LIMIT)))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entries})
}
