package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/biggrade/biggrade-api/schema"
	"github.com/biggrade/biggrade-api/store"
)

// accountRegister sets up the canonical user of the token subject. The role
// chosen here is fixed for the life of the account.
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")
	email := c.GetString("requester")

	var params struct {
		FullName string `json:"full_name"`
		UserType string `json:"user_type"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	fullName := strings.TrimSpace(params.FullName)
	if fullName == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	switch params.UserType {
	case schema.UserTypeStudent, schema.UserTypeTutor:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	user := &schema.User{
		Email:    email,
		FullName: fullName,
		UserType: params.UserType,
	}
	if err := s.store.CreateUser(user); err != nil {
		abortWithError(c, err)
		return
	}

	if err := s.mongoStore.UpsertDirectoryEntry(schema.NewDirectoryEntry(user, s.now())); err != nil {
		logger.WithError(err).WithField("user", email).Warn("fail to seed directory entry")
	}

	c.JSON(http.StatusOK, gin.H{"result": user})
}

// accountDetail returns the canonical record of the current user along with
// its directory entry, which is null until the first sync lands
func (s *Server) accountDetail(c *gin.Context) {
	user := currentUser(c)

	entry, err := s.mongoStore.GetDirectoryEntry(user.Email)
	if err != nil && err != store.ErrDirectoryEntryNotFound {
		log.WithError(err).WithField("user", user.Email).Warn("fail to load directory entry")
	}

	c.JSON(http.StatusOK, gin.H{
		"result":    user,
		"directory": entry,
	})
}
