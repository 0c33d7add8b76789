package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetUUIDParam(ctx *gin.Context, name string) (uuid.UUID, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return uuid.Nil, errors.New("missing " + name)
	}

	id, err := uuid.Parse(raw)

	if err != nil {
		return uuid.Nil, errors.New("invalid " + name)
	}

	return id, nil
}
