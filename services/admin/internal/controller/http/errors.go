package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pilates-club/pkg/logger"
	"pilates-club/services/admin/internal/sweep"
	"pilates-club/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errInvalidDate = errors.New("dates must be YYYY-MM-DD or RFC 3339")

func writeError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrNoMembersSelected),
		errors.Is(err, usecase.ErrMemberFieldsRequired),
		errors.Is(err, usecase.ErrInvalidPIN),
		errors.Is(err, usecase.ErrExpirationRequired),
		errors.Is(err, usecase.ErrInvalidMonths),
		errors.Is(err, usecase.ErrContentFieldsRequired),
		errors.Is(err, usecase.ErrInvalidYoutubeURL),
		errors.Is(err, usecase.ErrInvalidVideoKey),
		errors.Is(err, usecase.ErrNoContentsSelected),
		errors.Is(err, usecase.ErrCouponCodeRequired),
		errors.Is(err, usecase.ErrInvalidCouponDuration),
		errors.Is(err, usecase.ErrInvalidCouponStatus),
		errors.Is(err, errInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrMemberNotFound),
		errors.Is(err, usecase.ErrContentNotFound),
		errors.Is(err, usecase.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrVideoKeyTaken),
		errors.Is(err, usecase.ErrCouponCodeTaken),
		errors.Is(err, usecase.ErrCouponUsed),
		errors.Is(err, usecase.ErrNotPending),
		errors.Is(err, sweep.ErrInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}

// parseDate accepts a plain date from a date picker or a full timestamp.
// Empty input yields nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, errInvalidDate
	}
	return &t, nil
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
