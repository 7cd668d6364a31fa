package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/home-sensor-api/pkg/home"
	"liyu1981.xyz/home-sensor-api/pkg/models"

	z "github.com/Oudwins/zog"
)

// resourceRoutes serves one resource family. T is the stored row and V the
// type of its value field.
type resourceRoutes[T models.Record, V any] struct {
	family   string
	schema   *z.StructSchema
	messages fieldMessages
	store    func() home.IResource[T]
	build    func(base models.Base, value V) T
}

func (r *resourceRoutes[T, V]) title() string {
	return strings.ToUpper(r.family[:1]) + r.family[1:]
}

func (r *resourceRoutes[T, V]) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": r.title() + " not found"})
}

func (r *resourceRoutes[T, V]) unavailable(c *gin.Context, err error, format string, args ...any) {
	requestLogger(c).Error("Store failure", zap.String("family", r.family), zap.Error(err))
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": fmt.Sprintf(format, args...)})
}

func (r *resourceRoutes[T, V]) readFailed(c *gin.Context, err error) {
	requestLogger(c).Error("Store read failure", zap.String("family", r.family), zap.Error(err))
	c.Status(http.StatusInternalServerError)
}

func (r *resourceRoutes[T, V]) decode(c *gin.Context, owner uint) (*T, int, *ValidationError) {
	req, verr := parseRecordRequest[V](c, r.schema, r.messages)
	if verr != nil {
		return nil, req.ID, verr
	}
	if req.Value == nil {
		return nil, req.ID, newValidationError(r.messages["value"])
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	rec := r.build(models.Base{Date: date.UTC(), UserID: owner}, *req.Value)
	return &rec, req.ID, nil
}

func (r *resourceRoutes[T, V]) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	records, err := r.store().List(c.Request.Context(), user.ID)
	if err != nil {
		r.readFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (r *resourceRoutes[T, V]) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, verr := parsePathID(c)
	if verr != nil {
		abortValidation(c, verr)
		return
	}

	rec, err := r.store().Get(c.Request.Context(), user.ID, id)
	switch {
	case errors.Is(err, home.ErrNotFound):
		r.notFound(c)
	case err != nil:
		r.readFailed(c, err)
	default:
		c.JSON(http.StatusOK, rec)
	}
}

func (r *resourceRoutes[T, V]) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rec, _, verr := r.decode(c, user.ID)
	if verr != nil {
		abortValidation(c, verr)
		return
	}

	created, err := r.store().Create(c.Request.Context(), rec)
	if err != nil {
		r.unavailable(c, err, "Unable to create %s", r.family)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (r *resourceRoutes[T, V]) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, verr := parsePathID(c)
	if verr != nil {
		abortValidation(c, verr)
		return
	}

	rec, bodyID, verr := r.decode(c, user.ID)
	if verr = verr.merge(checkBodyID(id, bodyID)); verr != nil {
		abortValidation(c, verr)
		return
	}

	updated, err := r.store().Update(c.Request.Context(), user.ID, id, rec)
	switch {
	case errors.Is(err, home.ErrNotFound):
		r.notFound(c)
	case err != nil:
		r.unavailable(c, err, "Unable to update %s %d", r.family, id)
	default:
		c.JSON(http.StatusOK, updated)
	}
}

func (r *resourceRoutes[T, V]) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, verr := parsePathID(c)
	if verr != nil {
		abortValidation(c, verr)
		return
	}

	if err := r.store().Delete(c.Request.Context(), user.ID, id); err != nil {
		r.unavailable(c, err, "Unable to delete %s %d", r.family, id)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) LastTemperature(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rec, err := rs.Home.Temperatures.GetLatest(c.Request.Context(), user.ID)
	switch {
	case errors.Is(err, home.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Temperature not found"})
	case err != nil:
		requestLogger(c).Error("Store read failure", zap.String("family", "temperature"), zap.Error(err))
		c.Status(http.StatusInternalServerError)
	default:
		c.JSON(http.StatusOK, rec)
	}
}

func abortValidation(c *gin.Context, verr *ValidationError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
}
