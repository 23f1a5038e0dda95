package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrotrace/internal/core/domain/model/kernel"
	"agrotrace/internal/core/domain/model/staff"
	"agrotrace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIdentityResolver struct {
	actor staff.Actor
	err   error
	token string
}

func (r *stubIdentityResolver) Resolve(_ context.Context, token string) (staff.Actor, error) {
	r.token = token
	if r.err != nil {
		return staff.Actor{}, r.err
	}
	return r.actor, nil
}

func testActor(t *testing.T) staff.Actor {
	t.Helper()

	actor, err := staff.NewActor(kernel.NewUUID(), staff.Coordinator, nil, true)
	require.NoError(t, err)
	return actor
}

func newTestServer(t *testing.T, resolver *stubIdentityResolver) *echo.Echo {
	t.Helper()

	// Command and query handlers stay zero-valued here. The requests in
	// these tests are rejected by the middleware or by request parsing
	// before any handler is reached.
	server := &Server{identity: resolver}
	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func TestActorMiddleware_MissingTokenRejected(t *testing.T) {
	resolver := &stubIdentityResolver{}
	e := newTestServer(t, resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, resolver.token)
}

func TestActorMiddleware_UnknownTokenRejected(t *testing.T) {
	resolver := &stubIdentityResolver{err: errs.NewUnauthorizedError("unknown", "authenticate")}
	e := newTestServer(t, resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer nope")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "nope", resolver.token)
}

func TestUpdateBatchStatus_BadInputRejectedBeforeHandler(t *testing.T) {
	resolver := &stubIdentityResolver{actor: testActor(t)}
	e := newTestServer(t, resolver)

	tests := map[string]struct {
		path string
		body string
	}{
		"malformed batch id": {
			path: "/api/v1/batches/not-a-uuid/status",
			body: `{"status": "Harvested"}`,
		},
		"unknown status": {
			path: "/api/v1/batches/" + kernel.NewUUID().String() + "/status",
			body: `{"status": "Teleported"}`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, test.path,
				bytes.NewBufferString(test.body))
			req.Header.Set(echo.HeaderAuthorization, "Bearer ok")
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestScheduleTransport_DateFormatEnforced(t *testing.T) {
	resolver := &stubIdentityResolver{actor: testActor(t)}
	e := newTestServer(t, resolver)

	body := `{
		"batchId": "` + kernel.NewUUID().String() + `",
		"driverId": "` + kernel.NewUUID().String() + `",
		"vehicleId": "` + kernel.NewUUID().String() + `",
		"scheduledDate": "01/07/2026",
		"pickup": "farm",
		"delivery": "warehouse"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transport-tasks",
		bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderAuthorization, "Bearer ok")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")
}

func TestStatusFromError(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"unauthorized":         {errs.NewUnauthorizedError("FARMER", "schedule_transport"), http.StatusUnauthorized},
		"not found":            {errs.NewObjectNotFoundError("batchId", "123"), http.StatusNotFound},
		"invalid transition":   {errs.NewInvalidTransitionError("crop_batch", "Planted", "Shipped"), http.StatusConflict},
		"scheduling conflict":  {errs.NewSchedulingConflictError("driver", "d-1", "2026-07-01"), http.StatusConflict},
		"resource unavailable": {errs.NewResourceUnavailableError("vehicle", "v-1", "InUse"), http.StatusConflict},
		"missing prerequisite": {errs.NewMissingPrerequisiteError("warehouseId", "not set"), http.StatusUnprocessableEntity},
		"code mismatch":        {errs.NewCodeMismatchError("CB-2026-001"), http.StatusUnprocessableEntity},
		"value required":       {errs.NewValueIsRequiredError("notes"), http.StatusBadRequest},
		"unexpected":           {errors.New("db down"), http.StatusInternalServerError},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, statusFromError(test.err))
		})
	}
}
