package submit_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itasks/internal/backend/rest"
	"itasks/internal/backend/simulated"
	"itasks/internal/service"
	"itasks/internal/submit"
	"itasks/internal/task"
	"itasks/internal/testutil"
)

const realEndpoint = "https://tasks.example.com/tasks"

func newWorkflow(fake *testutil.FakeService, delay time.Duration) *submit.Workflow {
	return submit.New(submit.Options{
		Remote:    fake.Factory(),
		Simulator: simulated.New(delay),
	})
}

func TestIsRealEndpointConfigured(t *testing.T) {
	tests := []struct {
		endpoint string
		want     bool
	}{
		{"", false},
		{"http://localhost:3000/tasks", false},
		{"localhost", false},
		{"https://tasks.example.com/tasks", true},
		{"HTTPS://upper.example.com", false},
		{"http://example.com/?next=https", true},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			assert.Equal(t, tt.want, submit.IsRealEndpointConfigured(tt.endpoint))
		})
	}
}

func TestSubmit_ValidationShortCircuits(t *testing.T) {
	fake := testutil.NewFakeService()
	wf := newWorkflow(fake, time.Hour)

	for _, endpoint := range []string{"", realEndpoint} {
		_, err := wf.Submit(context.Background(), task.Draft{Title: "", Description: "ok"}, endpoint)

		var verr *submit.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, task.FieldTitle, verr.Fields[0].Field)
	}

	assert.Equal(t, 0, fake.CreateCalls)
	assert.Empty(t, fake.Endpoints())
}

func TestSubmit_PunctuationRejected(t *testing.T) {
	wf := newWorkflow(testutil.NewFakeService(), 0)

	_, err := wf.Submit(context.Background(), task.Draft{Title: "Buy milk!", Description: "2 liters"}, "")

	var verr *submit.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []task.FieldError{{Field: task.FieldTitle, Message: task.MsgAlphanumeric}}, verr.Fields)
}

func TestSubmit_Simulated(t *testing.T) {
	fake := testutil.NewFakeService()
	delay := 20 * time.Millisecond
	wf := newWorkflow(fake, delay)
	draft := task.Draft{Title: "Buy milk", Description: "2 liters"}

	ids := make(map[string]bool)
	for _, endpoint := range []string{"", "http://insecure.example.com", ""} {
		start := time.Now()
		got, err := wf.Submit(context.Background(), draft, endpoint)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, time.Since(start), delay)
		assert.Equal(t, draft.Title, got.Title)
		assert.Equal(t, draft.Description, got.Description)
		require.NotEmpty(t, got.ID)
		assert.False(t, ids[got.ID], "duplicate id %s", got.ID)
		ids[got.ID] = true
	}

	assert.Equal(t, 0, fake.CreateCalls)
}

func TestSubmit_RealUsesRemote(t *testing.T) {
	fake := testutil.NewFakeService()
	wf := newWorkflow(fake, time.Hour)

	got, err := wf.Submit(context.Background(), task.Draft{Title: "T", Description: "D"}, realEndpoint)
	require.NoError(t, err)

	assert.Equal(t, task.Task{ID: "1", Title: "T", Description: "D"}, got)
	assert.Equal(t, []string{realEndpoint}, fake.Endpoints())
	assert.Equal(t, 1, fake.CreateCalls)
}

func TestSubmit_RealNoRetry(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.CreateTaskErr = errors.New("connection reset")
	wf := newWorkflow(fake, 0)

	_, err := wf.Submit(context.Background(), task.Draft{Title: "T", Description: "D"}, realEndpoint)

	var nerr *submit.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, 0, nerr.StatusCode)
	assert.Equal(t, 1, fake.CreateCalls)
	assert.Equal(t, "server error (no response)", submit.Message(err))
}

func TestSubmit_FactoryError(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.FactoryErr = errors.New("invalid endpoint")
	wf := newWorkflow(fake, 0)

	_, err := wf.Submit(context.Background(), task.Draft{Title: "T", Description: "D"}, realEndpoint)

	var nerr *submit.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, 0, fake.CreateCalls)
}

func TestSubmit_NoRemoteConfigured(t *testing.T) {
	wf := submit.New(submit.Options{})

	_, err := wf.Submit(context.Background(), task.Draft{Title: "T", Description: "D"}, realEndpoint)

	var nerr *submit.NetworkError
	assert.ErrorAs(t, err, &nerr)
}

// newHTTPWorkflow wires the REST backend to a TLS test server so the
// endpoint carries the https marker.
func newHTTPWorkflow(t *testing.T, handler http.HandlerFunc) (*submit.Workflow, string) {
	t.Helper()
	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	wf := submit.New(submit.Options{
		Remote: func(endpoint string) (service.Service, error) {
			c, err := rest.New(endpoint, rest.Options{HTTPClient: srv.Client()})
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		Simulator: simulated.New(time.Hour),
	})
	return wf, srv.URL + "/tasks"
}

func TestSubmit_RealCreated(t *testing.T) {
	wf, endpoint := newHTTPWorkflow(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"42","title":"T","description":"D"}`)
	})

	got, err := wf.Submit(context.Background(), task.Draft{Title: "T", Description: "D"}, endpoint)
	require.NoError(t, err)
	assert.Equal(t, task.Task{ID: "42", Title: "T", Description: "D"}, got)
}

func TestSubmit_RealServerError(t *testing.T) {
	wf, endpoint := newHTTPWorkflow(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	got, err := wf.Submit(context.Background(), task.Draft{Title: "T", Description: "D"}, endpoint)

	var nerr *submit.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, http.StatusInternalServerError, nerr.StatusCode)
	assert.Equal(t, task.Task{}, got)
	assert.Equal(t, "server error (status 500)", submit.Message(err))
}

func TestSubmit_RealUnreadableBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"not json", http.StatusOK, "not json", "server error (status 200)"},
		{"no id", http.StatusCreated, `{"title":"T","description":"D"}`, "server error (status 201)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, endpoint := newHTTPWorkflow(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			got, err := wf.Submit(context.Background(), task.Draft{Title: "T", Description: "D"}, endpoint)

			var nerr *submit.NetworkError
			require.ErrorAs(t, err, &nerr)
			assert.Equal(t, tt.status, nerr.StatusCode)
			assert.Equal(t, task.Task{}, got)
			assert.Equal(t, tt.want, submit.Message(err))
		})
	}
}

func TestDelete_SimulatedIsLocal(t *testing.T) {
	fake := testutil.NewFakeService()
	wf := newWorkflow(fake, 0)

	require.NoError(t, wf.Delete(context.Background(), "1", ""))
	assert.Equal(t, 0, fake.DeleteCalls)
	assert.Empty(t, fake.Endpoints())
}

func TestDelete_Real(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("7", "T", "D")
	wf := newWorkflow(fake, 0)

	require.NoError(t, wf.Delete(context.Background(), "7", realEndpoint))
	assert.Empty(t, fake.Tasks())

	err := wf.Delete(context.Background(), "7", realEndpoint)
	var nerr *submit.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, http.StatusNotFound, nerr.StatusCode)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", &submit.ValidationError{}, submit.MsgValidation},
		{"status", &submit.NetworkError{StatusCode: 503, Err: errors.New("down")}, "server error (status 503)"},
		{"no response", &submit.NetworkError{Err: errors.New("dial")}, "server error (no response)"},
		{"wrapped", fmt.Errorf("add: %w", &submit.NetworkError{StatusCode: 400}), "server error (status 400)"},
		{"other", context.Canceled, submit.MsgUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, submit.Message(tt.err))
		})
	}
}

func TestErrorStrings(t *testing.T) {
	verr := &submit.ValidationError{Fields: task.Validate(task.Draft{})}
	assert.Equal(t, "invalid task: title: title is required; description: description is required", verr.Error())

	inner := errors.New("boom")
	nerr := &submit.NetworkError{StatusCode: 500, Err: inner}
	assert.Equal(t, "network error (status 500): boom", nerr.Error())
	assert.ErrorIs(t, nerr, inner)
}
