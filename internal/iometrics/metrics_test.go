package iometrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/pkg/errcode"
	"github.com/gnames/npdb/pkg/npdb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	assert := assert.New(t)
	m := New("", "curate:chebi")
	m.Observe(npdb.Report{Read: 10, Malformed: 1, Missing: 2, Changed: 5}, 3*time.Second)
	m.Observe(npdb.Report{Read: 4}, 4*time.Second)

	assert.Equal(14.0, testutil.ToFloat64(m.read))
	assert.Equal(1.0, testutil.ToFloat64(m.malformed))
	assert.Equal(2.0, testutil.ToFloat64(m.missing))
	assert.Equal(5.0, testutil.ToFloat64(m.changed))
	assert.Equal(4.0, testutil.ToFloat64(m.duration))

	// no url, nothing to do
	assert.NoError(m.Push())
}

func TestPush(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
	defer srv.Close()

	m := New(srv.URL, "xrefs")
	m.Observe(npdb.Report{Read: 1}, time.Second)
	require.NoError(t, m.Push())
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/npdb/pass/xrefs", path)
}

func TestPushError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
	defer srv.Close()

	err := New(srv.URL, "taxa").Push()
	require.Error(t, err)
	assert.Equal(t, errcode.MetricsPushError, err.(*gn.Error).Code)
}
