package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/activity"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
)

func TestRecorder_CountsByOperation(t *testing.T) {
	before := testutil.ToFloat64(catalogOperationsTotal.WithLabelValues(activity.OpCreate))
	beforeErr := testutil.ToFloat64(catalogOperationsTotal.WithLabelValues(activity.OpError))

	c := catalog.New(100, catalog.WithLogger(Recorder{}))
	require.NoError(t, c.Create("a", "/a", 10))
	require.NoError(t, c.Create("b", "/b", 10))
	require.Error(t, c.Delete("/missing"))

	assert.Equal(t, before+2, testutil.ToFloat64(catalogOperationsTotal.WithLabelValues(activity.OpCreate)))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(catalogOperationsTotal.WithLabelValues(activity.OpError)))
}

func TestRecordGRPCRequest(t *testing.T) {
	method := "/fsrecovery.CatalogService/TestRecord"
	RecordGRPCRequest(method, "OK", 10*time.Millisecond)
	RecordGRPCRequest(method, "NotFound", time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(grpcRequestsTotal.WithLabelValues(method, "OK")))
	assert.Equal(t, float64(1), testutil.ToFloat64(grpcRequestsTotal.WithLabelValues(method, "NotFound")))
}

func TestRecordCompaction(t *testing.T) {
	runs := testutil.ToFloat64(compactionRunsTotal)
	removed := testutil.ToFloat64(compactionRemovedTotal)

	RecordCompaction(3)

	assert.Equal(t, runs+1, testutil.ToFloat64(compactionRunsTotal))
	assert.Equal(t, removed+3, testutil.ToFloat64(compactionRemovedTotal))
}

func TestCatalogCollector(t *testing.T) {
	c := catalog.New(1000, catalog.WithMaxFiles(10))
	require.NoError(t, c.Create("a", "/a", 100))
	require.NoError(t, c.Create("b", "/b", 300))
	require.NoError(t, c.Delete("/a"))

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCatalogCollector(c, "test")))

	expected := `
# HELP fsrecovery_catalog_entries Occupied entry slots by state
# TYPE fsrecovery_catalog_entries gauge
fsrecovery_catalog_entries{catalog_id="test",state="active"} 1
fsrecovery_catalog_entries{catalog_id="test",state="deleted"} 1
# HELP fsrecovery_catalog_free_space_bytes Bytes available for new entries
# TYPE fsrecovery_catalog_free_space_bytes gauge
fsrecovery_catalog_free_space_bytes{catalog_id="test"} 700
# HELP fsrecovery_catalog_max_files Maximum number of entry slots
# TYPE fsrecovery_catalog_max_files gauge
fsrecovery_catalog_max_files{catalog_id="test"} 10
# HELP fsrecovery_catalog_total_space_bytes Total catalog capacity in bytes
# TYPE fsrecovery_catalog_total_space_bytes gauge
fsrecovery_catalog_total_space_bytes{catalog_id="test"} 1000
# HELP fsrecovery_catalog_used_space_bytes Bytes charged by active entries
# TYPE fsrecovery_catalog_used_space_bytes gauge
fsrecovery_catalog_used_space_bytes{catalog_id="test"} 300
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}

func TestHandler(t *testing.T) {
	RecordCompaction(0)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fsrecovery_compaction_runs_total")
}
