package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/activity"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
)

// Recorder counts catalog activity records. It is meant to be combined with
// the file logger through activity.Multi.
type Recorder struct{}

var _ activity.Logger = Recorder{}

func (Recorder) Record(operation, details string) {
	catalogOperationsTotal.WithLabelValues(operation).Inc()
}

// UsageSource is anything that reports catalog usage, usually a *catalog.SyncCatalog.
type UsageSource interface {
	Usage() catalog.Usage
}

// CatalogCollector exposes catalog usage as gauges, read at scrape time.
type CatalogCollector struct {
	src UsageSource

	totalSpace *prometheus.Desc
	usedSpace  *prometheus.Desc
	freeSpace  *prometheus.Desc
	maxFiles   *prometheus.Desc
	entries    *prometheus.Desc
}

func NewCatalogCollector(src UsageSource, catalogID string) *CatalogCollector {
	labels := prometheus.Labels{"catalog_id": catalogID}
	return &CatalogCollector{
		src:        src,
		totalSpace: prometheus.NewDesc("fsrecovery_catalog_total_space_bytes", "Total catalog capacity in bytes", nil, labels),
		usedSpace:  prometheus.NewDesc("fsrecovery_catalog_used_space_bytes", "Bytes charged by active entries", nil, labels),
		freeSpace:  prometheus.NewDesc("fsrecovery_catalog_free_space_bytes", "Bytes available for new entries", nil, labels),
		maxFiles:   prometheus.NewDesc("fsrecovery_catalog_max_files", "Maximum number of entry slots", nil, labels),
		entries:    prometheus.NewDesc("fsrecovery_catalog_entries", "Occupied entry slots by state", []string{"state"}, labels),
	}
}

func (c *CatalogCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalSpace
	ch <- c.usedSpace
	ch <- c.freeSpace
	ch <- c.maxFiles
	ch <- c.entries
}

func (c *CatalogCollector) Collect(ch chan<- prometheus.Metric) {
	u := c.src.Usage()
	ch <- prometheus.MustNewConstMetric(c.totalSpace, prometheus.GaugeValue, float64(u.TotalSpace))
	ch <- prometheus.MustNewConstMetric(c.usedSpace, prometheus.GaugeValue, float64(u.UsedSpace))
	ch <- prometheus.MustNewConstMetric(c.freeSpace, prometheus.GaugeValue, float64(u.FreeSpace))
	ch <- prometheus.MustNewConstMetric(c.maxFiles, prometheus.GaugeValue, float64(u.MaxFiles))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(u.Active), "active")
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(u.Deleted), "deleted")
}

// RegisterCatalog registers a CatalogCollector for src with the default registry.
func RegisterCatalog(src UsageSource, catalogID string) error {
	return prometheus.Register(NewCatalogCollector(src, catalogID))
}
