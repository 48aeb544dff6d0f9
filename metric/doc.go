// Package metric collects Prometheus metrics for a generation run and
// writes them to a node-exporter textfile.
//
// A batch job has no scrape endpoint, so the registry is flushed once at the
// end of a run:
//
//	m := metric.New()
//	m.ObserveStage(metric.StageLoad, time.Since(start))
//	m.SetLoaded(store.Len())
//	...
//	m.RecordSuccess(time.Now())
//	err := m.WriteTextfile("/var/lib/node_exporter/textfile/semschema.prom")
package metric
