// Package metrics provides build metrics for blogbuilder.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default and costs nothing; PrometheusRecorder collects stage durations,
// outcomes, and artifact counts into a Prometheus registry which the CLI can
// write out in text exposition format (for the node_exporter textfile
// collector) after a build:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	builder := build.NewBuilder(layout, build.WithRecorder(rec))
//	...
//	err := metrics.WriteTextfile(path, reg)
package metrics
