package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("assemble", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncStageResult("assemble", ResultSuccess)
	pr.IncBuildOutcome(BuildOutcomeSuccess)
	pr.SetPosts(3)
	pr.IncArtifact("post")
	pr.IncArtifact("post")
	pr.IncArtifact("feed")

	mfs, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	require.True(t, names["blogbuilder_stage_duration_seconds"])
	require.True(t, names["blogbuilder_posts"])
	require.True(t, names["blogbuilder_artifacts_written_total"])
	require.True(t, names["blogbuilder_last_build_timestamp_seconds"])
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var pr *PrometheusRecorder
	require.NotPanics(t, func() {
		pr.ObserveStageDuration("assemble", time.Second)
		pr.IncBuildOutcome(BuildOutcomeFailed)
		pr.SetPosts(1)
		pr.IncArtifact("index")
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.SetPosts(2)
	pr.IncArtifact("sitemap")

	path := filepath.Join(t.TempDir(), "blogbuilder.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "blogbuilder_posts 2")
	require.Contains(t, string(data), `blogbuilder_artifacts_written_total{kind="sitemap"} 1`)
}
