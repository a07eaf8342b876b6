package metrics

import (
	"testing"
	"time"
)

type testRecorder struct {
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	buildDurations int
	buildOutcomes  map[BuildOutcomeLabel]int
	posts          int
	artifacts      map[string]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stageDurations: map[string]int{},
		stageResults:   map[string]map[ResultLabel]int{},
		buildOutcomes:  map[BuildOutcomeLabel]int{},
		artifacts:      map[string]int{},
	}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.stageDurations[stage]++
}
func (t *testRecorder) ObserveBuildDuration(_ time.Duration) { t.buildDurations++ }
func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}
func (t *testRecorder) IncBuildOutcome(outcome BuildOutcomeLabel) { t.buildOutcomes[outcome]++ }
func (t *testRecorder) SetPosts(n int)                            { t.posts = n }
func (t *testRecorder) IncArtifact(kind string)                   { t.artifacts[kind]++ }

func TestRecorderInterfaceSatisfied(t *testing.T) {
	var _ Recorder = NoopRecorder{}
	var _ Recorder = (*PrometheusRecorder)(nil)
	var _ Recorder = newTestRecorder()

	r := newTestRecorder()
	r.ObserveStageDuration("render", time.Millisecond)
	r.IncStageResult("render", ResultSuccess)
	r.IncArtifact("post")
	r.SetPosts(4)
	if r.stageDurations["render"] != 1 || r.stageResults["render"][ResultSuccess] != 1 {
		t.Fatalf("unexpected recorder state: %+v", r)
	}
	if r.artifacts["post"] != 1 || r.posts != 4 {
		t.Fatalf("unexpected recorder state: %+v", r)
	}
}
