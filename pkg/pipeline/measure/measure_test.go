package measure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-textpipe/pkg/pipeline/measure"
	"github.com/askiada/go-textpipe/pkg/pipeline/model"
)

func TestDefaultMetricAverages(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	mt := msr.AddMetric("process", 1)

	assert.Equal(t, time.Duration(0), mt.AVGDuration())

	mt.AddDuration(2 * time.Millisecond)
	mt.AddDuration(4 * time.Millisecond)
	mt.AddTransportDuration("input", 10*time.Millisecond)
	mt.AddTransportDuration("input", 20*time.Millisecond)

	assert.EqualValues(t, 2, mt.Total())
	assert.Equal(t, 3*time.Millisecond, mt.AVGDuration())

	avg := mt.AVGTransportDuration()
	require.Contains(t, avg, "input")
	assert.Equal(t, 15*time.Millisecond, avg["input"].Elapsed)

	// Averaging twice gives the same answer.
	assert.Equal(t, 15*time.Millisecond, mt.AVGTransportDuration()["input"].Elapsed)
	assert.Equal(t, 30*time.Millisecond, mt.AllTransports()["input"].Elapsed)
}

func TestDefaultMetricTotalDuration(t *testing.T) {
	t.Parallel()

	mt := measure.NewDefaultMeasure().AddMetric("process", 1)
	mt.SetTotalDuration(time.Second)

	assert.Equal(t, time.Second, mt.GetTotalDuration())
}

func TestDefaultMeasureAllMetrics(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	msr.AddMetric("a", 1)
	msr.AddMetric("b", 1)

	all := msr.AllMetrics()
	assert.Len(t, all, 2)

	delete(all, "a")
	assert.NotNil(t, msr.GetMetric("a"))
	assert.Nil(t, msr.GetMetric("missing"))
}

func TestPipelineMeasure(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	opt := measure.PipelineMeasure(msr)

	root := &model.StepInfo{Name: "input", Concurrent: 1}
	sink := &model.StepInfo{Name: "process", Concurrent: 1}

	require.NoError(t, opt.New())
	require.NoError(t, opt.PrepareStep(model.StartStep.Details, root))
	require.NoError(t, opt.PrepareSink(root, sink))
	require.NoError(t, opt.OnSinkOutput(root, sink, 3*time.Millisecond, time.Millisecond))
	require.NoError(t, opt.AfterSink(sink, time.Second))
	require.NoError(t, opt.Finish())

	assert.Len(t, msr.AllMetrics(), 4)
	assert.EqualValues(t, 1, msr.GetMetric("process").Total())
	assert.Equal(t, time.Millisecond, msr.GetMetric("process").AVGDuration())
	assert.Equal(t, 3*time.Millisecond, msr.GetMetric("process").AVGTransportDuration()["input"].Elapsed)
	assert.Equal(t, time.Second, msr.GetMetric(model.EndStep.Details.Name).GetTotalDuration())
}
