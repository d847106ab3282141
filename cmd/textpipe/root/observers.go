package root

import (
	"log/slog"
	"sort"

	"github.com/askiada/go-textpipe/internal/config"
	"github.com/askiada/go-textpipe/internal/processor"
	"github.com/askiada/go-textpipe/pkg/pipeline/drawer"
	"github.com/askiada/go-textpipe/pkg/pipeline/measure"
	"github.com/askiada/go-textpipe/pkg/pipeline/model"
)

// observers holds the optional pipeline options of a run.
type observers struct {
	measure   measure.Measure
	graphPath string
}

func newObservers(cfg config.Config) *observers {
	obs := &observers{graphPath: cfg.GraphPath}
	if cfg.Stats {
		obs.measure = measure.NewDefaultMeasure()
	}

	return obs
}

func (o *observers) pipelineOptions() []model.PipelineOption {
	var opts []model.PipelineOption

	if o.measure != nil {
		opts = append(opts, measure.PipelineMeasure(o.measure))
	}

	if o.graphPath != "" {
		opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(o.graphPath), o.measure))
	}

	return opts
}

func (o *observers) report(logger *slog.Logger, stats processor.Stats) {
	if o.measure == nil {
		return
	}

	logger.Info("session stats",
		"rejected", stats.Rejected,
		"processed", stats.Processed,
		"failed", stats.Failed,
	)

	all := o.measure.AllMetrics()

	names := make([]string, 0, len(all))
	for name := range all {
		if name == model.StartStep.Details.Name || name == model.EndStep.Details.Name {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		mt := all[name]

		attrs := []any{
			"stage", name,
			"total", mt.Total(),
			"avg", mt.AVGDuration(),
			"end", mt.GetTotalDuration(),
		}

		for input, info := range mt.AVGTransportDuration() {
			attrs = append(attrs, "transport_"+input, info.Elapsed)
		}

		logger.Info("stage stats", attrs...)
	}
}
