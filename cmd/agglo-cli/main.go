// Command agglo-cli runs one agglomeration over a flat binary affinity
// volume: seed via watershed, build the region graph, merge to a
// threshold, and log the merge count (plus the merge history with
// --verbose) and, optionally, a ground-truth evaluation.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/agglo/engine"
	"github.com/katalvlaran/agglo/metrics"
	"github.com/katalvlaran/agglo/score"
	"github.com/katalvlaran/agglo/session"
	"github.com/katalvlaran/agglo/stats"
	"github.com/katalvlaran/agglo/visitor"
	"github.com/katalvlaran/agglo/watershed"
)

// CLI is the kong-parsed argument set for one agglomeration run.
type CLI struct {
	Affinity    string  `arg:"" type:"existingfile" help:"Path to a flat binary affinity volume."`
	GroundTruth string  `optional:"" help:"Path to a flat binary label volume for evaluation."`
	Threshold   float64 `default:"0.5" help:"Merge-until score threshold."`
	Stat        string  `default:"max" enum:"max,mean,histogram,vector" help:"Edge statistic kind."`
	Low         float64 `default:"0.1" help:"Watershed cut threshold."`
	High        float64 `default:"0.9" help:"Watershed definite-merge threshold."`
	Quantile    float64 `default:"0.5" help:"Quantile reported by histogram/vector statistics."`
	Verbose     bool    `help:"Enable verbose per-merge engine logging."`
}

func statKind(name string) stats.Kind {
	switch name {
	case "mean":
		return stats.KindMean
	case "histogram":
		return stats.KindHistogramQuantile
	case "vector":
		return stats.KindVectorQuantile
	default:
		return stats.KindMax
	}
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Description("Hierarchical region agglomeration over a 3-D affinity volume."))

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(cli, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cli CLI, logger *log.Logger) error {
	aff, err := loadAffinity(cli.Affinity)
	if err != nil {
		return fmt.Errorf("loading affinity volume: %w", err)
	}
	logger.Info("loaded affinity volume", "w", aff.W, "h", aff.H, "d", aff.D)

	seg, err := watershed.Seed(aff, watershed.Options{Low: float32(cli.Low), High: float32(cli.High)})
	if err != nil {
		return fmt.Errorf("seeding watershed: %w", err)
	}
	logger.Info("seeded basins", "count", seg.NumIDs())

	statOpts := stats.DefaultOptions()
	statOpts.Quantile = cli.Quantile
	graph, err := watershed.BuildRegionGraph(aff, seg, statKind(cli.Stat), statOpts)
	if err != nil {
		return fmt.Errorf("building region graph: %w", err)
	}

	opts := engine.DefaultOptions()
	opts.Verbose = cli.Verbose
	store := session.New()
	handle, err := store.Create(graph, score.Ascending(cli.Quantile), opts)
	if err != nil {
		return fmt.Errorf("creating engine session: %w", err)
	}

	v := visitor.NewHistoryVisitor()
	merges, err := store.MergeUntil(handle, cli.Threshold, v)
	if err != nil {
		return fmt.Errorf("merging: %w", err)
	}
	logger.Info("merge run complete", "merges", merges)
	for _, ev := range v.History {
		logger.Debug("merged", "a", ev.A, "b", ev.B, "survivor", ev.Survivor, "score", ev.Score)
	}

	if cli.GroundTruth == "" {
		return nil
	}

	gt, err := loadLabels(cli.GroundTruth)
	if err != nil {
		return fmt.Errorf("loading ground truth: %w", err)
	}

	seeds := make([]uint32, seg.NumIDs()+1)
	for i := range seeds {
		seeds[i] = uint32(i)
	}
	labels, err := store.ExtractSegmentation(handle, seeds[1:])
	if err != nil {
		return fmt.Errorf("extracting segmentation: %w", err)
	}

	predLabels := make([]uint32, len(gt.Labels))
	for voxel, basin := range seg.Labels {
		if basin == 0 {
			continue
		}
		predLabels[voxel] = labels[basin-1]
	}
	pred, err := gtShapedSeg(gt, predLabels)
	if err != nil {
		return fmt.Errorf("building final segmentation: %w", err)
	}

	res, err := metrics.Evaluate(pred, gt)
	if err != nil {
		return fmt.Errorf("evaluating against ground truth: %w", err)
	}
	logger.Info("evaluation",
		"rand_split", res.RandSplit, "rand_merge", res.RandMerge,
		"voi_split", res.VOISplit, "voi_merge", res.VOIMerge)

	return nil
}
