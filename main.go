package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/flowbase/flowbase"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rdfio/wdfilter/components"
)

var (
	labelsFlag  bool
	countsFlag  bool
	skipFlag    uint64
	workersFlag int
)

var rootCmd = &cobra.Command{
	Use:   "wdfilter [flags] dump.nt.bz2 [dump...]",
	Short: "Filter Wikidata truthy dumps into loadable triple shards",
	Long: `wdfilter streams one or more compressed Wikidata N-Triples dumps through a
pool of workers, dropping statements that are useless for triple-store
loading (identifier properties, dump metadata, blank nodes, unwanted
languages, non-Earth geometries). Each worker writes its own compressed
shard; optionally it also extracts entity labels and counts direct
statements per entity, with the counts merged into a single file at the
end.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&labelsFlag, "labels", "l", false, "also write a compressed label file per worker")
	rootCmd.Flags().BoolVarP(&countsFlag, "counts", "c", false, "also write merged per-entity statement counts")
	rootCmd.Flags().Uint64VarP(&skipFlag, "skip", "s", 0, "number of leading lines to discard")
	rootCmd.Flags().IntVarP(&workersFlag, "workers", "w", runtime.NumCPU(), "number of worker threads")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "# %v\n", err)
		os.Exit(1)
	}
}

func run(paths []string) error {
	flowbase.InitLogInfo()

	if workersFlag < 1 {
		return errors.Newf("invalid worker count: %d", workersFlag)
	}

	tables := components.NewReferenceTables()
	running := components.NewFlag(true)
	installInterruptHandler(running)

	start := time.Now()
	fs := afero.NewOsFs()

	pipeRunner := flowbase.NewNet()

	producer := components.NewBatchProducer(fs, skipFlag, running)
	pipeRunner.AddProcess(producer)

	aggregator := components.NewResultAggregator(fs, workersFlag, countsFlag)

	for id := 1; id <= workersFlag; id++ {
		worker := components.NewWorker(strconv.Itoa(id), fs, tables, labelsFlag, countsFlag)
		worker.InBatch = producer.OutBatch
		worker.OutResult = aggregator.InResult
		pipeRunner.AddProcess(worker)
	}

	// The aggregator is added last so that pipeRunner.Run() blocks until
	// every worker has finalized its streams and reported in.
	pipeRunner.AddProcess(aggregator)

	go func() {
		defer close(producer.InFilePath)
		for _, path := range paths {
			producer.InFilePath <- path
		}
	}()

	pipeRunner.Run()

	fmt.Fprintf(os.Stderr, "# took %s\n", time.Since(start))

	if producer.Interrupted() {
		return errors.Newf("interrupted after %d lines", producer.Total())
	}
	return nil
}

// installInterruptHandler makes the first interrupt a graceful stop: the
// producer notices the cleared flag between lines and the pipeline drains
// and finalizes normally. A second interrupt kills the process on the spot.
func installInterruptHandler(running *components.Flag) {
	signals := make(chan os.Signal, 2)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		fmt.Fprintln(os.Stderr, "# interrupt requested, finishing in-flight work")
		running.Clear()
		<-signals
		os.Exit(130)
	}()
}
