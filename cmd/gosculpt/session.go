package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosculpt/internal/logger"
	"github.com/philipparndt/gosculpt/internal/script"
	"github.com/philipparndt/gosculpt/pkg/stl"
	"github.com/philipparndt/gosculpt/pkg/watcher"
)

var sessionFlags struct {
	scriptPath string
	output     string
	ascii      bool
	watch      bool
}

var sessionCmd = &cobra.Command{
	Use:   "session <file>",
	Short: "Replay a recorded drag script against a mesh",
	Long: `Run a YAML drag script: a sequence of anchor/delta steps replayed as
drag sessions. With --watch, the pipeline re-runs whenever the mesh or
the script file changes.`,
	Args: cobra.ExactArgs(1),
	Run:  runSession,
}

func init() {
	sessionCmd.Flags().StringVar(&sessionFlags.scriptPath, "script", "", "drag script file (required)")
	sessionCmd.Flags().StringVarP(&sessionFlags.output, "output", "o", "", "output file (default <file>.deformed.stl)")
	sessionCmd.Flags().BoolVar(&sessionFlags.ascii, "ascii", false, "write ASCII STL instead of binary")
	sessionCmd.Flags().BoolVar(&sessionFlags.watch, "watch", false, "re-run when the mesh or script changes")
	_ = sessionCmd.MarkFlagRequired("script")
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) {
	input := args[0]
	output := sessionFlags.output
	if output == "" {
		output = stl.DeriveOutputName(input)
	}

	run := func() error { return sessionOnce(input, output) }

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if sessionFlags.watch {
		watchAndRerun([]string{input, sessionFlags.scriptPath}, run)
	}
}

// sessionOnce runs the full pipeline: load mesh and script, replay, save.
func sessionOnce(input, output string) error {
	m, err := loadMesh(input)
	if err != nil {
		return err
	}

	s, err := script.Load(sessionFlags.scriptPath)
	if err != nil {
		return err
	}

	base, err := baseDeformer()
	if err != nil {
		return err
	}
	d, err := s.Deformer(base)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := s.Run(m, d); err != nil {
		return err
	}
	logger.Sugar.Infow("script replayed",
		"script", sessionFlags.scriptPath,
		"name", s.Name,
		"steps", len(s.Steps),
		"elapsed", time.Since(start))

	return saveMesh(m, output, sessionFlags.ascii)
}

// watchAndRerun blocks, re-running fn whenever one of the files changes.
// A failed run is logged and does not stop the watch loop.
func watchAndRerun(files []string, fn func() error) {
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, func(err error) {
		logger.Sugar.Warnw("watch error", "error", err)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	err = fw.Watch(files, func(changed string) {
		logger.Sugar.Infow("file changed, re-running", "file", changed)
		if err := fn(); err != nil {
			logger.Sugar.Errorw("pipeline failed", "error", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fw.Start()
	fmt.Printf("Watching %d file(s) for changes. Press Ctrl+C to stop.\n", len(files))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
