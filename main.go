package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lovi-cli/lovi/log"
	"github.com/lovi-cli/lovi/reader"
)

type options struct {
	follow    bool
	plain     bool
	lines     int
	chunkSize int
	filter    string
	interval  time.Duration
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lovi [file]",
		Short: "A scrolling, tailing viewer for large log files",
		Long: "lovi keeps a bounded window of lines from a large, possibly growing,\n" +
			"log file in memory and lets you scroll it in both directions or follow\n" +
			"it as it grows. Reads from stdin when no file is given.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "-"
			if len(args) == 1 {
				filename = args[0]
			}
			return run(filename, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.follow, "follow", "f", false, "keep the window pinned to the end of the file as it grows")
	flags.BoolVar(&opts.plain, "plain", false, "print lines to stdout instead of running the full-screen viewer")
	flags.IntVarP(&opts.lines, "lines", "n", 500, "maximum number of lines kept in memory")
	flags.IntVar(&opts.chunkSize, "chunk-size", reader.DefaultChunkSize, "bytes per read call")
	flags.StringVar(&opts.filter, "filter", "", "jq expression applied to each JSONL line before display")
	flags.DurationVar(&opts.interval, "interval", time.Second, "how often to poll the file for changes")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err.Error())
	}
}

func run(filename string, opts *options) error {
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	cleanupOsSignals := setupOsSignals(ctx, cancelCtx)
	defer cleanupOsSignals()

	path, cleanupInput, err := prepareInput(filename)
	if err != nil {
		return errors.New("Failed to prepare input: " + err.Error())
	}
	defer cleanupInput()

	rdr, err := reader.New(reader.Config{
		Path:       path,
		WindowSize: opts.lines,
		ChunkSize:  opts.chunkSize,
	})
	if err != nil {
		return err
	}

	var filter *LineFilter
	if opts.filter != "" {
		filter, err = NewLineFilter(opts.filter)
		if err != nil {
			return errors.New("Failed to compile filter: " + err.Error())
		}
	}

	if opts.plain {
		return runPlain(ctx, rdr, filter, opts)
	}

	app := NewApplication(rdr, filter, opts.follow, opts.interval)
	if err := app.Run(ctx, cancelCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func setupOsSignals(ctx context.Context, cancelCtx context.CancelFunc) (cleanup func()) {
	// Catch ctrl+c and close the context instead of exiting immediately, so
	// terminal state gets restored on the way out.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	cleanup = func() {
		signal.Stop(signalChan)
		cancelCtx()
	}

	go func() {
		select {
		case <-signalChan:
			cancelCtx()
		case <-ctx.Done():
		}
	}()

	return cleanup
}

// prepareInput resolves the input to a path on disk the reader can reopen on
// every operation. Non-seekable input (stdin, pipes) is spooled to a
// temporary file that keeps growing as the input produces data, which also
// makes it followable like any regular log file.
func prepareInput(filename string) (path string, cleanup func(), err error) {
	cleanup = func() {}

	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return "", nil, errors.New("Failed to open file for reading: " + err.Error())
		}

		_, seekErr := f.Seek(0, io.SeekCurrent)
		if seekErr == nil {
			if err := f.Close(); err != nil {
				return "", nil, err
			}
			return filename, cleanup, nil
		}

		// Special files like named pipes need spooling too.
		log.Println("Input is not seekable, piping through a temporary file")
		return spoolToTempFile(f)
	}

	log.Println("Reading from stdin, piping through a temporary file")
	return spoolToTempFile(os.Stdin)
}

func spoolToTempFile(input *os.File) (path string, cleanup func(), err error) {
	tempWriter, err := os.CreateTemp("", "lovi.tmp")
	if err != nil {
		return "", nil, errors.New("Failed to create temporary file: " + err.Error())
	}

	tempFname := tempWriter.Name()

	go func() {
		_, copyErr := io.Copy(tempWriter, input)
		if copyErr != nil && !strings.HasSuffix(copyErr.Error(), "file already closed") {
			log.Println("Failed to copy input to temporary file:", copyErr)
		}

		if closeErr := tempWriter.Close(); closeErr != nil {
			if !strings.HasSuffix(closeErr.Error(), "file already closed") {
				log.Println("Failed to close temporary file, it might not get deleted properly:", closeErr)
			}
		}
	}()

	cleanup = func() {
		// Closing the input also unblocks the copy goroutine if it is
		// still waiting for data.
		if err := input.Close(); err != nil {
			if !strings.HasSuffix(err.Error(), "file already closed") {
				log.Println("Failed to close the spooled input:", err)
			}
		}

		if err := tempWriter.Close(); err != nil {
			if !strings.HasSuffix(err.Error(), "file already closed") {
				log.Println("Failed to close the writer end of the temporary file:", err)
			}
		}

		if err := os.Remove(tempFname); err != nil {
			if !os.IsNotExist(err) {
				log.Println("Failed to remove temporary file:", err)
			}
		}
	}

	return tempFname, cleanup, nil
}
