package main

import (
	"context"
	"time"

	"github.com/lovi-cli/lovi/log"
	"github.com/lovi-cli/lovi/reader"
)

// runPlain writes lines to stdout instead of taking over the terminal.
// Without --follow it prints the last windowful and returns. With --follow
// it keeps printing lines as the file grows until the context is canceled
// or the user presses 'q'.
func runPlain(ctx context.Context, rdr *reader.Reader, filter *LineFilter, opts *options) error {
	printLines := func(lines []string) {
		for _, ln := range lines {
			if filter != nil {
				shown := false
				if ln, shown = filter.Apply(ln); !shown {
					continue
				}
			}
			log.Println(ln)
		}
	}

	if _, err := rdr.Tail(); err != nil {
		return err
	}
	printLines(rdr.Window())

	if !opts.follow {
		return nil
	}

	ttyReader, cleanupTty, err := ensureTty()
	if err != nil {
		return err
	}
	defer cleanupTty()

	done := make(chan struct{})
	go func() {
		for {
			r, err := ttyReader.ReadRune()
			if err != nil {
				return
			}
			if r == 'q' || r == 3 {
				close(done)
				return
			}
		}
	}()

	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			return nil
		case <-ticker.C:
			lines, err := rdr.MoveDown(rdr.WindowSize())
			if err != nil {
				log.Println("Failed to read new lines:", err)
				continue
			}
			printLines(lines)
		}
	}
}
