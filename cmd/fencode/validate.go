package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dwheaton/fencode/internal/worker"
)

func validateCommand() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check FEN records read from files or standard input",
		Long: heredoc.Doc(`
			Validate reads FEN records line by line, converts each one to
			the internal board representation and back, and reports every
			line that fails to convert. Blank lines are skipped. With no
			file arguments, records are read from standard input.
		`),

		RunE: func(cmd *cobra.Command, args []string) error {
			pool := worker.NewPool(worker.Convert,
				worker.WithWorkers(jobs),
				worker.WithBufferSize(64),
			)
			pool.Start()

			var group errgroup.Group

			group.Go(func() error {
				defer pool.Close()
				return submitLines(args, pool)
			})

			var checked, failed int
			group.Go(func() error {
				for res := range pool.Results() {
					checked++
					if res.Err != nil {
						failed++
						logrus.Warnf("%s:%d: %v", res.Source, res.Index, res.Err)
						continue
					}
					logrus.Debugf("%s:%d: %s", res.Source, res.Index, res.Canonical)
				}
				return nil
			})

			if err := group.Wait(); err != nil {
				return err
			}

			logrus.Infof("checked %d records, %d invalid", checked, failed)
			if failed > 0 {
				return fmt.Errorf("%d invalid records", failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of conversion workers")
	return cmd
}

// submitLines feeds every input line into the pool, tagged with its
// source name and line number.
func submitLines(paths []string, pool *worker.Pool) error {
	if len(paths) == 0 {
		return submitReader(os.Stdin, "stdin", pool)
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = submitReader(f, path, pool)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func submitReader(r io.Reader, source string, pool *worker.Pool) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		pool.Submit(worker.WorkItem{Line: text, Source: source, Index: line})
	}
	return scanner.Err()
}
