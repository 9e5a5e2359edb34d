package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/qif"
	"github.com/lox/qif/internal/commands"
)

type CLI struct {
	commands.CommonConfig
	commands.DateConfig

	Output      string   `help:"Write CSV to this file instead of stdout" type:"path"`
	Concurrency int      `help:"Number of files to parse concurrently" default:"4"`
	Files       []string `arg:"" help:"QIF files to convert" type:"existingfile"`
}

func (c *CLI) Run() error {
	logger := log.New(os.Stderr)

	// Set log level
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		logger.Fatal("Invalid log level", "error", err)
	}
	logger.SetLevel(level)

	opts, err := c.ReaderOptions(qif.WithLogger(logger))
	if err != nil {
		return err
	}

	// Parse files concurrently but keep the output in argument order
	results := make([][][]string, len(c.Files))
	var g errgroup.Group
	g.SetLimit(c.Concurrency)
	for i, path := range c.Files {
		i, path := i, path
		g.Go(func() error {
			rows, err := convert(path, opts, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("Failed to convert", "error", err)
	}

	out := os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			logger.Fatal("Failed to create output file", "error", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"file", "account_type", "date", "amount", "payee", "category", "memo", "number", "status"}); err != nil {
		return err
	}
	for _, rows := range results {
		for _, row := range rows {
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

// convert parses a single QIF file into CSV rows. The reader closes the
// file once it has been fully scanned.
func convert(path string, opts []qif.Option, logger *log.Logger) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	reader, err := qif.NewReader(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}

	var rows [][]string
	reader.Each(func(tx *qif.Transaction) {
		rows = append(rows, []string{
			path,
			reader.Type(),
			tx.Date.Format("2006-01-02"),
			tx.Amount.String(),
			tx.Payee,
			tx.Category,
			tx.Memo,
			tx.Number,
			tx.Status,
		})
	})
	if err := reader.Err(); err != nil {
		return nil, err
	}

	logger.Info("Parsed file", "file", path, "type", reader.Type(),
		"transactions", len(rows), "format", reader.DateFormat().String())
	return rows, nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("qif2csv"),
		kong.Description("Convert QIF exports to CSV"),
	)
	ctx.FatalIfErrorf(cli.Run())
}
