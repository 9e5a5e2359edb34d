package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/qif"
	"github.com/lox/qif/internal/commands"
	"github.com/lox/qif/internal/store"
)

type CLI struct {
	commands.CommonConfig
	commands.DateConfig

	DataDir    string   `help:"Path to data directory" default:"./data"`
	NoProgress bool     `help:"Disable progress bar" default:"false"`
	Files      []string `arg:"" help:"QIF files to import" type:"existingfile"`
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

	// Initialize the transaction store
	st, err := store.New(c.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize store", "error", err)
	}
	defer st.Close()

	ctx := context.Background()
	imported := 0

	for _, path := range c.Files {
		f, err := os.Open(path)
		if err != nil {
			logger.Fatal("Failed to open QIF file", "file", path, "error", err)
		}

		reader, err := qif.NewReader(f, opts...)
		if err != nil {
			f.Close()
			logger.Fatal("Failed to read QIF file", "file", path, "error", err)
		}

		transactions := reader.All()
		if err := reader.Err(); err != nil {
			logger.Warn("File ended before its last record", "file", path, "error", err)
		}

		var progress store.Progress = store.NewNoopProgress()
		if !c.NoProgress {
			progress = store.NewBarProgress(len(transactions))
		}
		for _, tx := range transactions {
			if err := st.Store(ctx, reader.Type(), path, tx); err != nil {
				progress.Close()
				logger.Fatal("Failed to store transaction", "file", path, "error", err)
			}
			progress.Add(1)
		}
		progress.Close()

		logger.Info("Imported file", "file", path, "type", reader.Type(),
			"transactions", len(transactions), "records", reader.Count())
		imported += len(transactions)
	}

	count, err := st.Count(ctx)
	if err != nil {
		return err
	}
	logger.Info("Import complete", "imported", imported, "stored", count)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("qif-import"),
		kong.Description("Import QIF exports into a local transaction database"),
	)
	ctx.FatalIfErrorf(cli.Run())
}
