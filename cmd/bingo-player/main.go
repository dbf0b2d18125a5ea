package main

import (
	"bingo_backend/internal/client"
	"bingo_backend/internal/model"
	"bingo_backend/internal/service/board"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Server     string           `default:"http://localhost:8080" env:"BINGO_SERVER" help:"Caller server base URL"`
	Interval   time.Duration    `default:"2s" help:"How often to poll drawn numbers"`
	Size       int              `default:"5" help:"Board size (odd)"`
	ColumnSpan int              `default:"15" help:"Numbers per column range"`
	WinLines   int              `default:"3" help:"Completed lines needed for bingo"`
	Debug      bool             `help:"Enable debug logging"`
}

func (c *CLI) Run() error {
	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})

	rules := model.Rules{Size: c.Size, ColumnSpan: c.ColumnSpan, WinLines: c.WinLines}
	if err := rules.Validate(); err != nil {
		return err
	}

	observer := client.NewObserver(rules, board.NewGenerator(rules), func(b model.Board, lines int) {
		fmt.Fprintf(os.Stdout, "\n*** BINGO! %d lines ***\n", lines)
	}, logger)

	printBoard(os.Stdout, observer.Board())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller := client.NewPoller(
		client.NewStatusClient(c.Server, logger),
		observer,
		quartz.NewReal(),
		c.Interval,
		logger,
	)

	logger.Info("watching draws", "server", c.Server, "interval", c.Interval)
	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// printBoard Карточка в консоль, свободная клетка как FREE
func printBoard(w io.Writer, b model.Board) {
	letters := "BINGO"
	var header []string
	for col := range b {
		if col < len(letters) {
			header = append(header, fmt.Sprintf("%4s", string(letters[col])))
		} else {
			header = append(header, fmt.Sprintf("%4d", col+1))
		}
	}
	fmt.Fprintln(w, strings.Join(header, " "))

	for _, row := range b {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell.IsFree() {
				cells[i] = "FREE"
			} else {
				cells[i] = fmt.Sprintf("%4s", strconv.Itoa(int(cell)))
			}
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bingo-player"),
		kong.Description("Play along with a bingo caller: private board, polled draws"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
