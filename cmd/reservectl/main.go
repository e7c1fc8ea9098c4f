// Command reservectl is a terminal client for the rehearsal room scheduler.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"bandroom/internal/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "reservectl",
		Usage: "reserve rehearsal room slots from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Value:   "http://localhost:5000",
				Usage:   "API base URL",
				EnvVars: []string{"BANDROOM_URL"},
			},
			&cli.StringFlag{
				Name:    "admin-password",
				Usage:   "shared admin secret for admin commands",
				EnvVars: []string{"ADMIN_PASSWORD"},
			},
			&cli.StringFlag{
				Name:    "timezone",
				Value:   "Asia/Seoul",
				Usage:   "venue time zone used for \"this week\"",
				EnvVars: []string{"TIMEZONE"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log requests and timings",
			},
		},
		Before: func(c *cli.Context) error {
			level := "warn"
			if c.Bool("verbose") {
				level = "debug"
			}
			_, err := logger.New("dev", level)
			return err
		},
		Commands: []*cli.Command{
			bandsCommand(),
			gridCommand(),
			reserveCommand(),
			cancelCommand(),
			waitOpenCommand(),
			openTimeCommand(),
			hashPasswordCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.L().Debug("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
