package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"

	"bandroom/internal/client"
	"bandroom/internal/domain"
	"bandroom/internal/pkg/slots"
)

func api(c *cli.Context) *client.API {
	a := client.NewAPI(c.String("server"))
	if pw := c.String("admin-password"); pw != "" {
		a.WithAdminPassword(pw)
	}
	return a
}

func venueNow(c *cli.Context) time.Time {
	loc, err := time.LoadLocation(c.String("timezone"))
	if err != nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// weekOf reads --week or falls back to the current venue week. The result is
// a UTC midnight so it lines up with dates parsed from the API.
func weekOf(c *cli.Context) (time.Time, error) {
	if v := c.String("week"); v != "" {
		return slots.ParseDate(v)
	}
	n := venueNow(c)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC), nil
}

func findBand(c *cli.Context, id int64) (*domain.Band, error) {
	bands, err := api(c).Bands(c.Context)
	if err != nil {
		return nil, err
	}
	for i := range bands {
		if bands[i].ID == id {
			return &bands[i], nil
		}
	}
	return nil, fmt.Errorf("band %d not found", id)
}

var bandFlag = &cli.Int64Flag{Name: "band", Aliases: []string{"b"}, Usage: "acting band id", Required: true}

func bandsCommand() *cli.Command {
	return &cli.Command{
		Name:  "bands",
		Usage: "list bands, newest first",
		Action: func(c *cli.Context) error {
			bands, err := api(c).Bands(c.Context)
			if err != nil {
				return err
			}
			for _, b := range bands {
				fmt.Printf("%4d  %-24s %s\n", b.ID, b.Name, b.Color)
			}
			return nil
		},
	}
}

func gridCommand() *cli.Command {
	return &cli.Command{
		Name:  "grid",
		Usage: "show a week of slots",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "band", Aliases: []string{"b"}, Usage: "highlight this band's reservations"},
			&cli.StringFlag{Name: "week", Usage: "any date inside the week (YYYY-MM-DD)"},
		},
		Action: func(c *cli.Context) error {
			week, err := weekOf(c)
			if err != nil {
				return err
			}
			board := client.NewBoard(api(c), week)
			if id := c.Int64("band"); id > 0 {
				band, err := findBand(c, id)
				if err != nil {
					return err
				}
				board.SetBand(band)
			}
			if err := board.Refresh(c.Context); err != nil {
				return err
			}
			render(board.Grid())
			return nil
		},
	}
}

func render(g client.Grid) {
	var sb strings.Builder
	sb.WriteString("       ")
	for _, d := range g.Dates {
		sb.WriteString(fmt.Sprintf("%-12s", d.Format("01/02 Mon")))
	}
	sb.WriteString("\n")

	for i, s := range g.Slots {
		sb.WriteString(fmt.Sprintf("%-7s", s.Label()))
		for _, cell := range g.Cells[i] {
			sb.WriteString(fmt.Sprintf("%-12s", cellText(cell)))
		}
		sb.WriteString("\n")
	}
	fmt.Print(sb.String())
}

func cellText(c client.Cell) string {
	switch c.State {
	case client.CellReserved:
		name := c.BandName
		if len(name) > 9 {
			name = name[:9]
		}
		if c.IsMine {
			return "*" + name
		}
		return name
	case client.CellSelected:
		return "+"
	default:
		return "."
	}
}

func reserveCommand() *cli.Command {
	return &cli.Command{
		Name:      "reserve",
		Usage:     "reserve one or more slots",
		ArgsUsage: "YYYY-MM-DD_HH:MM...",
		Flags: []cli.Flag{
			bandFlag,
			&cli.BoolFlag{Name: "wait", Usage: "wait for the open time before submitting"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("at least one slot is required, e.g. 2024-01-07_10:00")
			}
			band, err := findBand(c, c.Int64("band"))
			if err != nil {
				return err
			}

			a := api(c)
			st, err := a.GateStatus(c.Context)
			if err != nil {
				return err
			}
			gate := client.NewCountdown(st.OpenAt)
			if c.Bool("wait") {
				if err := gate.Wait(c.Context, printRemaining); err != nil {
					return err
				}
				fmt.Println()
			}

			groups, err := client.GroupByWeek(c.Args().Slice())
			if err != nil {
				return err
			}

			for i, g := range groups {
				board := client.NewBoard(a, g.WeekStart)
				board.SetBand(band)
				board.SetGate(gate)
				if err := board.Refresh(c.Context); err != nil {
					return err
				}
				for _, k := range g.Keys {
					date, slot, _ := slots.ParseKey(k)
					res, err := board.Click(c.Context, date, slot, func(client.Cell) bool { return false })
					if err != nil {
						return fmt.Errorf("%s: %w", k, err)
					}
					if res == client.ClickKept {
						fmt.Printf("already yours %s\n", k)
					}
				}
				if board.Pending().Len() == 0 {
					continue
				}

				res, err := board.Submit(c.Context)
				if err != nil {
					return err
				}
				for _, r := range res.Created {
					fmt.Printf("reserved #%d %s %s\n", r.ID, r.Date, r.StartTime)
				}
				if res.Err != nil {
					pending := board.Pending().Keys()
					for _, later := range groups[i+1:] {
						pending = append(pending, later.Keys...)
					}
					return fmt.Errorf("%s: %w (not reserved: %s)", res.Failed, res.Err, strings.Join(pending, " "))
				}
			}
			return nil
		},
	}
}

func cancelCommand() *cli.Command {
	return &cli.Command{
		Name:  "cancel",
		Usage: "delete one of your band's reservations",
		Flags: []cli.Flag{
			bandFlag,
			&cli.Int64Flag{Name: "id", Usage: "reservation id", Required: true},
		},
		Action: func(c *cli.Context) error {
			if err := api(c).DeleteReservation(c.Context, c.Int64("id"), c.Int64("band")); err != nil {
				return err
			}
			fmt.Println("reservation deleted")
			return nil
		},
	}
}

func printRemaining(left time.Duration) {
	fmt.Printf("\ropens in %-12s", left.Round(time.Second))
}

func waitOpenCommand() *cli.Command {
	return &cli.Command{
		Name:  "wait-open",
		Usage: "count down until reservations open",
		Action: func(c *cli.Context) error {
			st, err := api(c).GateStatus(c.Context)
			if err != nil {
				return err
			}
			if st.IsOpen {
				fmt.Println("reservations are open")
				return nil
			}
			if err := client.NewCountdown(st.OpenAt).Wait(c.Context, printRemaining); err != nil {
				return err
			}
			fmt.Println("\nreservations are open")
			return nil
		},
	}
}

func openTimeCommand() *cli.Command {
	return &cli.Command{
		Name:  "open-time",
		Usage: "admin: manage the reservation open time",
		Subcommands: []*cli.Command{
			{
				Name:      "set",
				ArgsUsage: "RFC3339-instant",
				Action: func(c *cli.Context) error {
					at, err := time.Parse(time.RFC3339, c.Args().First())
					if err != nil {
						return fmt.Errorf("open time must be RFC 3339: %w", err)
					}
					return api(c).SetOpenTime(c.Context, at)
				},
			},
			{
				Name: "clear",
				Action: func(c *cli.Context) error {
					return api(c).ClearOpenTime(c.Context)
				},
			},
		},
	}
}

func hashPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash-password",
		Usage:     "print a bcrypt hash for ADMIN_PASSWORD_HASH",
		ArgsUsage: "password",
		Action: func(c *cli.Context) error {
			pw := c.Args().First()
			if pw == "" {
				return errors.New("password is required")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(hash))
			return nil
		},
	}
}
