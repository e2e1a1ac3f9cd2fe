package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dancebook/internal/booking"
	"dancebook/internal/config"
	"dancebook/internal/signature"
	"dancebook/internal/storage/sqlite"
	"dancebook/internal/tui"
	"dancebook/internal/waiver"
)

type rootOptions struct {
	dbPath  string
	logFile string
}

type app struct {
	cfg   config.Config
	store *sqlite.Store
	svc   *booking.Service
}

// open loads the configuration, applies flag overrides and opens the store.
func (o *rootOptions) open(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBPath, err)
	}
	svc := booking.NewService(store, booking.MockProcessor{Delay: cfg.PaymentDelay})
	return &app{cfg: cfg, store: store, svc: svc}, nil
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "dancebook",
		Short:         "Book the weekly dance class from the terminal.",
		Long:          "Sign in, read the class details, sign the liability waiver with the mouse and pay for the next session.",
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context(), o)
		},
	}
	cmd.PersistentFlags().StringVar(&o.dbPath, "db", "", "sqlite database path (overrides DANCEBOOK_DB_PATH)")
	cmd.PersistentFlags().StringVar(&o.logFile, "log", "", "write logs to this file (overrides DANCEBOOK_LOG_FILE)")

	cmd.AddCommand(newBookingsCmd(o), newExportWaiverCmd(o), newSignatureCmd(o))
	return cmd
}

func runUI(ctx context.Context, o *rootOptions) error {
	a, err := o.open(ctx)
	if err != nil {
		return err
	}
	defer a.store.Close()

	if a.cfg.LogFile != "" {
		f, err := tea.LogToFile(a.cfg.LogFile, "dancebook")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := tui.New(ctx, a.svc, tui.Options{Pad: a.cfg.SignatureOptions()})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func newBookingsCmd(o *rootOptions) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "bookings --email EMAIL",
		Short: "List the bookings of an account.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := o.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.store.Close()

			u, list, err := a.svc.UserBookings(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("bookings for %s: %w", email, err)
			}
			ctx := cmd.Context()
			active, err := a.svc.ActiveCount(ctx, u.ID)
			if err != nil {
				return err
			}
			first, err := a.svc.IsFirstClass(ctx, u.ID)
			if err != nil {
				return err
			}
			next := "not booked"
			switch b, err := a.svc.ActiveBooking(ctx, booking.Session{UserID: u.ID}); {
			case err == nil:
				next = "booked (" + b.ID + ")"
			case !errors.Is(err, booking.ErrNotFound):
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", u.Name, u.Email)
			fmt.Fprintf(out, "active bookings: %d  first class free: %t\n", active, first)
			fmt.Fprintf(out, "%s: %s\n\n", booking.FormatClassDate(a.svc.NextDate()), next)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCLASS DATE\tSTATUS\tPAYMENT\tFIRST")
			for _, b := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", b.ID, b.ClassDate, b.Status, b.PaymentStatus, b.IsFirstClass)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newExportWaiverCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export-waiver BOOKING_ID OUT.pdf",
		Short: "Write the signed waiver of a booking as a PDF.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := o.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.store.Close()

			b, u, err := a.svc.BookingOwner(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("booking %s: %w", args[0], err)
			}
			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer func() {
				if cerr := f.Close(); err == nil {
					err = cerr
				}
			}()
			doc := waiver.Document{Class: a.svc.Class(), Booking: b, Participant: u.Name, Email: u.Email}
			if err := waiver.WritePDF(f, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "waiver for %s written to %s\n", b.ID, args[1])
			return nil
		},
	}
}

func newSignatureCmd(o *rootOptions) *cobra.Command {
	var png string
	cmd := &cobra.Command{
		Use:   "signature BOOKING_ID",
		Short: "Print the stored waiver signature as SVG markup.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.store.Close()

			b, err := a.svc.Booking(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("booking %s: %w", args[0], err)
			}
			svg, err := signature.Decode(b.WaiverSignature)
			if err != nil {
				return fmt.Errorf("booking %s: %w", b.ID, err)
			}
			if png == "" {
				fmt.Fprintln(cmd.OutOrStdout(), svg)
				return nil
			}
			data, err := waiver.RenderSignaturePNG(svg, 1)
			if err != nil {
				return err
			}
			return os.WriteFile(png, data, 0o644)
		},
	}
	cmd.Flags().StringVar(&png, "png", "", "write a PNG rendering to this path instead")
	return cmd
}
