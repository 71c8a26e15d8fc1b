package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/history"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/matrix"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/presentation"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/report"
)

const paywallLine = "🔒 Подробная расшифровка доступна после оплаты доступа."

var errAccessRequired = errors.New("detailed interpretation requires access")

type cli struct {
	cfg  cliConfig
	open opener
}

type subjectFlags struct {
	date string
	name string
}

func (f *subjectFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "birth date, YYYY-MM-DD or DD.MM.YYYY")
	cmd.Flags().StringVar(&f.name, "name", "", "name of the person")
}

func (f subjectFlags) parse() (matrix.Result, error) {
	birth, err := matrix.ParseBirthDate(f.date)
	if err != nil {
		return matrix.Result{}, err
	}
	name := strings.TrimSpace(f.name)
	if name == "" {
		return matrix.Result{}, &matrix.ValidationError{Field: "name", Reason: "is required"}
	}
	return matrix.Compute(birth, name), nil
}

func newRootCmd(open opener) *cobra.Command {
	cfg, cfgErr := loadConfig()
	c := &cli{cfg: cfg, open: open}

	root := &cobra.Command{
		Use:   "matrixctl",
		Short: "Compute Matrix of Destiny readings",
		Long: `matrixctl computes the four arcana of a birth date and prints the
interpretation. The detailed interpretation, share text and export
require access, checked against the server's access endpoint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Fail before any command runs when MATRIXCTL_* cannot be parsed.
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return cfgErr
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfg.Server, "server", c.cfg.Server, "base URL of the access-check server")
	pf.DurationVar(&c.cfg.Timeout, "timeout", c.cfg.Timeout, "access check timeout")
	pf.StringVar(&c.cfg.RedisURL, "redis", c.cfg.RedisURL, "keep session and history in Redis")
	pf.StringVar(&c.cfg.StatePath, "state", c.cfg.StatePath, "local state file")
	pf.StringVar(&c.cfg.Email, "email", c.cfg.Email, "email to check access for (default: logged-in email)")
	pf.StringVar(&c.cfg.Overrides, "arcana", c.cfg.Overrides, "YAML file overriding arcana texts")
	pf.BoolVarP(&c.cfg.Verbose, "verbose", "v", c.cfg.Verbose, "log to stderr")

	root.AddCommand(
		c.calcCmd(),
		c.shareCmd(),
		c.exportCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.historyCmd(),
	)
	return root
}

// run opens the app for the duration of one command.
func (c *cli) run(fn func(ctx context.Context, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := c.open(ctx, c.cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(ctx, a, args)
	}
}

func (c *cli) calcCmd() *cobra.Command {
	var (
		subject subjectFlags
		expand  []string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the matrix of a birth date",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, a *app, _ []string) error {
			r, err := subject.parse()
			if err != nil {
				return err
			}
			email, err := a.email(ctx, c.cfg.Email)
			if err != nil {
				return err
			}

			view := presentation.NewView(a.base)
			view.Show(r)
			for _, id := range expand {
				if err := view.Toggle(presentation.SectionID(id)); err != nil {
					return fmt.Errorf("%s: %w", id, err)
				}
			}
			view.Refresh(ctx, a.gate, email)

			if email != "" {
				r.Email = email
				if err := a.history.Append(ctx, email, history.NewRecord(r, a.now())); err != nil {
					return err
				}
			}

			rendered := view.Render()
			if asJSON {
				return writeJSON(a.out, rendered)
			}
			return printSummary(a.out, view, rendered, c.cfg.ShareOrigin)
		}),
	}
	subject.bind(cmd)
	cmd.Flags().StringSliceVar(&expand, "expand", nil, "sections to expand (personal, destiny, social, spiritual, synthesis, portrait, professional)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the rendered view as JSON")
	return cmd
}

func printSummary(w io.Writer, view *presentation.View, rendered presentation.Rendered, origin string) error {
	r, _ := view.Result()
	fmt.Fprintf(w, "%s, %s\n\n", r.Name, r.FormatBirthDate())
	for _, n := range rendered.Numbers {
		fmt.Fprintf(w, "%-10s %2d  %s\n", n.Section, n.Number, n.Title)
	}
	fmt.Fprintln(w)

	if rendered.Access == presentation.AccessGranted {
		set, syn, _ := view.Synthesis()
		fmt.Fprintln(w, report.FormatShareText(r, set, syn, report.ShareOptions{Origin: origin}))
	} else {
		fmt.Fprintln(w, paywallLine)
	}
	if rendered.Notice != "" {
		fmt.Fprintln(w, rendered.Notice)
	}
	return nil
}

// entitled computes the subject and fails unless the viewer has access.
func (c *cli) entitled(ctx context.Context, a *app, subject subjectFlags) (*presentation.View, error) {
	r, err := subject.parse()
	if err != nil {
		return nil, err
	}
	email, err := a.email(ctx, c.cfg.Email)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errNotLoggedIn
	}

	view := presentation.NewView(a.base)
	view.Show(r)
	view.Refresh(ctx, a.gate, email)
	if view.Access() != presentation.AccessGranted {
		if notice := view.Render().Notice; notice != "" {
			return nil, fmt.Errorf("%w: %s", errAccessRequired, notice)
		}
		return nil, errAccessRequired
	}
	return view, nil
}

func (c *cli) shareCmd() *cobra.Command {
	var (
		subject          subjectFlags
		omitProfessional bool
	)
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print the share text of a reading",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, a *app, _ []string) error {
			view, err := c.entitled(ctx, a, subject)
			if err != nil {
				return err
			}
			r, _ := view.Result()
			set, syn, _ := view.Synthesis()
			fmt.Fprintln(a.out, report.FormatShareText(r, set, syn, report.ShareOptions{
				Origin:           c.cfg.ShareOrigin,
				OmitProfessional: omitProfessional,
			}))
			return nil
		}),
	}
	subject.bind(cmd)
	cmd.Flags().StringVar(&c.cfg.ShareOrigin, "origin", c.cfg.ShareOrigin, "site link in the footer")
	cmd.Flags().BoolVar(&omitProfessional, "omit-professional", false, "leave out the advice for specialists")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var (
		subject subjectFlags
		out     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the report document as JSON",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, a *app, _ []string) error {
			view, err := c.entitled(ctx, a, subject)
			if err != nil {
				return err
			}
			r, _ := view.Result()
			set, _, _ := view.Synthesis()
			doc := report.FormatExportDocument(r, set)

			if out == "" || out == "-" {
				return writeJSON(a.out, doc)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := writeJSON(f, doc); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Отчет сохранен: %s\n", out)
			return nil
		}),
	}
	subject.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login EMAIL",
		Short: "Remember an email and check its access",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, a *app, args []string) error {
			email := access.NormalizeEmail(args[0])
			if err := a.session.SetUserEmail(ctx, email); err != nil {
				return err
			}
			ent, notice := a.gate.Resolve(ctx, email)
			if err := a.session.SetSubscriberAuth(ctx, ent.HasAccess); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Вход выполнен: %s\n", email)
			switch {
			case ent.HasAccess:
				fmt.Fprintf(a.out, "Доступ: активен (%s)\n", ent.PlanType)
			case notice != "":
				fmt.Fprintln(a.out, notice)
			default:
				fmt.Fprintln(a.out, "Доступ: нет")
				if ent.Message != "" {
					fmt.Fprintln(a.out, ent.Message)
				}
			}
			return nil
		}),
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the email and its history",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, a *app, _ []string) error {
			if err := a.session.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Сессия завершена")
			return nil
		}),
	}
}

func (c *cli) historyCmd() *cobra.Command {
	var (
		limit    int
		clearAll bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, a *app, _ []string) error {
			email, err := a.email(ctx, c.cfg.Email)
			if err != nil {
				return err
			}
			if email == "" {
				return errNotLoggedIn
			}

			if clearAll {
				if err := a.history.Clear(ctx, email); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "История очищена")
				return nil
			}

			records, err := a.history.Recent(ctx, email, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(a.out, "История пуста")
				return nil
			}
			for _, rec := range records {
				n := rec.Result.Numbers()
				fmt.Fprintf(a.out, "%s  %s  %d-%d-%d-%d  %s\n",
					rec.CreatedAt.Local().Format("2006-01-02 15:04"), rec.BirthDate,
					n[0], n[1], n[2], n[3], rec.Result.Name)
			}
			return nil
		}),
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n records")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete the history")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
