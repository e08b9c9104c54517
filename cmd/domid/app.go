package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/reoring/domid"
	"github.com/reoring/domid/catalog"
	"github.com/reoring/domid/i18n"
	"github.com/reoring/domid/internal/ctxlog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// options carries the persistent flags shared by all subcommands.
type options struct {
	catalogPath string
	lang        string
	output      string
	logLevel    string
	literal     bool

	out    io.Writer
	errOut io.Writer
}

func rootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Build, check and parse structured element identifiers",
		Long: `domid builds, validates and parses identifiers such as "tab-43" or
"a-b-3-c-1343": components joined by '-', where the first character is a
letter and numeric components never come first.

Named templates can be loaded from a YAML, JSON or HCL catalog with --catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.catalogPath, "catalog", "c", "", "Template catalog file (.yaml, .yml, .json, .hcl)")
	pf.StringVar(&opts.lang, "lang", "en", "Message language (en, ja)")
	pf.StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.BoolVar(&opts.literal, "literal", false, "Treat every argument as a string component")

	cmd.AddCommand(
		checkCmd(opts),
		buildCmd(opts),
		parseCmd(opts),
		templateCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(opts.out, "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

func (o *options) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	switch strings.ToLower(o.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", o.logLevel)
	}
	switch o.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}
	i18n.SetLanguage(o.lang)

	logger := slog.New(slog.NewTextHandler(o.errOut, &slog.HandlerOptions{Level: level}))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, logger))
	return nil
}

func (o *options) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if o.catalogPath == "" {
		return nil, errors.New("no catalog given; use --catalog")
	}
	c, err := catalog.LoadFile(ctx, o.catalogPath)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Catalog ready.", "path", o.catalogPath, "templates", c.Len())
	return c, nil
}

// values converts command-line arguments into component values. Canonical
// decimal arguments become numbers unless --literal is set.
func (o *options) values(args []string) []any {
	vs := make([]any, len(args))
	for i, a := range args {
		vs[i] = a
		if o.literal || (len(a) > 1 && a[0] == '0') {
			continue
		}
		if n, err := strconv.ParseUint(a, 10, 32); err == nil {
			vs[i] = n
		}
	}
	return vs
}

// emit writes v in the selected format. text renders through the given function.
func (o *options) emit(v any, text func(w io.Writer)) error {
	switch o.output {
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(o.out, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(o.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	text(o.out)
	return nil
}

// ---- check ----

type issueView struct {
	Code    string `json:"code" yaml:"code"`
	Index   int    `json:"index" yaml:"index"`
	Message string `json:"message" yaml:"message"`
}

type checkResult struct {
	ID     string      `json:"id" yaml:"id"`
	Valid  bool        `json:"valid" yaml:"valid"`
	Issues []issueView `json:"issues,omitempty" yaml:"issues,omitempty"`
}

func issueViews(iss domid.Issues) []issueView {
	views := make([]issueView, 0, len(iss))
	for _, it := range iss {
		views = append(views, issueView{Code: it.Code, Index: it.Index, Message: it.Message})
	}
	return views
}

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check ID...",
		Short: "Validate identifiers and report every violation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]checkResult, 0, len(args))
			invalid := 0
			for _, id := range args {
				iss := domid.Diagnose(id)
				if len(iss) > 0 {
					invalid++
				}
				results = append(results, checkResult{ID: id, Valid: len(iss) == 0, Issues: issueViews(iss)})
			}
			err := opts.emit(results, func(w io.Writer) {
				for _, r := range results {
					if r.Valid {
						fmt.Fprintf(w, "%s: ok\n", r.ID)
						continue
					}
					for _, it := range r.Issues {
						fmt.Fprintf(w, "%s: %s\n", r.ID, it.Message)
					}
				}
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d identifiers invalid", invalid, len(args))
			}
			return nil
		},
	}
}

// ---- build / parse ----

type idResult struct {
	ID string `json:"id" yaml:"id"`
}

func buildCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build COMPONENT...",
		Short: "Join components into an identifier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domid.Build(opts.values(args)...)
			if err != nil {
				return err
			}
			return opts.emit(idResult{ID: id}, func(w io.Writer) { fmt.Fprintln(w, id) })
		},
	}
}

type componentView struct {
	Value   string `json:"value" yaml:"value"`
	Numeric bool   `json:"numeric" yaml:"numeric"`
}

func parseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse ID",
		Short: "Split an identifier into typed components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := domid.Parse(args[0])
			if err != nil {
				return err
			}
			views := make([]componentView, len(cs))
			for i, c := range cs {
				views[i] = componentView{Value: c.String(), Numeric: c.IsNumeric()}
			}
			return opts.emit(views, func(w io.Writer) {
				for i, v := range views {
					kind := "string"
					if v.Numeric {
						kind = "number"
					}
					fmt.Fprintf(w, "%d\t%s\t%s\n", i, kind, v.Value)
				}
			})
		},
	}
}

// ---- template ----

type templateView struct {
	Name     string `json:"name" yaml:"name"`
	Template string `json:"template" yaml:"template"`
}

type valuesResult struct {
	Template string   `json:"template" yaml:"template"`
	ID       string   `json:"id" yaml:"id"`
	Values   []string `json:"values" yaml:"values"`
}

func templateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Work with named templates from a catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List catalog templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			views := make([]templateView, 0, c.Len())
			for _, name := range c.Names() {
				t, _ := c.Template(name)
				views = append(views, templateView{Name: name, Template: t.String()})
			}
			return opts.emit(views, func(w io.Writer) {
				for _, v := range views {
					fmt.Fprintf(w, "%s\t%s\n", v.Name, v.Template)
				}
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "build NAME [PARAM...]",
		Short: "Fill a template's wildcards with parameters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			id, err := c.Build(args[0], opts.values(args[1:])...)
			if err != nil {
				return err
			}
			return opts.emit(idResult{ID: id}, func(w io.Writer) { fmt.Fprintln(w, id) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "extract NAME ID",
		Short: "Print the wildcard values of an identifier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			values, err := c.Extract(args[0], args[1])
			if err != nil {
				return err
			}
			return opts.emitValues(valuesResult{Template: args[0], ID: args[1], Values: values})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve ID",
		Short: "Find the first template an identifier matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			name, values, ok := c.Resolve(args[0])
			if !ok {
				return fmt.Errorf("%s matches no template", args[0])
			}
			return opts.emitValues(valuesResult{Template: name, ID: args[0], Values: values})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "match NAME ID",
		Short: "Report whether an identifier matches a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			ok, err := c.Matches(args[0], args[1])
			if err != nil {
				return err
			}
			res := struct {
				Template string `json:"template" yaml:"template"`
				ID       string `json:"id" yaml:"id"`
				Matches  bool   `json:"matches" yaml:"matches"`
			}{args[0], args[1], ok}
			if err := opts.emit(res, func(w io.Writer) { fmt.Fprintln(w, ok) }); err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s does not match %s", args[1], args[0])
			}
			return nil
		},
	})
	return cmd
}

func (o *options) emitValues(r valuesResult) error {
	return o.emit(r, func(w io.Writer) {
		fmt.Fprintf(w, "%s\t%s\n", r.Template, strings.Join(r.Values, "\t"))
	})
}
