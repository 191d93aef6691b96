package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/config"
	"github.com/lululau/datepick/internal/logger"
	"github.com/lululau/datepick/internal/picker"
	"github.com/lululau/datepick/internal/render"
	"github.com/lululau/datepick/internal/tui"
)

type rootFlags struct {
	configPath    string
	tooltipsPath  string
	selectionType string
	minDate       string
	maxDate       string
	disabledDates string
	value         string
	startOfWeek   int
	locale        string
	plain         bool
	noColor       bool
	logLevel      string
	logHuman      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "datepick [year] [month]",
		Short: "在终端中选择日期 (single / multiple / range)",
		Long: `  无参数      展示当前月份
  9           展示当年9月份
  1983        展示1983年1月
  2012 12     展示2012年12月`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "picker YAML file (default: user config dir)")
	f.StringVar(&flags.tooltipsPath, "tooltips", "", "JSON tooltip data file")
	f.StringVarP(&flags.selectionType, "type", "t", "", "selection type: single, multiple or range")
	f.StringVar(&flags.minDate, "min-date", "", "earliest selectable date")
	f.StringVar(&flags.maxDate, "max-date", "", "latest selectable date")
	f.StringVar(&flags.disabledDates, "disabled-dates", "", "comma separated dates that cannot be selected")
	f.StringVar(&flags.value, "value", "", "initial selection, comma separated")
	f.IntVar(&flags.startOfWeek, "start-of-week", 0, "first weekday column, 0 (Sunday) to 6")
	f.StringVar(&flags.locale, "locale", "", "language for month and weekday names, e.g. zh-CN")
	f.BoolVarP(&flags.plain, "plain", "n", false, "直接渲染并退出（非交互模式）")
	f.BoolVarP(&flags.noColor, "no-color", "N", false, "禁用所有颜色输出")
	f.StringVar(&flags.logLevel, "log-level", "warn", "diagnostic log level")
	f.BoolVar(&flags.logHuman, "log-human", true, "human readable diagnostics")

	return cmd
}

func run(cmd *cobra.Command, flags *rootFlags, args []string) error {
	page, hasPage, err := parseCursor(args)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:         flags.logLevel,
		HumanReadable: flags.logHuman,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	doc, err := loadDocument(flags)
	if err != nil {
		return err
	}
	overlayFlags(cmd, flags, doc)
	if err := config.Validate(doc); err != nil {
		return err
	}

	opts, err := doc.Options()
	if err != nil {
		return err
	}
	p := picker.New(append(opts, picker.WithLogger(log))...)
	// The picker logs each rejected property; the run continues without it.
	_ = doc.Apply(p)
	if hasPage {
		p.GoTo(page)
	}

	if flags.noColor || !render.ColorSupported() {
		render.SetNoColor(true)
		tui.SetNoColor(true)
	}

	if flags.plain {
		return render.RunPlain(render.PlainOptions{Writer: cmd.OutOrStdout(), Picker: p})
	}

	dates, err := tui.Run(p)
	if err != nil {
		return err
	}
	return printDates(cmd.OutOrStdout(), dates)
}

func loadDocument(flags *rootFlags) (*config.Document, error) {
	var (
		doc *config.Document
		err error
	)
	if flags.configPath != "" {
		doc, err = config.Load(flags.configPath)
	} else {
		doc, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	if flags.tooltipsPath != "" {
		entries, err := config.LoadTooltips(flags.tooltipsPath)
		if err != nil {
			return nil, err
		}
		doc.Tooltips = append(doc.Tooltips, entries...)
	}
	return doc, nil
}

// overlayFlags copies explicitly set flags over the document.
func overlayFlags(cmd *cobra.Command, flags *rootFlags, doc *config.Document) {
	changed := cmd.Flags().Changed
	if changed("type") {
		doc.Type = flags.selectionType
	}
	if changed("min-date") {
		doc.MinDate = flags.minDate
	}
	if changed("max-date") {
		doc.MaxDate = flags.maxDate
	}
	if changed("disabled-dates") {
		doc.DisabledDates = config.DateList{flags.disabledDates}
	}
	if changed("value") {
		doc.Value = config.DateList{flags.value}
	}
	if changed("start-of-week") {
		sow := flags.startOfWeek
		doc.StartOfWeek = &sow
	}
	if changed("locale") {
		doc.Locale = flags.locale
	}
}

func printDates(w io.Writer, dates []time.Time) error {
	for _, d := range dates {
		if _, err := fmt.Fprintln(w, d.Format("2006-01-02")); err != nil {
			return err
		}
	}
	return nil
}

// parseCursor reads the optional [year] [month] arguments. A single value
// between 1 and 12 is a month of the current year; anything else is a year.
func parseCursor(args []string) (calendar.Cursor, bool, error) {
	now := time.Now()
	c := calendar.Cursor{Year: now.Year(), Month: now.Month()}

	switch len(args) {
	case 0:
		return c, false, nil
	case 1:
		val, err := parseNumber(args[0], "month/year")
		if err != nil {
			return c, false, err
		}
		if val >= 1 && val <= 12 {
			c.Month = time.Month(val)
		} else {
			c = calendar.Cursor{Year: val, Month: time.January}
		}
	default:
		y, err := parseNumber(args[0], "year")
		if err != nil {
			return c, false, err
		}
		m, err := parseNumber(args[1], "month")
		if err != nil {
			return c, false, err
		}
		if m < 1 || m > 12 {
			return c, false, fmt.Errorf("月份需要在 1-12 之间 (收到 %d)", m)
		}
		c = calendar.Cursor{Year: y, Month: time.Month(m)}
	}
	return c, true, nil
}

func parseNumber(value string, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("无法将 %q 解析为 %s", value, field)
	}
	return n, nil
}
