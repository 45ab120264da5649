package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/seqdates/internal/config"
	"github.com/roach88/seqdates/internal/fasta"
	"github.com/roach88/seqdates/internal/filelock"
	"github.com/roach88/seqdates/internal/render"
	"github.com/roach88/seqdates/internal/store"
	"github.com/roach88/seqdates/internal/summary"
	"github.com/roach88/seqdates/internal/table"
)

// StdoutPath is the --output-filepath spelling of standard output.
const StdoutPath = "-"

// Pipeline is one run: read every input, build the record table, then
// write each requested output in turn.
type Pipeline struct {
	Config config.Config // resolved and validated
	Paths  []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Now and NewRunID stamp database exports; tests pin them.
	Now      func() time.Time
	NewRunID func() string
}

// Result is what a run produced.
type Result struct {
	RunID     string
	Table     *table.Table
	Summaries []*summary.Summary
}

// Run executes the pipeline. Input failures return ExitCommandError before
// anything is written; output failures return ExitFailure.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	log := p.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	primaryFormat, err := p.Config.PrimaryFormat()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "unsupported format", err)
	}
	summaryFormat, err := p.Config.SummaryFormat()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "unsupported format", err)
	}

	tbl, err := p.read(log)
	if err != nil {
		return nil, err
	}
	res := &Result{Table: tbl}

	var primary bytes.Buffer
	if err := render.Write(&primary, primaryFormat, tbl); err != nil {
		return nil, WrapExitError(ExitFailure, "failed to render records", err)
	}
	if err := p.writeOutput(p.Config.OutputPath, primary.Bytes()); err != nil {
		return nil, WrapExitError(ExitFailure, "failed to write records", err)
	}
	log.Debug("records written", "path", outputName(p.Config.OutputPath), "format", primaryFormat, "rows", tbl.Len())

	if p.Config.SummarizePrefix != "" || p.Config.WorkbookPath != "" || p.Config.DatabasePath != "" {
		for _, g := range summary.All() {
			res.Summaries = append(res.Summaries, summary.Summarize(tbl.Records, g))
		}
	}

	if p.Config.SummarizePrefix != "" {
		if err := p.writeSummaries(log, res.Summaries, summaryFormat); err != nil {
			return nil, err
		}
	}

	if p.Config.WorkbookPath != "" {
		if err := p.writeWorkbook(res); err != nil {
			return nil, WrapExitError(ExitFailure, "failed to write workbook", err)
		}
		log.Debug("workbook written", "path", p.Config.WorkbookPath)
	}

	if p.Config.DatabasePath != "" {
		res.RunID = p.runID()
		if err := p.export(ctx, res); err != nil {
			return nil, WrapExitError(ExitFailure, "failed to export run", err)
		}
		log.Debug("run exported", "db", p.Config.DatabasePath, "run_id", res.RunID)
	}

	NewReporter(p.Stderr).Totals(tbl)
	return res, nil
}

// read acquires every input, parses it and releases the handles on every
// path out of the function.
func (p *Pipeline) read(log *slog.Logger) (*table.Table, error) {
	srcs, err := fasta.OpenWith(p.Paths, p.Stdin)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open input", err)
	}
	defer func() {
		if closeErr := srcs.Close(); closeErr != nil {
			log.Error("error closing inputs", "error", closeErr)
		}
	}()

	reporter := NewReporter(p.Stderr)
	entries, err := srcs.ReadAll(func(*fasta.Source) { reporter.StdinNotice() })
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to read input", err)
	}
	log.Debug("inputs read", "sources", len(srcs.List()), "records", len(entries))

	return table.Build(entries), nil
}

func (p *Pipeline) writeSummaries(log *slog.Logger, sums []*summary.Summary, f render.Format) error {
	for _, s := range sums {
		var buf bytes.Buffer
		if err := render.Write(&buf, f, s); err != nil {
			return WrapExitError(ExitFailure, "failed to render "+s.Granularity.Name()+" summary", err)
		}
		path := p.Config.SummarizePrefix + "." + s.Granularity.Name()
		if err := filelock.LockAndWrite(path, buf.Bytes()); err != nil {
			return WrapExitError(ExitFailure, "failed to write "+s.Granularity.Name()+" summary", err)
		}
		log.Debug("summary written", "path", path, "format", f, "buckets", s.Len())
	}
	return nil
}

func (p *Pipeline) writeWorkbook(res *Result) error {
	sheets := []render.Sheet{{Name: "Records", Table: res.Table}}
	for _, s := range res.Summaries {
		sheets = append(sheets, render.Sheet{Name: sheetName(s.Granularity), Table: s})
	}

	var buf bytes.Buffer
	if err := render.WriteWorkbook(&buf, sheets...); err != nil {
		return err
	}
	return filelock.LockAndWrite(p.Config.WorkbookPath, buf.Bytes())
}

func (p *Pipeline) export(ctx context.Context, res *Result) (err error) {
	st, err := store.Open(p.Config.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return st.WriteRun(ctx, store.Run{
		ID:        res.RunID,
		CreatedAt: p.now(),
		Table:     res.Table,
		Summaries: res.Summaries,
	})
}

// writeOutput sends data to standard output for "" or "-", otherwise to a
// locked, atomically replaced file.
func (p *Pipeline) writeOutput(path string, data []byte) error {
	if path == "" || path == StdoutPath {
		_, err := p.Stdout.Write(data)
		return err
	}
	return filelock.LockAndWrite(path, data)
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Pipeline) runID() string {
	if p.NewRunID != nil {
		return p.NewRunID()
	}
	return store.NewRunID()
}

func outputName(path string) string {
	if path == "" || path == StdoutPath {
		return "standard output"
	}
	return path
}

// sheetName turns "yearly" into "Yearly".
func sheetName(g summary.Granularity) string {
	return cases.Title(language.English).String(g.Name())
}
