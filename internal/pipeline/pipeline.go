// Package pipeline sequences the conversion run: decode, segment, extract and
// assemble every eligible input file, then group once and write one archive
// per organization.
package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dsn-tools/dsnsplit/internal/archive"
	"github.com/dsn-tools/dsnsplit/internal/config"
	"github.com/dsn-tools/dsnsplit/internal/models"
	"github.com/dsn-tools/dsnsplit/internal/parser"
)

// Runner executes one conversion run. Execution is strictly sequential: one
// input file is fully processed before the next begins, and archives are only
// written after every file has been read. The accumulating declaration slice
// is the only state crossing file boundaries.
type Runner struct {
	cfg   *config.Config
	log   *zap.Logger
	codec *parser.Codec
}

// NewRunner validates the configured format and builds a Runner.
func NewRunner(cfg *config.Config, log *zap.Logger) (*Runner, error) {
	if log == nil {
		log = zap.NewNop()
	}
	codec, err := parser.NewCodec(cfg.Format.Encoding)
	if err != nil {
		return nil, NewArgumentError("invalid encoding in configuration", err)
	}
	return &Runner{cfg: cfg, log: log, codec: codec}, nil
}

// Run converts every eligible file in the input directory and bundles the
// results into per-organization archives in the output directory.
//
// Files whose extension is not exactly the configured one (case-sensitive)
// are skipped silently: counted in the report but neither logged as errors
// nor failing the run. Any I/O failure aborts the remaining work; archives
// already written are left in place.
func (r *Runner) Run() (*models.RunReport, error) {
	report := &models.RunReport{
		RunID:   uuid.New().String(),
		Started: time.Now(),
	}

	inputDir, outputDir, err := r.resolveDirs()
	if err != nil {
		report.Elapsed = time.Since(report.Started)
		return report, err
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		report.Elapsed = time.Since(report.Started)
		return report, NewInputError("reading input directory "+inputDir, err)
	}

	markers := parser.Markers{
		PayPeriod:     r.cfg.Format.PayPeriodMarker,
		Establishment: r.cfg.Format.EstablishmentMarker,
		Activity:      r.cfg.Format.ActivityMarker,
	}
	separator := r.cfg.Format.RecordSeparator

	acc := models.NewParsedFile()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != r.cfg.Input.Extension {
			report.FilesSkipped++
			r.log.Debug("skipping file", zap.String("file", name))
			continue
		}

		file := models.FileInfo{Path: filepath.Join(inputDir, name), Name: name}
		if info, err := entry.Info(); err == nil {
			file.Size = info.Size()
		}

		if err := r.processFile(file, separator, markers, acc); err != nil {
			report.Elapsed = time.Since(report.Started)
			return report, err
		}
		report.FilesProcessed++
	}

	groups, order := parser.Group(acc.Declarations)
	r.log.Info("grouped declarations",
		zap.Int("declarations", len(acc.Declarations)),
		zap.Int("organizations", len(order)),
		zap.Int("periods", len(acc.Periods)))

	writer, err := archive.NewZipWriter(outputDir, r.cfg.Output.ArchiveSuffix, r.codec)
	if err != nil {
		report.Elapsed = time.Since(report.Started)
		return report, NewOutputError("preparing output directory "+outputDir, err)
	}

	for _, key := range order {
		path, err := writer.Write(key, groups[key])
		if err != nil {
			report.Elapsed = time.Since(report.Started)
			return report, NewOutputError("writing archive for organization "+key, err)
		}
		report.Archives++
		r.log.Info("wrote archive",
			zap.String("organization", key),
			zap.Int("entries", len(groups[key])),
			zap.String("path", path))
	}

	report.Declarations = len(acc.Declarations)
	report.Organizations = len(order)
	report.Elapsed = time.Since(report.Started)
	return report, nil
}

// processFile runs decode, segment, extract and assemble for one input file,
// appending the resulting declarations to acc.
func (r *Runner) processFile(file models.FileInfo, separator string, markers parser.Markers, acc *models.ParsedFile) error {
	raw, err := os.ReadFile(file.Path)
	if err != nil {
		return NewInputError("reading file "+file.Name, err)
	}

	text := r.codec.Decode(raw)
	header, records := parser.Split(text, separator)
	r.log.Info("segmented file",
		zap.String("file", file.Name),
		zap.Int64("bytes", file.Size),
		zap.Int("records", len(records)))

	for _, record := range records {
		fields := parser.ExtractFields(record, markers)
		d := parser.Assemble(header, separator, record, fields)
		d.SourceFile = file.Name
		acc.Add(d)
	}

	return nil
}

// resolveDirs normalizes and checks the configured directories. A missing or
// empty input path is an argument error; the output directory only has to be
// creatable, which the archive writer handles.
func (r *Runner) resolveDirs() (inputDir, outputDir string, err error) {
	if r.cfg.Input.Directory == "" {
		return "", "", NewArgumentError("input directory not set", nil)
	}
	if r.cfg.Output.Directory == "" {
		return "", "", NewArgumentError("output directory not set", nil)
	}

	inputDir, err = filepath.Abs(r.cfg.Input.Directory)
	if err != nil {
		return "", "", NewArgumentError("resolving input directory", err)
	}
	outputDir, err = filepath.Abs(r.cfg.Output.Directory)
	if err != nil {
		return "", "", NewArgumentError("resolving output directory", err)
	}

	info, err := os.Stat(inputDir)
	if err != nil {
		return "", "", NewArgumentError("input directory "+inputDir, err)
	}
	if !info.IsDir() {
		return "", "", NewArgumentError("input path is not a directory: "+inputDir, nil)
	}

	return inputDir, outputDir, nil
}
