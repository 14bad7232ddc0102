package eval

import (
	"bytes"
	"context"
	"os"

	"github.com/ErikJBerg/NL2SQLEval/pkg/compare"
	"github.com/ErikJBerg/NL2SQLEval/pkg/db"
	"github.com/ErikJBerg/NL2SQLEval/pkg/filemgr"
	"github.com/ErikJBerg/NL2SQLEval/pkg/queryset"
	"github.com/ErikJBerg/NL2SQLEval/pkg/report"
	"github.com/ErikJBerg/NL2SQLEval/pkg/sqlcmp"
	"github.com/ErikJBerg/NL2SQLEval/pkg/util"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Run is the main entry function of the evaluation logic.
func Run(ctx context.Context, cfg *Config) error {
	cfg.ensureDefaults()
	if cfg.Log.Filename != "" {
		if err := util.InitFileLogger(cfg.Log.Filename); err != nil {
			return errors.Trace(err)
		}
	}

	database, err := db.Open(&cfg.DB)
	if err != nil {
		return errors.Trace(err)
	}
	defer database.Close()

	expected, err := queryset.Load(cfg.ExpectedFile)
	if err != nil {
		return errors.Trace(err)
	}
	generated, err := queryset.Load(cfg.GeneratedFile)
	if err != nil {
		return errors.Trace(err)
	}
	if len(expected) != len(generated) {
		util.Logger.Warn("query sets have different lengths, extra records are ignored",
			zap.Int("expected", len(expected)),
			zap.Int("generated", len(generated)))
	}
	pairs := queryset.Zip(expected, generated)

	opts := compare.Options{
		IgnoreRowOrder:    cfg.IgnoreRowOrder,
		IgnoreColumnOrder: cfg.IgnoreColumnOrder,
	}
	records := make([]report.Record, 0, len(pairs))
	for _, pair := range pairs {
		select {
		case <-ctx.Done():
			return errors.Trace(ctx.Err())
		default:
		}
		records = append(records, evalPair(ctx, database, pair, cfg.Optimize, opts))
	}

	rep := &report.Report{
		Records: records,
		Stats:   report.Summarize(records, report.DefaultChangeWeights()),
	}

	var buf bytes.Buffer
	if err = report.RenderText(rep, &buf); err != nil {
		return errors.Trace(err)
	}

	mgr := filemgr.NewManager(cfg.WorkDir)
	if err = mgr.WriteRecords(records); err != nil {
		return errors.Trace(err)
	}
	if err = mgr.WriteTextReport(buf.Bytes()); err != nil {
		return errors.Trace(err)
	}
	if cfg.HTMLReport != "" {
		if err = report.RenderHTML(rep, cfg.HTMLReport); err != nil {
			return errors.Trace(err)
		}
	}

	_, err = os.Stdout.Write(buf.Bytes())
	return errors.Trace(err)
}

// evalPair computes the full comparison record for one pair. A failing pair
// still yields a complete record and never stops the batch.
func evalPair(
	ctx context.Context,
	database *db.DB,
	pair queryset.Pair,
	optimize bool,
	opts compare.Options,
) report.Record {
	rec := report.Record{
		Question:     pair.Question,
		ExpectedSQL:  pair.ExpectedSQL,
		GeneratedSQL: pair.GeneratedSQL,
	}

	diff, err := sqlcmp.DiffQueries(pair.ExpectedSQL, pair.GeneratedSQL, optimize)
	if err != nil {
		// comparison is meaningless without a tree, but executing against
		// the database below is still informative
		rec.ParseErr = err.Error()
		util.Logger.Warn("failed to parse query pair",
			zap.String("question", pair.Question), zap.Error(err))
	} else {
		rec.Similarity = diff.Similarity
		rec.DiffString = diff.DiffString
		rec.Changes = diff.Changes
	}
	rec.ClauseScores, rec.ClauseSimilarity = sqlcmp.ClauseSimilarity(
		pair.ExpectedSQL, pair.GeneratedSQL)

	rec.Valid = compare.Validate(ctx, database, pair.GeneratedSQL)
	rec.Outcome, rec.ExpectedResult, rec.GeneratedResult = compare.CompareResults(
		ctx, database, pair.ExpectedSQL, pair.GeneratedSQL, opts)
	return rec
}
