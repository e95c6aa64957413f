package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/k0kubun/pp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/kotaroooo0/koma"
	"github.com/kotaroooo0/koma/config"
	"github.com/kotaroooo0/koma/dictionary"
	"github.com/kotaroooo0/koma/internal/logger"
	"github.com/kotaroooo0/koma/internal/metrics"
	"github.com/kotaroooo0/koma/morph"
	"github.com/kotaroooo0/koma/morphology"
	"github.com/kotaroooo0/koma/tagging"
)

const usage = `usage: koma [flags] [text ...]

modes:
  analyze  어절ごとの分析候補を表示する
  space    띄어쓰기を復元する
  tokens   索引語を表示する
  index    1行を1文書としてMySQLに索引付けする
  search   MySQLの索引から検索する

flags:
`

func main() {
	configPath := flag.String("config", "", "path to config file")
	mode := flag.String("mode", "analyze", "analyze, space, tokens, index or search")
	debug := flag.Bool("debug", false, "pretty-print analysis results")
	logic := flag.String("logic", "and", "and, or or phrase (search mode)")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(cfg, *debug)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.close()

	if err := app.run(ctx, *mode, *logic, input(flag.Args()), os.Stdout); err != nil {
		slog.Error("failed to run", "mode", *mode, "error", err)
		os.Exit(1)
	}
}

// input は引数があれば引数を1行として、なければ標準入力を読む
func input(args []string) io.Reader {
	if len(args) > 0 {
		return strings.NewReader(strings.Join(args, " "))
	}
	return os.Stdin
}

type app struct {
	cfg      *config.Config
	debug    bool
	dic      *dictionary.Dictionary
	korean   *morphology.Korean
	analyzer koma.Analyzer
	metrics  *metrics.Metrics
	shutdown func(context.Context) error
	logger   *slog.Logger
}

func newApp(cfg *config.Config, debug bool) (*app, error) {
	a := &app{
		cfg:    cfg,
		debug:  debug,
		logger: logger.WithComponent("cli"),
	}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		a.metrics = metrics.New(reg)
		a.shutdown = metrics.StartServer(cfg.Metrics.Addr, reg)
	}

	dic, err := loadDictionary(cfg.Dictionary)
	if err != nil {
		return nil, err
	}
	a.dic = dic

	tagger, err := loadTagger(cfg.Tagger)
	if err != nil {
		return nil, err
	}

	a.korean = morphology.NewKorean(dic, tagger,
		morphology.ExactMatch(cfg.Analysis.ExactMatch),
		morphology.Bigrammable(cfg.Analysis.Bigrammable),
		morphology.HasOrigin(cfg.Analysis.HasOrigin),
		morphology.HasCNoun(cfg.Analysis.HasCNoun),
		morphology.WithCompoundCache(cfg.Analysis.CompoundCacheSize),
		morphology.WithMetrics(a.metrics),
		morphology.WithLogger(logger.WithComponent("morphology")),
	)
	a.analyzer = koma.NewKoreanAnalyzer(a.korean, dic, cfg.Analysis.MaxTokenLength)
	a.logger.Debug("initialized", "dictionary_entries", dic.Len())
	return a, nil
}

func loadDictionary(cfg config.DictionaryConfig) (*dictionary.Dictionary, error) {
	if cfg.Dir == "" {
		return dictionary.Default()
	}
	return dictionary.Load(os.DirFS(cfg.Dir), cfg.Files)
}

func loadTagger(cfg config.TaggerConfig) (*tagging.Tagger, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.File == "" {
		return tagging.Default()
	}
	f, err := os.Open(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tagging.ErrLoad, err)
	}
	defer f.Close()
	return tagging.Load(f)
}

func (a *app) close() {
	if a.shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdown(ctx); err != nil {
		a.logger.Warn("failed to stop metrics server", "error", err)
	}
}

func (a *app) run(ctx context.Context, mode, logic string, r io.Reader, w io.Writer) error {
	switch mode {
	case "analyze":
		return eachLine(ctx, r, func(line string) error { return a.analyze(line, w) })
	case "space":
		return eachLine(ctx, r, func(line string) error { return a.space(line, w) })
	case "tokens":
		return eachLine(ctx, r, func(line string) error { return a.tokens(line, w) })
	case "index":
		return a.index(ctx, r)
	case "search":
		return a.search(ctx, logic, r, w)
	}
	return fmt.Errorf("unknown mode %q", mode)
}

func eachLine(ctx context.Context, r io.Reader, f func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := f(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (a *app) analyze(line string, w io.Writer) error {
	for _, eojeol := range strings.Fields(line) {
		outputs := a.korean.Analyzer().Analyze(eojeol)
		if a.debug {
			pp.Fprintln(w, outputs)
			continue
		}
		candidates := make([]string, len(outputs))
		for i, o := range outputs {
			candidates[i] = o.String()
		}
		fmt.Fprintf(w, "%s\t%s\n", eojeol, strings.Join(candidates, " | "))
	}
	return nil
}

func (a *app) space(line string, w io.Writer) error {
	var spaced []string
	for _, chunk := range strings.Fields(line) {
		phrases := a.korean.Analyzer().Reconstruct(chunk)
		if a.debug {
			pp.Fprintln(w, phrases)
		}
		if len(phrases) == 0 {
			spaced = append(spaced, chunk)
			continue
		}
		spaced = append(spaced, morph.SpacedText(phrases))
	}
	_, err := fmt.Fprintln(w, strings.Join(spaced, " "))
	return err
}

func (a *app) tokens(line string, w io.Writer) error {
	ts := a.analyzer.Analyze(line)
	if a.debug {
		pp.Fprintln(w, ts.Tokens)
		return nil
	}
	for _, t := range ts.Tokens {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", t.Term, t.Type, t.Start, t.End, t.PositionIncrement)
	}
	return nil
}

func (a *app) storage() (*koma.StorageRdbImpl, error) {
	s := a.cfg.Storage
	db, err := koma.NewDBClient(koma.NewDBConfig(s.User, s.Password, s.Addr, s.Port, s.DB))
	if err != nil {
		return nil, err
	}
	if err := koma.CreateTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return koma.NewStorageRdbImpl(db), nil
}

func (a *app) index(ctx context.Context, r io.Reader) error {
	storage, err := a.storage()
	if err != nil {
		return err
	}
	defer storage.DB.Close()

	indexer := koma.NewIndexer(storage, a.analyzer, a.cfg.Index.FlushThreshold, a.metrics)
	count := 0
	err = eachLine(ctx, r, func(line string) error {
		if err := indexer.AddDocument(koma.NewDocument(line)); err != nil {
			return err
		}
		count++
		return nil
	})
	// 中断されても読み込んだ分は書き出す
	if flushErr := indexer.Flush(); flushErr != nil {
		err = errors.Join(err, flushErr)
	}
	a.logger.Info("indexed documents", "count", count)
	return err
}

func (a *app) search(ctx context.Context, logic string, r io.Reader, w io.Writer) error {
	storage, err := a.storage()
	if err != nil {
		return err
	}
	defer storage.DB.Close()

	return eachLine(ctx, r, func(line string) error {
		var q koma.Query
		switch logic {
		case "and":
			q = koma.NewMatchQuery(line, koma.AND, a.analyzer, koma.NewTfIdfSorter(storage))
		case "or":
			q = koma.NewMatchQuery(line, koma.OR, a.analyzer, koma.NewTfIdfSorter(storage))
		case "phrase":
			q = koma.NewPhraseQuery(line, a.analyzer)
		default:
			return fmt.Errorf("unknown logic %q", logic)
		}
		docs, err := q.Searcher(storage).Search()
		if err != nil {
			return err
		}
		if a.debug {
			pp.Fprintln(w, docs)
			return nil
		}
		for _, d := range docs {
			fmt.Fprintf(w, "%d\t%s\n", d.ID, d.Body)
		}
		return nil
	})
}
