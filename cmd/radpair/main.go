package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vitalvas/radpair/internal/config"
	"github.com/vitalvas/radpair/pkg/dictionaries"
	"github.com/vitalvas/radpair/pkg/dictionary"
	"github.com/vitalvas/radpair/pkg/log"
	"github.com/vitalvas/radpair/pkg/pair"
	"github.com/vitalvas/radpair/pkg/store"
	"github.com/vitalvas/radpair/pkg/token"
)

var errUsage = errors.New("usage")

type app struct {
	cfg    *config.Config
	logger *log.DefaultLogger
	parser *pair.Parser
	stdin  io.Reader
	stdout io.Writer

	storeName string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("radpair", flag.ContinueOnError)
	fs.SetOutput(stderr)

	storeName := fs.String("store", "", "Save the parsed or merged pair lists under this name")
	loadName := fs.String("load", "", "Print the stored pair list with this name")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: radpair [flags] <command> [args]\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  parse FILE...             print every pair group of the files (\"-\" reads stdin)\n")
		fmt.Fprintf(stderr, "  merge [-op OP] DEST SRC   merge the first group of SRC into the first group of DEST\n")
		fmt.Fprintf(stderr, "  names                     list stored pair lists\n")
		fmt.Fprintf(stderr, "\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  RADPAIR_DICT_DIR, RADPAIR_DICT_URL, RADPAIR_DICT_STRICT, RADPAIR_LOG_LEVEL,\n")
		fmt.Fprintf(stderr, "  RADPAIR_MAX_DEPTH, RADPAIR_MAX_LINE, RADPAIR_REDIS_ADDR, RADPAIR_REDIS_PASS,\n")
		fmt.Fprintf(stderr, "  RADPAIR_REDIS_DB\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  echo 'User-Name := \"bob\", Session-Timeout := 3600' | radpair parse -\n")
		fmt.Fprintf(stderr, "  radpair -store reply merge -op += reply.txt extra.txt\n")
		fmt.Fprintf(stderr, "  radpair -load reply\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *loadName == "" && fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := log.NewLoggerWithLevel(cfg.LogLevel)
	logger.SetOutput(stderr)

	parser, err := newParser(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load dictionaries: %v\n", err)
		return 1
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		parser:    parser,
		stdin:     stdin,
		stdout:    stdout,
		storeName: *storeName,
	}

	switch {
	case *loadName != "":
		err = a.load(ctx, *loadName)
	case fs.Arg(0) == "parse":
		err = a.parse(ctx, fs.Args()[1:])
	case fs.Arg(0) == "merge":
		err = a.merge(ctx, fs.Args()[1:], stderr)
	case fs.Arg(0) == "names":
		err = a.names(ctx)
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	if errors.Is(err, errUsage) {
		fs.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newParser(ctx context.Context, cfg *config.Config, logger log.Logger) (*pair.Parser, error) {
	dict, err := dictionaries.NewDefault()
	if err != nil {
		return nil, err
	}

	internal, err := dictionaries.NewInternal()
	if err != nil {
		return nil, err
	}

	var sources []dictionary.Source
	if cfg.DictDir != "" {
		sources = append(sources, &dictionary.FileSource{Dir: cfg.DictDir})
	}
	if cfg.DictURL != "" {
		sources = append(sources, &dictionary.HTTPSource{URL: cfg.DictURL})
	}

	for _, source := range sources {
		extra, err := source.Load(ctx)
		source.Close()
		if err != nil {
			return nil, err
		}
		if err := lint(extra, cfg.DictStrict, logger); err != nil {
			return nil, err
		}

		target := dict
		if extra.IsInternal() {
			target = internal
		}
		if err := target.Merge(extra); err != nil {
			return nil, err
		}
		logger.Debugf("merged dictionary %s into %s", extra.Name(), target.Name())
	}

	return pair.NewParser(dict,
		pair.WithInternal(internal),
		pair.WithMaxDepth(cfg.MaxDepth),
		pair.WithMaxLineLength(cfg.MaxLine),
		pair.WithLogger(logger),
	), nil
}

// lint reports the validation issues of a loaded dictionary and rejects it
// when it is not valid.
func lint(dict *dictionary.Dictionary, strict bool, logger log.Logger) error {
	opts := dictionary.DefaultValidationOptions()
	opts.StrictMode = strict

	result := dictionary.NewValidator(opts).Validate(dict)
	for _, issue := range result.Issues {
		switch issue.Level {
		case dictionary.ValidationLevelError:
			logger.Errorf("dictionary %s: %s", dict.Name(), issue)
		case dictionary.ValidationLevelWarning:
			logger.Warnf("dictionary %s: %s", dict.Name(), issue)
		default:
			logger.Debugf("dictionary %s: %s", dict.Name(), issue)
		}
	}

	if !result.IsValid {
		return fmt.Errorf("dictionary %s failed validation: %s", dict.Name(), result)
	}
	return nil
}

func (a *app) open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(a.stdin), nil
	}
	return os.Open(path)
}

// readGroups returns every non-empty pair group of path.
func (a *app) readGroups(path string) ([]*pair.List, error) {
	f, err := a.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := pair.NewReader(f, a.parser)

	var groups []*pair.List
	for {
		list := &pair.List{}
		done, err := r.ReadList(list)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if list.Len() > 0 {
			groups = append(groups, list)
		}
		if done {
			return groups, nil
		}
	}
}

func (a *app) firstGroup(path string) (*pair.List, error) {
	groups, err := a.readGroups(path)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return &pair.List{}, nil
	}
	return groups[0], nil
}

func (a *app) parse(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return errUsage
	}

	var all []*pair.List
	for _, path := range paths {
		groups, err := a.readGroups(path)
		if err != nil {
			return err
		}
		all = append(all, groups...)
	}

	if err := a.print(all...); err != nil {
		return err
	}

	return a.save(ctx, all...)
}

func (a *app) merge(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opText := fs.String("op", "+=", "Operator deciding where added pairs go (+= appends, ^= prepends)")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 2 {
		return errUsage
	}

	op, ok := token.ParseOperator(*opText)
	if !ok {
		return fmt.Errorf("invalid operator %q", *opText)
	}

	dest, err := a.firstGroup(fs.Arg(0))
	if err != nil {
		return err
	}
	src, err := a.firstGroup(fs.Arg(1))
	if err != nil {
		return err
	}

	pair.Move(dest, src, op)
	if src.Len() > 0 {
		a.logger.Debugf("%d pairs were not moved", src.Len())
	}

	if err := a.print(dest); err != nil {
		return err
	}

	return a.save(ctx, dest)
}

func (a *app) load(ctx context.Context, name string) error {
	lists, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	list, err := lists.Load(ctx, name)
	if err != nil {
		return err
	}

	return a.print(list)
}

func (a *app) names(ctx context.Context) error {
	lists, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	names, err := lists.Names(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(a.stdout, name)
	}
	return nil
}

func (a *app) print(groups ...*pair.List) error {
	for i, list := range groups {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		if err := pair.Fprint(a.stdout, list); err != nil {
			return err
		}
	}
	return nil
}

// save stores groups under the -store name. Several groups are saved as
// NAME-1, NAME-2 and so on.
func (a *app) save(ctx context.Context, groups ...*pair.List) error {
	if a.storeName == "" || len(groups) == 0 {
		return nil
	}

	lists, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	for i, list := range groups {
		name := a.storeName
		if len(groups) > 1 {
			name = fmt.Sprintf("%s-%d", a.storeName, i+1)
		}
		if _, err := lists.Save(ctx, name, list); err != nil {
			return err
		}
		a.logger.Infof("saved %d pairs as %s", list.Len(), name)
	}
	return nil
}

func (a *app) openStore(ctx context.Context) (*store.ListStore, func(), error) {
	client, err := store.NewClient(ctx, store.Options{
		Addr:               a.cfg.RedisAddr,
		Password:           a.cfg.RedisPass,
		DB:                 a.cfg.RedisDB,
		Timeout:            a.cfg.RedisTimeout,
		BreakerFailures:    a.cfg.BreakerFailures,
		BreakerMaxRequests: a.cfg.BreakerMaxRequests,
		BreakerInterval:    a.cfg.BreakerInterval,
		BreakerTimeout:     a.cfg.BreakerTimeout,
		Logger:             a.logger,
	})
	if err != nil {
		return nil, nil, err
	}

	return store.NewListStore(client, a.parser), func() { client.Close() }, nil
}
