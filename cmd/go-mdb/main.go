package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	gomdb "github.com/wilhasse/go-mdb"
	"github.com/wilhasse/go-mdb/internal/config"
	"github.com/wilhasse/go-mdb/internal/logger"
	"github.com/wilhasse/go-mdb/obfuscation"
	"github.com/wilhasse/go-mdb/schema"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"YAML config file." type:"path" env:"GOMDB_CONFIG"`
	Format   string `help:"Output format: text, json or summary (overrides config)." short:"f"`
	LogLevel string `help:"Log level (overrides config)." name:"log-level"`
}

type CLI struct {
	Globals

	Info  InfoCmd  `cmd:"" help:"Show the database header and the resolved counter."`
	Pages PagesCmd `cmd:"" help:"List every page with its type and header fields."`
	Page  PageCmd  `cmd:"" help:"Decode a single page."`
	Check CheckCmd `cmd:"" help:"Compare a table definition page with a CREATE TABLE file."`
}

// App carries what commands need once flags and config are resolved.
type App struct {
	Cfg *config.Config
	Log *logrus.Logger
	Out io.Writer
}

func newApp(g Globals, out, logOut io.Writer) (*App, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Format != "" {
		cfg.Output.Format = g.Format
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logger.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return &App{Cfg: cfg, Log: log, Out: out}, nil
}

func (a *App) decode(path string) (*gomdb.Database, error) {
	buf, err := gomdb.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.Log.WithFields(logrus.Fields{"file": path, "bytes": len(buf)}).Info("loaded")
	db, err := gomdb.NewDecoder(gomdb.WithLogger(a.Log)).Decode(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return db, nil
}

type InfoCmd struct {
	File string `arg:"" help:"Database file (.mdb, .accdb, optionally .xz or .gz)." type:"existingfile"`
}

func (c *InfoCmd) Run(app *App) error {
	db, err := app.decode(c.File)
	if err != nil {
		return err
	}
	hdr := db.Header()
	counter, err := obfuscation.ResolveWithKeyLength(hdr.Secret[:], hdr.Counter, app.Cfg.Obfuscation.KeyLength)
	if err != nil {
		return err
	}
	return renderInfo(app.Out, app.Cfg.Output.Format, db, counter)
}

type PagesCmd struct {
	File   string `arg:"" help:"Database file." type:"existingfile"`
	Digest bool   `help:"Show a BLAKE3 digest per page."`
	Max    int    `help:"Show at most this many pages (0 = config value)."`
}

func (c *PagesCmd) Run(app *App) error {
	db, err := app.decode(c.File)
	if err != nil {
		return err
	}
	limit := app.Cfg.Output.MaxPages
	if c.Max > 0 {
		limit = c.Max
	}
	pages := db.Pages
	if limit > 0 && limit < len(pages) {
		pages = pages[:limit]
	}
	return renderPages(app.Out, app.Cfg.Output.Format, pages, c.Digest || app.Cfg.Output.Digest)
}

type PageCmd struct {
	File   string `arg:"" help:"Database file." type:"existingfile"`
	Number uint32 `arg:"" help:"Page number."`
	Digest bool   `help:"Show the page's BLAKE3 digest."`
}

func (c *PageCmd) Run(app *App) error {
	var r io.ReaderAt
	if isCompressed(c.File) {
		buf, err := gomdb.LoadFile(c.File)
		if err != nil {
			return err
		}
		r = bytes.NewReader(buf)
	} else {
		f, err := os.Open(c.File)
		if err != nil {
			return errors.Wrap(err, "open database file")
		}
		defer f.Close()
		r = f
	}

	p, err := gomdb.NewPageReader(r).ReadPage(c.Number)
	if err != nil {
		return err
	}
	return renderPage(app.Out, app.Cfg.Output.Format, p, c.Digest || app.Cfg.Output.Digest)
}

type CheckCmd struct {
	File   string `arg:"" help:"Database file." type:"existingfile"`
	Number int    `arg:"" help:"Table definition page number."`
	SQL    string `help:"File holding the CREATE TABLE statement." required:"" type:"existingfile" name:"sql"`
}

func (c *CheckCmd) Run(app *App) error {
	def, err := schema.ParseTableDefFromSQLFile(c.SQL)
	if err != nil {
		return err
	}
	db, err := app.decode(c.File)
	if err != nil {
		return err
	}
	p, ok := db.Page(c.Number)
	if !ok {
		return errors.Errorf("page %d out of range (database has %d pages)", c.Number, db.Count())
	}
	if p.TableDefinition == nil {
		return errors.Errorf("page %d is %s, not a table definition", c.Number, p.Type)
	}
	mm := schema.Check(def, p.TableDefinition)
	if err := renderCheck(app.Out, app.Cfg.Output.Format, def, p, mm); err != nil {
		return err
	}
	if len(mm) > 0 {
		return errors.Errorf("%d mismatches between %s and page %d", len(mm), def.Name, c.Number)
	}
	return nil
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".xz") || strings.HasSuffix(path, ".gz")
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("go-mdb"),
		kong.Description("Jet (.mdb/.accdb) page inspector"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	app, err := newApp(cli.Globals, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
