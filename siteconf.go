package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// cli holds the command line. Every flag can also come from the file given
// with --config or from a TUMBLELOG_* environment variable.
type cli struct {
	Config kong.ConfigFlag `short:"C" help:"Read option defaults from a YAML or JSON file." placeholder:"FILE"`

	TemplateFilename string `short:"t" required:"" type:"path" placeholder:"TEMPLATE" env:"TUMBLELOG_TEMPLATE_FILENAME" help:"Filename of template."`
	OutputDir        string `short:"o" required:"" type:"path" placeholder:"HTDOCS" env:"TUMBLELOG_OUTPUT_DIR" help:"Directory to store HTML files in."`
	Author           string `short:"a" required:"" env:"TUMBLELOG_AUTHOR" help:"Author of the blog."`
	Name             string `short:"n" required:"" placeholder:"BLOGNAME" env:"TUMBLELOG_NAME" help:"Name of the blog."`
	BlogURL          string `name:"blog-url" short:"b" required:"" placeholder:"URL" env:"TUMBLELOG_BLOG_URL" help:"URL of the blog."`

	Days        int    `short:"d" default:"14" help:"Number of days to show on the index and in the feed."`
	CSS         string `name:"css" short:"c" default:"styles.css" placeholder:"URL" help:"URL of the stylesheet to use."`
	DateFormat  string `default:"%d %b %Y" placeholder:"FORMAT" help:"How to format the date."`
	LabelFormat string `default:"week %V, %Y" placeholder:"FORMAT" help:"How to format the week label."`
	Renderer    string `enum:"commonmark,blackfriday" default:"commonmark" help:"Markdown renderer for entries (${enum})."`

	StaticDir string `type:"path" placeholder:"DIR" help:"Copy the contents of this directory into the output directory."`
	Atom      bool   `help:"Also write an Atom feed."`
	Watch     bool   `help:"Keep running and rebuild the site when the entries or template change."`
	Serve     string `placeholder:"ADDR" help:"Serve the output directory on this address, e.g. localhost:9999."`

	Quiet   bool             `short:"q" help:"Don't show progress."`
	Verbose bool             `help:"Show debug output."`
	Version kong.VersionFlag `short:"v" help:"Show version and exit."`

	Filename string `arg:"" type:"path" help:"File that contains the blog entries."`
}

func (c *cli) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", c.Days)
	}
	return nil
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("tumblelog"),
		kong.Description("Create a static tumblelog from a single file of dated entries."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Configuration(yamlConfig),
	}
}

// yamlConfig resolves flags from a YAML document. JSON works as well since
// it is valid YAML. Keys are flag names, with either dashes or underscores.
// Relative paths are taken relative to the configuration file.
func yamlConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	baseDir := ""
	if f, ok := r.(interface{ Name() string }); ok {
		baseDir = filepath.Dir(f.Name())
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		v, ok := values[flag.Name]
		if !ok {
			v, ok = values[strings.ReplaceAll(flag.Name, "-", "_")]
		}
		if !ok || v == nil {
			return nil, nil
		}

		s := fmt.Sprint(v)
		if flag.Tag.Type == "path" && baseDir != "" {
			s = normalizePath(s, baseDir)
		}
		return s, nil
	}
	return f, nil
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		absPath := filepath.Join(baseDir, path)
		slog.Debug("Normalizing path", logPath(path), slog.String("abs", absPath))
		return absPath
	}
	return path
}

// SiteConf is the resolved configuration of one run. It is not modified
// after siteConf returns it.
type SiteConf struct {
	Filename string
	Template string
	OutDir   string

	Author, Name string
	BlogURL      string
	FeedPath     string
	FeedURL      string

	Days        int
	CSS         string
	DateFormat  string
	LabelFormat string
	Renderer    string

	StaticFilesDir string
	Atom           bool

	baseURL *url.URL
}

const jsonFeedPath = "feed.json"

func (c *cli) siteConf() (*SiteConf, error) {
	tmpl, err := os.ReadFile(c.TemplateFilename)
	if err != nil {
		return nil, fmt.Errorf("reading template %v: %w", c.TemplateFilename, err)
	}

	base, err := url.Parse(c.BlogURL)
	if err != nil {
		return nil, fmt.Errorf("invalid blog URL %q: %w", c.BlogURL, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("blog URL %q must be absolute", c.BlogURL)
	}

	conf := &SiteConf{
		Filename:       c.Filename,
		Template:       string(tmpl),
		OutDir:         c.OutputDir,
		Author:         c.Author,
		Name:           c.Name,
		BlogURL:        c.BlogURL,
		FeedPath:       jsonFeedPath,
		Days:           c.Days,
		CSS:            c.CSS,
		DateFormat:     c.DateFormat,
		LabelFormat:    c.LabelFormat,
		Renderer:       c.Renderer,
		StaticFilesDir: c.StaticDir,
		Atom:           c.Atom,
		baseURL:        base,
	}
	conf.FeedURL = conf.absURL(conf.FeedPath)

	return conf, nil
}

// absURL resolves a path relative to the blog URL.
func (c *SiteConf) absURL(relPath string) string {
	return c.baseURL.ResolveReference(&url.URL{Path: relPath}).String()
}
