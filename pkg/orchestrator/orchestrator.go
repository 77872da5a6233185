// Package orchestrator wires the config parser, the per-target emitter, and
// the tag splicer into a single entry point that turns a global config plus a
// template into the finished artifact, committing it atomically.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-confgen/pkg/artifact"
	"github.com/goliatone/go-confgen/pkg/config"
	"github.com/goliatone/go-confgen/pkg/splice"
	"github.com/goliatone/go-confgen/pkg/target"
)

// Tag names of the two template regions every conforming template carries.
const (
	TagHeader  = "AUTOGENERATE HEADER"
	TagInclude = "GLOBAL CONFIG INCLUDE"
)

// ParseFunc turns the global config text into its ordered entries. The
// default binds config.Parse with the configured reserved names.
type ParseFunc func(text string) ([]config.Entry, error)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithParser injects a custom config parser.
func WithParser(parse ParseFunc) Option {
	return func(o *Orchestrator) {
		o.parse = parse
	}
}

// WithRegistry injects a target profile registry.
func WithRegistry(registry *target.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithProfilesFS supplies an fs.FS holding YAML profile documents that extend
// the built-in target table.
func WithProfilesFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.profilesFS = fsys
	}
}

// WithReservedNames supplies names the global config may not define. The
// default is an empty set; callers wanting the historical environment check
// pass config.ReservedFromEnviron().
func WithReservedNames(names map[string]string) Option {
	return func(o *Orchestrator) {
		o.reserved = names
	}
}

// WithStrictEval makes unresolved eval references a parse failure instead of
// empty text.
func WithStrictEval() Option {
	return func(o *Orchestrator) {
		o.strictEval = true
	}
}

// WithClock overrides the timestamp source used in the provenance banner.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithHostname overrides the host name recorded in the provenance banner.
func WithHostname(host string) Option {
	return func(o *Orchestrator) {
		o.hostname = host
	}
}

// WithCommandLine records the invoking command line in the provenance banner.
func WithCommandLine(command string) Option {
	return func(o *Orchestrator) {
		o.command = command
	}
}

// WithGenerator records the generating tool's name and version in the
// provenance banner.
func WithGenerator(generator string) Option {
	return func(o *Orchestrator) {
		o.generator = generator
	}
}

// WithBannerTemplate overrides the provenance banner template. The template
// receives notice, command, timestamp, host, and generator values.
func WithBannerTemplate(source string) Option {
	return func(o *Orchestrator) {
		o.bannerSource = source
	}
}

// WithScanWindow bounds how far past a START marker the matching END marker
// may appear. Zero scans the whole template.
func WithScanWindow(lines int) Option {
	return func(o *Orchestrator) {
		o.scanWindow = lines
	}
}

// Orchestrator coordinates the full pipeline from global config and template
// to committed artifact. It applies sensible defaults (built-in target table,
// standard banner) while remaining open to dependency injection.
type Orchestrator struct {
	parse        ParseFunc
	registry     *target.Registry
	profilesFS   fs.FS
	reserved     map[string]string
	strictEval   bool
	now          func() time.Time
	hostname     string
	command      string
	generator    string
	bannerSource string
	banner       *bannerRenderer
	scanWindow   int

	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs of one generation run.
type Request struct {
	// Target selects the output profile: a profile id, a bare extension, or
	// a path whose final dot suffix is the extension.
	Target string

	// Config locates the global config text.
	Config artifact.Source

	// Template locates the template document carrying the two tag regions.
	Template artifact.Source
}

// Generate executes parse → emit → splice and returns the finished document.
// Nothing is written to disk; see Run for the committing variant.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	profile, err := o.resolveProfile(req.Target)
	if err != nil {
		return nil, err
	}

	configText, err := artifact.Load(ctx, req.Config)
	if err != nil {
		return nil, err
	}
	templateText, err := artifact.Load(ctx, req.Template)
	if err != nil {
		return nil, err
	}

	entries, err := o.parse(configText)
	if err != nil {
		return nil, err
	}

	headerBlock, err := o.headerBlock(profile)
	if err != nil {
		return nil, err
	}
	bodyBlock := profile.EmitBlock(entries)

	doc := templateText
	var spliceOpts []splice.Option
	if o.scanWindow > 0 {
		spliceOpts = append(spliceOpts, splice.WithScanWindow(o.scanWindow))
	}
	if doc, err = splice.Splice(doc, TagHeader, headerBlock, spliceOpts...); err != nil {
		return nil, err
	}
	if doc, err = splice.Splice(doc, TagInclude, bodyBlock, spliceOpts...); err != nil {
		return nil, err
	}

	return []byte(doc), nil
}

// Run generates the artifact and commits it next to the template, deriving
// the output path by stripping the "template." infix. The destination is only
// touched after both splices succeed, via an atomic replace.
func (o *Orchestrator) Run(ctx context.Context, req Request) (string, error) {
	if req.Template == nil {
		return "", errors.New("orchestrator: template source is required")
	}
	if req.Template.Kind() != artifact.SourceKindFile {
		return "", fmt.Errorf("orchestrator: cannot derive an output path from a %s template source", req.Template.Kind())
	}

	doc, err := o.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	outPath, err := artifact.OutputPath(req.Template.Location())
	if err != nil {
		return "", err
	}
	if err := artifact.Commit(outPath, doc); err != nil {
		return "", err
	}
	return outPath, nil
}

// resolveProfile accepts a profile id, a bare extension, or a path whose
// final dot suffix is the extension.
func (o *Orchestrator) resolveProfile(raw string) (target.Profile, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return target.Profile{}, errors.New("orchestrator: target is required")
	}

	if profile, err := o.registry.Get(id); err == nil {
		return profile, nil
	}

	ext := id
	if idx := strings.LastIndex(ext, "."); idx >= 0 {
		ext = ext[idx+1:]
	}
	if profile, err := o.registry.GetByExtension(ext); err == nil {
		return profile, nil
	}

	return target.Profile{}, target.UnknownTargetError{ID: raw}
}

// headerBlock renders the provenance banner and prefixes every line with the
// profile's comment leader.
func (o *Orchestrator) headerBlock(profile target.Profile) (string, error) {
	lines, err := o.banner.render(map[string]any{
		"notice":    bannerNotice,
		"command":   o.command,
		"timestamp": o.now().Format(time.RFC3339),
		"host":      o.hostname,
		"generator": o.generator,
	})
	if err != nil {
		return "", err
	}

	commented := make([]string, 0, len(lines))
	for _, line := range lines {
		commented = append(commented, profile.Comment(line))
	}
	return strings.Join(commented, "\n"), nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = target.BuiltinRegistry()
	}
	if o.profilesFS != nil {
		profiles, err := target.LoadFS(o.profilesFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load profiles: %w", err)
		}
		for _, profile := range profiles {
			if err := o.registry.Register(profile); err != nil {
				o.initialiseErr = fmt.Errorf("orchestrator: register profile: %w", err)
				break
			}
		}
	}

	if o.parse == nil {
		reserved := o.reserved
		strict := o.strictEval
		o.parse = func(text string) ([]config.Entry, error) {
			opts := []config.Option{config.WithReservedNames(reserved)}
			if strict {
				opts = append(opts, config.WithStrictEval())
			}
			return config.Parse(text, opts...)
		}
	}

	if o.now == nil {
		o.now = time.Now
	}
	if o.hostname == "" {
		if host, err := os.Hostname(); err == nil {
			o.hostname = host
		}
	}
	if o.command == "" {
		o.command = strings.Join(os.Args, " ")
	}

	if o.bannerSource == "" {
		o.bannerSource = defaultBannerTemplate
	}
	if o.banner == nil {
		banner, err := newBannerRenderer(o.bannerSource)
		if err != nil {
			o.initialiseErr = err
		} else {
			o.banner = banner
		}
	}

	o.defaultsApplied = true
}
