// Command rorskin validates, formats and applies vehicle skin definitions.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dop251/goja"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/rorskin"
	"github.com/woozymasta/rorskin/arrayview"
	"github.com/woozymasta/rorskin/errorbox"
	"github.com/woozymasta/rorskin/scriptbind"
)

// options are the parsed command line flags.
type options struct {
	skinFile     string
	manifest     string
	skinName     string
	resourceRoot string
	script       string
	validate     bool
	format       bool
	debug        bool
}

func main() {
	opt, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := newLogger(opt.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	rorskin.SetLogger(log)
	scriptbind.SetLogger(log)

	rep := errorbox.NewReporter(errorbox.NewConsole(os.Stderr), log)
	if err := run(opt, os.Stdout, rep, log); err != nil {
		rep.Store("rorskin", err.Error())
	}
	if rep.HasPending() {
		rep.ShowPending()
		os.Exit(1)
	}
}

// parseFlags parses command line arguments.
func parseFlags(args []string) (options, error) {
	var opt options
	fs := pflag.NewFlagSet("rorskin", pflag.ContinueOnError)
	fs.StringVarP(&opt.manifest, "manifest", "m", "", "YAML manifest of meshes, entities and materials to apply the skin to")
	fs.StringVarP(&opt.skinName, "skin-name", "s", "", "skin to use when the file defines several (default first)")
	fs.StringVar(&opt.resourceRoot, "resource-root", "", "directory used to check texture and preview files exist")
	fs.StringVar(&opt.script, "script", "", "JavaScript run before applying; sees `skin` and `subMaterials`")
	fs.BoolVar(&opt.validate, "validate", false, "validate the skin file and report issues")
	fs.BoolVar(&opt.format, "format", false, "print the skin file in canonical layout")
	fs.BoolVarP(&opt.debug, "debug", "d", false, "print debug logs")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: rorskin [flags] <file.skin>\n%s", fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opt, fmt.Errorf("expected exactly one skin file, got %d", fs.NArg())
	}

	if opt.format && opt.validate {
		return opt, errors.New("--format and --validate cannot be combined")
	}

	opt.skinFile = fs.Arg(0)
	return opt, nil
}

// newLogger builds a console logger on stderr.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

// run executes the requested actions, writing results to out.
func run(opt options, out io.Writer, rep *errorbox.Reporter, log *zap.Logger) error {
	skins, err := rorskin.DecodeFile(opt.skinFile, nil)
	if err != nil {
		return err
	}
	if len(skins) == 0 {
		return fmt.Errorf("%s: no skins defined", opt.skinFile)
	}

	if opt.format {
		return rorskin.Encode(out, skins, nil)
	}

	if opt.validate {
		failed := false
		for _, s := range skins {
			issues := rorskin.Validate(s, &rorskin.ValidateOptions{ResourceRoot: opt.resourceRoot})
			for _, i := range issues {
				fmt.Fprintf(out, "%s: %s: %s\n", opt.skinFile, s.Name, i)
			}
			failed = failed || rorskin.HasErrors(issues)
		}
		if failed {
			rep.Store("Validation failed", opt.skinFile+" has errors")
		}
		return nil
	}

	skin := skins[0]
	if opt.skinName != "" {
		if skin, err = rorskin.FindSkin(skins, opt.skinName); err != nil {
			return err
		}
	}

	if opt.manifest == "" {
		rep.Show(skin.Name, describe(skin), errorbox.SeverityInfo)
		return nil
	}

	sc, err := loadScene(opt.manifest)
	if err != nil {
		return err
	}

	materials := skin.MaterialTable()
	if opt.script != "" {
		if err := runScript(opt.script, materials, sc); err != nil {
			return err
		}
	}

	bound, units := sc.apply(materials, skin.TextureTable())
	log.Info("skin applied",
		zap.String("skin", skin.Name),
		zap.Int("bindings", bound),
		zap.Int("texture_units", units))

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return err
	}

	return enc.Close()
}

// runScript runs a user script with the material table and sub-mesh materials bound.
func runScript(path string, materials *rorskin.ReplacementTable, sc *scene) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	vm := goja.New()
	if err := scriptbind.BindTable(vm, "skin", materials); err != nil {
		return err
	}
	if err := scriptbind.BindView(vm, "subMaterials", arrayview.New(sc.subMaterials()), nil); err != nil {
		return err
	}

	_, err = scriptbind.Run(vm, string(src))
	return err
}

// describe summarizes a skin for display.
func describe(s *rorskin.Skin) string {
	var b strings.Builder
	if s.Description != "" {
		b.WriteString(s.Description)
		b.WriteString("\n")
	}
	if s.AuthorName != "" {
		fmt.Fprintf(&b, "author: %s\n", s.AuthorName)
	}
	fmt.Fprintf(&b, "%d material and %d texture replacements", len(s.Materials), len(s.Textures))

	return b.String()
}
