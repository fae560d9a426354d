package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	forge "github.com/forgeql/graphforge"
	"github.com/forgeql/graphforge/introspection"
	"github.com/forgeql/graphforge/source/yamldecl"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "export":
		exportCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `graphforge CLI

Usage:
  graphforge check [-watch] [-v] path ...
  graphforge export [-o out.json] path ...

check compiles YAML schema documents and reports validation errors.
export compiles them and writes the introspection JSON.

Paths may be .yaml/.yml files or directories. Documents in one run share a
registry, so later documents can import types from earlier ones.`)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	watch := fs.Bool("watch", false, "recompile whenever an input file changes")
	verbose := fs.Bool("v", false, "enable debug logging")
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	logger := newLogger(*verbose)

	if !*watch {
		if !runCheck(fs.Args(), logger) {
			os.Exit(1)
		}
		return
	}

	runCheck(fs.Args(), logger)
	if err := watchLoop(fs.Args(), logger); err != nil {
		logger.Error().Err(err).Msg("watch failed")
		os.Exit(1)
	}
}

func exportCmd(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	verbose := fs.Bool("v", false, "enable debug logging")
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	logger := newLogger(*verbose)
	schemas, ok := compileAll(fs.Args(), logger)
	if !ok {
		os.Exit(1)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Error().Err(err).Msg("create output")
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	for _, s := range schemas {
		if err := introspection.Write(w, s); err != nil {
			logger.Error().Err(err).Msg("write introspection")
			os.Exit(1)
		}
	}
}

// runCheck compiles every document under paths and reports the outcome.
// It returns false when any document fails to compile or carries errors.
func runCheck(paths []string, logger zerolog.Logger) bool {
	schemas, ok := compileAll(paths, logger)
	if ok {
		total := 0
		for _, s := range schemas {
			total += len(s.Identifiers())
		}
		logger.Info().Int("modules", len(schemas)).Int("types", total).Msg("schema ok")
	}
	return ok
}

// compileAll parses and compiles every document under paths in order,
// registering each compiled module so later documents can import from it.
func compileAll(paths []string, logger zerolog.Logger) ([]*forge.Schema, bool) {
	docs, err := loadDocuments(paths)
	if err != nil {
		logger.Error().Err(err).Msg("load documents")
		return nil, false
	}
	if len(docs) == 0 {
		logger.Error().Msg("no schema documents found")
		return nil, false
	}

	reg := forge.NewRegistry()
	ok := true
	var schemas []*forge.Schema
	for _, doc := range docs {
		schema, err := forge.Compile(doc.Events,
			forge.WithModule(doc.Module),
			forge.WithRegistry(reg),
			forge.WithLogger(logger),
		)
		if err != nil {
			logger.Error().Str("module", doc.Module).Err(err).Msg("compile failed")
			ok = false
			continue
		}
		for _, issue := range schema.Errors {
			logger.Error().
				Str("module", doc.Module).
				Str("rule", issue.Rule).
				Str("location", issue.Loc.String()).
				Msg(issue.Artifact)
		}
		if !schema.Valid() {
			ok = false
		}
		if doc.Module != "" {
			if err := reg.Register(schema); err != nil {
				logger.Error().Str("module", doc.Module).Err(err).Msg("register module")
				ok = false
			}
		}
		schemas = append(schemas, schema)
	}
	return schemas, ok
}

func loadDocuments(paths []string) ([]*yamldecl.Document, error) {
	var docs []*yamldecl.Document
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			sub, err := yamldecl.ParseDir(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, sub...)
			continue
		}
		doc, err := yamldecl.ParseFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// watchLoop recompiles whenever a watched YAML file is written or created.
// Directories are watched rather than files so atomic saves are caught.
func watchLoop(paths []string, logger zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dirs := map[string]bool{}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		dir := path
		if !info.IsDir() {
			dir = filepath.Dir(path)
		}
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	logger.Info().Int("dirs", len(dirs)).Msg("watching for changes")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isYAML(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Info().Str("file", event.Name).Msg("change detected")
			runCheck(paths, logger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watch error")
		}
	}
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}
