package graphforge

import "github.com/rs/zerolog"

type compileOptions struct {
	module   string
	registry *Registry
	logger   zerolog.Logger
}

// Option configures one Compile call.
type Option func(*compileOptions)

// WithModule names the compiling module. The name keys the schema in a
// Registry and stamps every definition's source reference.
func WithModule(name string) Option {
	return func(o *compileOptions) { o.module = name }
}

// WithRegistry supplies the read-only registry of already-compiled modules
// consulted by set_import_types directives.
func WithRegistry(r *Registry) Option {
	return func(o *compileOptions) { o.registry = r }
}

// WithLogger enables compile tracing. The default logger discards
// everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *compileOptions) { o.logger = l }
}

func applyOptions(opts []Option) compileOptions {
	o := compileOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
