package stylesheet

import (
	"github.com/rs/zerolog"

	"github.com/notekeep/notekeep/internal/theme"
)

// Builder renders stylesheets for consumer classes from one template.
type Builder struct {
	ctx      *theme.Context
	template string
	logger   zerolog.Logger
}

// NewBuilder binds tmpl to ctx. An empty tmpl selects the builtin template.
func NewBuilder(ctx *theme.Context, tmpl string, logger zerolog.Logger) *Builder {
	if tmpl == "" {
		tmpl = BuiltinTemplate()
	}
	return &Builder{
		ctx:      ctx,
		template: tmpl,
		logger:   logger,
	}
}

// Template returns the template in use.
func (b *Builder) Template() string {
	return b.template
}

// SetTemplate swaps the template. An empty tmpl restores the builtin one.
func (b *Builder) SetTemplate(tmpl string) {
	if tmpl == "" {
		tmpl = BuiltinTemplate()
	}
	b.template = tmpl
}

// Describe resolves the descriptor for class and key under the active theme.
func (b *Builder) Describe(class Class, key theme.ColorKey) (Descriptor, error) {
	return Describe(b.ctx, class, key)
}

// Stylesheet returns the template with the class profile substituted.
func (b *Builder) Stylesheet(class Class, key theme.ColorKey) (string, error) {
	desc, err := b.Describe(class, key)
	if err != nil {
		return "", err
	}

	b.logger.Debug().
		Str("class", string(class)).
		Str("color", key.String()).
		Str("theme", string(b.ctx.Theme())).
		Msg("stylesheet resolved")

	return desc.Apply(b.template), nil
}

// Default returns the stylesheet of class with the DEFAULT note color.
func (b *Builder) Default(class Class) (string, error) {
	return b.Stylesheet(class, theme.ColorDefault)
}
