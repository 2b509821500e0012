// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/choir/internal/core/styles"
)

type ctxKey struct{}

// Printer writes one line per call, prefixed with a level icon.
type Printer struct {
	out io.Writer
}

// New returns a printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// WithPrinter stores p in ctx.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(style lipgloss.Style, icon, format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", style.Render(icon), fmt.Sprintf(format, args...))
}

// Printf writes an unprefixed line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle, "✓", format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.CommandStyle, "•", format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.WarningStyle, "!", format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle, "✗", format, args...)
}
