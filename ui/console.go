// Package ui is the interactive terminal front end of the recipe book.
// It prompts the user, calls the recipe service and prints the outcome.
// It never talks to storage directly.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"recipe-manager/domain"
	"recipe-manager/services"
	"strings"

	"github.com/gookit/color"
)

var (
	successStyle = color.New(color.FgGreen)
	warningStyle = color.New(color.FgYellow)
	errorStyle   = color.New(color.FgRed)
	titleStyle   = color.New(color.FgCyan)
)

// Options tunes the console. Zero values fall back to the defaults used by
// the command line program.
type Options struct {
	ExportPath string
	Colours    bool
}

type Console struct {
	service    services.IRecipeService
	in         *bufio.Reader
	out        io.Writer
	log        *slog.Logger
	exportPath string
	colours    bool
}

func NewConsole(service services.IRecipeService, in io.Reader, out io.Writer, log *slog.Logger, opts Options) *Console {
	return &Console{
		service:    service,
		in:         bufio.NewReader(in),
		out:        out,
		log:        log,
		exportPath: opts.ExportPath,
		colours:    opts.Colours,
	}
}

// prompt prints label and reads one line without its line ending.
// io.EOF is returned only when nothing was typed before input closed.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) render(style color.Style, msg string) string {
	if !c.colours {
		return msg
	}
	return style.Render(msg)
}

func (c *Console) success(msg string) {
	c.println(c.render(successStyle, msg))
}

func (c *Console) warning(msg string) {
	c.println(c.render(warningStyle, msg))
}

func (c *Console) failure(msg string, err error) {
	if err == nil {
		c.println(c.render(errorStyle, msg))
		return
	}
	c.println(c.render(errorStyle, msg), err)
}

func (c *Console) printRecipe(recipe domain.Recipe) {
	c.println(fmt.Sprintf("Назва: %s, Категорія: %s, Час: %d хв.", recipe.Name, recipe.Category, recipe.Time))
	c.println("Інгредієнти: " + domain.JoinIngredients(recipe.Ingredients))
	c.println("Інструкція: " + recipe.Instructions)
}
