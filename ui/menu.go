package ui

import (
	"context"
	"io"
)

type handler func(c *Console, ctx context.Context) error

var menu = []struct {
	choice string
	label  string
	run    handler
}{
	{"1", "Додати рецепт", (*Console).addRecipe},
	{"2", "Переглянути всі рецепти", (*Console).viewRecipes},
	{"3", "Знайти рецепт", (*Console).searchRecipe},
	{"4", "Оновити рецепт", (*Console).updateRecipe},
	{"5", "Видалити рецепт", (*Console).deleteRecipe},
	{"6", "Експортувати рецепти у JSON", (*Console).exportRecipes},
}

const exitChoice = "7"

// Run shows the menu until the user picks exit, input ends or ctx is
// cancelled. Only input failures other than end of input are returned.
func (c *Console) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		c.printMenu()
		choice, err := c.prompt("Оберіть дію: ")
		if err != nil {
			return c.terminate(err)
		}
		if choice == exitChoice {
			c.println(c.render(titleStyle, "👋 До побачення!"))
			return nil
		}
		run := c.lookup(choice)
		if run == nil {
			c.failure("❌ Невірний вибір, спробуйте ще раз.", nil)
			continue
		}
		if err = run(c, ctx); err != nil {
			return c.terminate(err)
		}
	}
}

func (c *Console) lookup(choice string) handler {
	for _, item := range menu {
		if item.choice == choice {
			return item.run
		}
	}
	return nil
}

func (c *Console) printMenu() {
	c.println("\n" + c.render(titleStyle, "=== Меню ==="))
	for _, item := range menu {
		c.println(item.choice + ". " + item.label)
	}
	c.println(exitChoice + ". Вийти")
}

func (c *Console) terminate(err error) error {
	if err == io.EOF {
		c.println()
		c.log.Debug("Input closed, leaving the menu")
		return nil
	}
	return err
}
