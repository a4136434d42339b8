package console

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aanand-mishra/records-console/internal/utils/response"
)

// HandlerFunc performs one menu action. It reads whatever it needs from t
// and prints its own outcome; a returned error is reported by the menu.
type HandlerFunc func(ctx context.Context, t *Terminal) error

// Item is one numbered menu entry.
type Item struct {
	Label   string
	Handler HandlerFunc
}

// Menu is a fixed list of numbered actions. The number after the last
// item always exits.
type Menu struct {
	Title string
	Items []Item
}

// Run shows the menu and dispatches choices until the exit choice is made,
// the input ends, or ctx is cancelled.
//
// Invalid selections and failed actions are reported and the loop
// continues; no error from an action ends the loop.
func (m *Menu) Run(ctx context.Context, t *Terminal) error {
	log := zerolog.Ctx(ctx)
	exit := len(m.Items) + 1

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.print(t)

		line, err := t.Line("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.Println()
				return nil
			}
			return err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			t.Println("Invalid input, please enter a number.")
			continue
		}

		if choice == exit {
			t.Println("Exiting...")
			return nil
		}

		if choice < 1 || choice > len(m.Items) {
			t.Println("Invalid choice. Please try again.")
			continue
		}

		item := m.Items[choice-1]
		err = item.Handler(ctx, t)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			t.Println()
			return nil
		case errors.Is(err, ErrInvalidInput):
			t.Println("Invalid number input.")
		default:
			log.Error().Err(err).Str("action", item.Label).Msg("action failed")
			response.WriteError(t.Err, err)
		}
	}
}

func (m *Menu) print(t *Terminal) {
	t.Printf("\n--- %s ---\n", m.Title)
	for i, item := range m.Items {
		t.Printf("%d. %s\n", i+1, item.Label)
	}
	t.Printf("%d. Exit\n", len(m.Items)+1)
}
