package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"khata/internal/cli"
	"khata/internal/model"

	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formAddTxn
	formTopUp
	formNewJar
	formNewSquad
	formSquadExpense
	formNewEvent
	formReserve
)

// formValues collects input from the active modal form. Amounts and
// dates stay strings until applyForm parses them; validators guarantee
// they parse.
type formValues struct {
	amount    string
	category  string
	channel   string
	note      string
	date      string
	name      string
	target    string
	members   string
	paidBy    string
	splitWith []string
}

func validAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v <= 0 {
		return errors.New("must be more than zero")
	}
	return nil
}

// validRefundable allows negative amounts (refunds) but not zero.
func validRefundable(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v == 0 {
		return errors.New("must not be zero")
	}
	return nil
}

func validOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

// parseDateOr returns the parsed date, or fallback when s is blank.
func parseDateOr(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fallback
	}
	return d
}

func parseAmount(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func categoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		opts[i] = huh.NewOption(string(c), string(c))
	}
	return opts
}

func channelOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(model.Channels))
	for i, ch := range model.Channels {
		opts[i] = huh.NewOption(string(ch), string(ch))
	}
	return opts
}

func newAddTxnForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount (₹)").
				Description("Negative for a refund").
				Validate(validRefundable).
				Value(&v.amount),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&v.category),
			huh.NewSelect[string]().
				Title("Channel").
				Options(channelOptions()...).
				Value(&v.channel),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD, blank for today").
				Validate(validOptionalDate).
				Value(&v.date),
			huh.NewInput().
				Title("Note").
				Value(&v.note),
		),
	)
}

func newTopUpForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Top-up amount (₹)").
				Description("Side income, a transfer from home, anything in").
				Validate(validAmount).
				Value(&v.amount),
			huh.NewInput().
				Title("Note").
				Value(&v.note),
		),
	)
}

func newJarForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Jar name").
				Validate(validName).
				Value(&v.name),
			huh.NewInput().
				Title("Target (₹)").
				Validate(validAmount).
				Value(&v.target),
		),
	)
}

func newSquadForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Squad name").
				Validate(validName).
				Value(&v.name),
			huh.NewInput().
				Title("Members").
				Description("Comma separated, include yourself").
				Validate(func(s string) error {
					if len(splitMembers(s)) < 2 {
						return errors.New("need at least two members")
					}
					return nil
				}).
				Value(&v.members),
		),
	)
}

func newExpenseForm(g model.Group, v *formValues) *huh.Form {
	memberOpts := make([]huh.Option[string], len(g.Members))
	for i, m := range g.Members {
		memberOpts[i] = huh.NewOption(m, m)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount (₹)").
				Validate(validAmount).
				Value(&v.amount),
			huh.NewInput().
				Title("Description").
				Validate(validName).
				Value(&v.note),
			huh.NewSelect[string]().
				Title("Paid by").
				Options(memberOpts...).
				Value(&v.paidBy),
			huh.NewMultiSelect[string]().
				Title("Split between").
				Options(memberOpts...).
				Validate(func(sel []string) error {
					if len(sel) == 0 {
						return errors.New("pick at least one member")
					}
					return nil
				}).
				Value(&v.splitWith),
		),
	)
}

func newEventForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Event name").
				Validate(validName).
				Value(&v.name),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("date is required")
					}
					return validOptionalDate(s)
				}).
				Value(&v.date),
			huh.NewInput().
				Title("Expected spend (₹)").
				Validate(validAmount).
				Value(&v.target),
		),
	)
}

func newReserveForm(eventName string, v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Reserve for %s (₹)", eventName)).
				Description("Also lands in the fest jar").
				Validate(validAmount).
				Value(&v.amount),
		),
	)
}

// splitMembers parses a comma-separated member list, dropping blanks.
func splitMembers(s string) []string {
	var members []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			members = append(members, name)
		}
	}
	return members
}

// applyForm commits the completed form to the session and returns a
// status line for the status bar.
func (a *App) applyForm() string {
	v := a.formVals
	if v == nil {
		return ""
	}

	switch a.formKind {
	case formAddTxn:
		amt := parseAmount(v.amount)
		date := parseDateOr(v.date, a.sess.Today())
		if err := a.sess.AddTransaction(amt, date, model.Category(v.category), model.Channel(v.channel), v.note); err != nil {
			return "error: " + err.Error()
		}
		return fmt.Sprintf("recorded %s on %s", cli.FormatMoney(amt), v.category)

	case formTopUp:
		amt := parseAmount(v.amount)
		if err := a.sess.TopUp(amt, v.note); err != nil {
			return "error: " + err.Error()
		}
		return fmt.Sprintf("topped up %s", cli.FormatMoney(amt))

	case formNewJar:
		a.sess.CreateJar(strings.TrimSpace(v.name), parseAmount(v.target))
		return fmt.Sprintf("jar %q created", strings.TrimSpace(v.name))

	case formNewSquad:
		name := strings.TrimSpace(v.name)
		if _, err := a.sess.CreateGroup(name, splitMembers(v.members)); err != nil {
			return "error: " + err.Error()
		}
		return fmt.Sprintf("squad %q created", name)

	case formSquadExpense:
		groups, err := a.sess.Groups()
		if err != nil || a.squadState.cursor >= len(groups) {
			return "squad not found"
		}
		g := groups[a.squadState.cursor]
		amt := parseAmount(v.amount)
		if err := a.sess.AddGroupTransaction(g.ID, amt, v.note, a.sess.Today(), v.paidBy, v.splitWith); err != nil {
			return "error: " + err.Error()
		}
		return fmt.Sprintf("%s paid %s", v.paidBy, cli.FormatMoney(amt))

	case formNewEvent:
		name := strings.TrimSpace(v.name)
		a.sess.CreateEvent(name, parseDateOr(v.date, a.sess.Today()), parseAmount(v.target))
		return fmt.Sprintf("event %q added", name)

	case formReserve:
		events := a.sess.Events()
		if a.eventState.cursor >= len(events) {
			return "event not found"
		}
		ev := events[a.eventState.cursor]
		amt := parseAmount(v.amount)
		a.sess.ReserveForEvent(ev.ID, amt)
		return fmt.Sprintf("reserved %s for %s", cli.FormatMoney(amt), ev.Name)
	}

	return ""
}
