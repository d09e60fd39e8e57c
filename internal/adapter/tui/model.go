// Package tui is a terminal front end for the friend ledger.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// LedgerService defines the behavior needed by Model.
type LedgerService interface {
	Snapshot(ctx context.Context) usecase.State
	AddFriend(ctx context.Context, input usecase.AddFriendInput) (*domain.Friend, error)
	RemoveFriend(ctx context.Context, id string) error
	SelectFriend(ctx context.Context, id string) (domain.Selection, error)
	ClearSelection(ctx context.Context)
	SubmitSplit(ctx context.Context, input usecase.SplitBillInput) (*domain.Friend, error)
}

type focusArea int

const (
	focusList focusArea = iota
	focusAdd
	focusSplit
)

const (
	splitFieldBill = iota
	splitFieldExpense
	splitFieldPayer
	splitFieldCount
)

// Config configures a Model.
type Config struct {
	DefaultAvatar string
	Currency      string
	Styles        Styles
}

// Model is the bubbletea model for the ledger screen: the friend list,
// the add-friend form and the split-bill form for the selected friend.
type Model struct {
	svc    LedgerService
	ctx    context.Context
	cfg    Config
	styles Styles

	friends   []domain.Friend
	selection domain.Selection
	totals    domain.Totals
	cursor    int
	focus     focusArea

	showAdd    bool
	addField   int
	nameInput  textinput.Model
	imageInput textinput.Model

	form         *domain.SplitForm
	splitField   int
	billInput    textinput.Model
	expenseInput textinput.Model

	notice   string
	width    int
	quitting bool
}

// NewModel creates a Model backed by svc.
func NewModel(ctx context.Context, svc LedgerService, cfg Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		svc:          svc,
		ctx:          ctx,
		cfg:          cfg,
		styles:       cfg.Styles,
		nameInput:    newInput("Name"),
		imageInput:   newInput("Image URL"),
		billInput:    newInput("0"),
		expenseInput: newInput("0"),
	}
	m.refresh()

	return m
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 256
	return in
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refresh() {
	state := m.svc.Snapshot(m.ctx)
	m.friends = state.Friends
	m.selection = state.Selection
	m.totals = state.Totals

	if m.cursor >= len(m.friends) {
		m.cursor = len(m.friends) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if !m.selection.IsSet() && m.focus == focusSplit {
		m.focus = focusList
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		// the notice blocks input until it is dismissed
		if m.notice != "" {
			m.notice = ""
			return m, nil
		}

		switch m.focus {
		case focusAdd:
			return m.updateAddForm(msg)
		case focusSplit:
			return m.updateSplitForm(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.friends)-1 {
			m.cursor++
		}

	case "enter", " ":
		if len(m.friends) == 0 {
			return m, nil
		}
		if _, err := m.svc.SelectFriend(m.ctx, m.friends[m.cursor].ID); err != nil {
			m.notice = noticeText(err)
			m.refresh()
			return m, nil
		}
		m.refresh()
		return m, m.openSplitForm()

	case "x", "delete":
		if len(m.friends) == 0 {
			return m, nil
		}
		if err := m.svc.RemoveFriend(m.ctx, m.friends[m.cursor].ID); err != nil {
			m.notice = noticeText(err)
		}
		m.refresh()

	case "a":
		if m.showAdd {
			m.showAdd = false
			return m, nil
		}
		return m, m.openAddForm()

	case "tab":
		switch {
		case m.showAdd:
			m.focus = focusAdd
			return m, m.focusAddField(m.addField)
		case m.selection.IsSet():
			m.focus = focusSplit
			return m, m.focusSplitField(m.splitField)
		}
	}

	return m, nil
}

// Friend returns the friend under the cursor, if any.
func (m Model) Friend() (domain.Friend, bool) {
	if m.cursor < 0 || m.cursor >= len(m.friends) {
		return domain.Friend{}, false
	}
	return m.friends[m.cursor], true
}

// Selected returns the friend the split form is open for, if any.
func (m Model) Selected() (domain.Friend, bool) {
	for _, f := range m.friends {
		if m.selection.Is(f.ID) {
			return f, true
		}
	}
	return domain.Friend{}, false
}

// Notice returns the banner text currently shown, if any.
func (m Model) Notice() string {
	return m.notice
}

func noticeText(err error) string {
	for _, known := range []error{
		domain.ErrBillRequired,
		domain.ErrExpenseExceedsBill,
		domain.ErrNegativeAmount,
		domain.ErrInvalidPayer,
		domain.ErrNoSelection,
		domain.ErrSelectionMismatch,
		domain.ErrFriendNotFound,
	} {
		if errors.Is(err, known) {
			return capitalize(known.Error())
		}
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func parseAmount(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
