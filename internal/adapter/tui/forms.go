package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

func (m *Model) openAddForm() tea.Cmd {
	m.showAdd = true
	m.focus = focusAdd
	m.nameInput.SetValue("")
	m.imageInput.SetValue(m.cfg.DefaultAvatar)
	return m.focusAddField(0)
}

func (m *Model) focusAddField(field int) tea.Cmd {
	m.addField = field
	m.nameInput.Blur()
	m.imageInput.Blur()
	if field == 0 {
		return m.nameInput.Focus()
	}
	return m.imageInput.Focus()
}

func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showAdd = false
		m.focus = focusList
		m.nameInput.Blur()
		m.imageInput.Blur()
		return m, nil

	case "tab", "down", "shift+tab", "up":
		return m, m.focusAddField(1 - m.addField)

	case "enter":
		friend, err := m.svc.AddFriend(m.ctx, usecase.AddFriendInput{
			Name:  m.nameInput.Value(),
			Image: m.imageInput.Value(),
		})
		if errors.Is(err, domain.ErrIncompleteFriend) {
			return m, nil
		}
		if err != nil {
			m.notice = noticeText(err)
			return m, nil
		}

		m.showAdd = false
		m.focus = focusList
		m.nameInput.Blur()
		m.imageInput.Blur()
		m.refresh()
		for i, f := range m.friends {
			if f.ID == friend.ID {
				m.cursor = i
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.addField == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.imageInput, cmd = m.imageInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) openSplitForm() tea.Cmd {
	m.form = domain.NewSplitForm()
	m.billInput.SetValue("")
	m.expenseInput.SetValue("")
	m.focus = focusSplit
	return m.focusSplitField(splitFieldBill)
}

func (m *Model) focusSplitField(field int) tea.Cmd {
	m.splitField = field
	m.billInput.Blur()
	m.expenseInput.Blur()
	switch field {
	case splitFieldBill:
		return m.billInput.Focus()
	case splitFieldExpense:
		return m.expenseInput.Focus()
	}
	return nil
}

func (m Model) updateSplitForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.svc.ClearSelection(m.ctx)
		m.billInput.Blur()
		m.expenseInput.Blur()
		m.refresh()
		m.focus = focusList
		return m, nil

	case "tab", "down":
		return m, m.focusSplitField((m.splitField + 1) % splitFieldCount)

	case "shift+tab", "up":
		return m, m.focusSplitField((m.splitField + splitFieldCount - 1) % splitFieldCount)

	case "enter":
		return m.submitSplit()
	}

	switch m.splitField {
	case splitFieldPayer:
		switch msg.String() {
		case "left", "right", " ":
			next := domain.PayerFriend
			if m.form.Payer() == domain.PayerFriend {
				next = domain.PayerUser
			}
			_ = m.form.SetPayer(next)
		}
		return m, nil

	case splitFieldBill:
		prev := m.billInput.Value()
		var cmd tea.Cmd
		m.billInput, cmd = m.billInput.Update(msg)
		if err := m.syncBill(); err != nil {
			m.billInput.SetValue(prev)
			_ = m.syncBill()
		}
		return m, cmd

	default:
		prev := m.expenseInput.Value()
		var cmd tea.Cmd
		m.expenseInput, cmd = m.expenseInput.Update(msg)
		if err := m.syncExpense(); err != nil {
			m.expenseInput.SetValue(prev)
			_ = m.syncExpense()
			if errors.Is(err, domain.ErrExpenseExceedsBill) {
				m.notice = noticeText(err)
			}
		}
		return m, cmd
	}
}

// syncBill copies the bill input into the form.
func (m *Model) syncBill() error {
	bill, err := parseAmount(m.billInput.Value())
	if err != nil {
		return err
	}
	if !bill.Valid {
		m.form.ClearBill()
		return nil
	}
	return m.form.SetBill(bill.Decimal)
}

// syncExpense copies the expense input into the form. Empty means zero.
func (m *Model) syncExpense() error {
	expense, err := parseAmount(m.expenseInput.Value())
	if err != nil {
		return err
	}
	return m.form.SetYourExpense(expense.Decimal)
}

func (m Model) submitSplit() (tea.Model, tea.Cmd) {
	bill, ok := m.form.Bill()
	input := usecase.SplitBillInput{
		FriendID:    m.selection.FriendID,
		YourExpense: m.form.YourExpense(),
		Payer:       m.form.Payer(),
	}
	if ok {
		input.Bill = decimal.NewNullDecimal(bill)
	}

	if _, err := m.svc.SubmitSplit(m.ctx, input); err != nil {
		m.notice = noticeText(err)
		m.refresh()
		return m, nil
	}

	m.billInput.Blur()
	m.expenseInput.Blur()
	m.refresh()
	m.focus = focusList
	return m, nil
}
