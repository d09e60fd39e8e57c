package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iho/splitledger/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Splitwise"))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice))
		b.WriteString("\n\n")
	}

	left := m.viewFriends()
	if m.showAdd {
		left = lipgloss.JoinVertical(lipgloss.Left, left, m.viewAddForm())
	}

	body := left
	if friend, ok := m.Selected(); ok && m.form != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.viewSplitForm(friend))
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return b.String()
}

func (m Model) viewFriends() string {
	var b strings.Builder

	if len(m.friends) == 0 {
		b.WriteString(m.styles.Muted.Render("No friends yet. Press a to add one."))
	}

	for i, f := range m.friends {
		cursor := "  "
		if i == m.cursor && m.focus == focusList {
			cursor = m.styles.Cursor.Render("> ")
		}

		name := f.Name
		if m.selection.Is(f.ID) {
			name = m.styles.Selected.Render(name)
		}

		fmt.Fprintf(&b, "%s%s\n  %s\n", cursor, m.styles.Label.Render(name), m.balanceStyle(f).Render(f.Message(m.cfg.Currency)))
	}

	fmt.Fprintf(&b, "\n%s", m.styles.Muted.Render(fmt.Sprintf(
		"owed to you %s%s · you owe %s%s",
		m.totals.Owed, m.cfg.Currency, m.totals.Owing, m.cfg.Currency,
	)))

	return m.styles.Panel.Render(b.String())
}

func (m Model) balanceStyle(f domain.Friend) lipgloss.Style {
	switch f.Standing() {
	case domain.StandingOwed:
		return m.styles.Owed
	case domain.StandingOwing:
		return m.styles.Owing
	default:
		return m.styles.Even
	}
}

func (m Model) viewAddForm() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", m.styles.Label.Render("Name"), m.nameInput.View())
	fmt.Fprintf(&b, "%s\n%s", m.styles.Label.Render("Image"), m.imageInput.View())
	return m.styles.Panel.Render(b.String())
}

func (m Model) viewSplitForm(friend domain.Friend) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", m.styles.Label.Render("Split a bill with "+friend.Name))
	fmt.Fprintf(&b, "%s\n%s\n", m.fieldLabel(splitFieldBill, "Bill value"), m.billInput.View())
	fmt.Fprintf(&b, "%s\n%s\n", m.fieldLabel(splitFieldExpense, "Your expense"), m.expenseInput.View())
	fmt.Fprintf(&b, "%s\n%s\n", m.styles.Label.Render(friend.Name+"'s expense"), m.styles.Muted.Render(m.form.FriendExpense().String()))

	you, them := "( ) You", "( ) "+friend.Name
	if m.form.Payer() == domain.PayerFriend {
		them = "(•) " + friend.Name
	} else {
		you = "(•) You"
	}
	fmt.Fprintf(&b, "%s\n%s   %s", m.fieldLabel(splitFieldPayer, "Who is paying the bill"), you, them)

	return m.styles.Panel.Render(b.String())
}

func (m Model) fieldLabel(field int, label string) string {
	if m.focus == focusSplit && m.splitField == field {
		return m.styles.Cursor.Render("> " + label)
	}
	return m.styles.Label.Render("  " + label)
}

func (m Model) viewHelp() string {
	var help string
	switch m.focus {
	case focusAdd:
		help = "tab: next field · enter: add · esc: close"
	case focusSplit:
		help = "tab: next field · ←/→: payer · enter: split bill · esc: close"
	default:
		help = "↑/↓: move · enter: split with friend · x: remove · a: add friend · tab: forms · q: quit"
	}
	if m.notice != "" {
		help = "press any key to dismiss"
	}
	return m.styles.Help.Render(help)
}
