// Package tui is a terminal host for the HUD. It lists actors, renders the
// action tree for the controlled tokens and sends clicks back through the
// bridge, re-rendering whenever a force update is published. The newest chat
// messages show under the panes.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
	"github.com/KirkDiggler/token-action-hud-wng/internal/services/bridge"
)

// Subscriber delivers force-update notifications
type Subscriber interface {
	OnForceUpdate(fn func(ctx context.Context) error) string
	Stop(subscriptionID string) error
}

// chatLines is how many chat messages the chat pane shows
const chatLines = 5

type pane int

const (
	paneActors pane = iota
	paneActions
)

// row is one line of the action pane; header rows carry no action
type row struct {
	group  hud.GroupID
	action *hud.Action
}

// Model is the Bubble Tea model for the HUD
type Model struct {
	ctx  context.Context
	svc  bridge.Service
	keys keyMap

	actors     []*wng.Actor
	controlled map[string]bool
	actorIdx   int

	rows      []row
	actionIdx int

	chat []*wng.ChatMessage

	focus  pane
	status string
	err    error

	width    int
	height   int
	quitting bool
}

type actorsLoadedMsg struct {
	actors []*wng.Actor
}

type actionsBuiltMsg struct {
	groups []hud.GroupActions
}

type chatLoadedMsg struct {
	messages []*wng.ChatMessage
}

type clickDoneMsg struct {
	action string
}

type refreshMsg struct{}

type errMsg struct {
	err error
}

// New creates a model reading from svc
func New(ctx context.Context, svc bridge.Service) Model {
	return Model{
		ctx:        ctx,
		svc:        svc,
		keys:       defaultKeyMap(),
		controlled: make(map[string]bool),
	}
}

// Run starts the program and re-renders on every force update
func Run(ctx context.Context, svc bridge.Service, sub Subscriber) error {
	m := New(ctx, svc)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	id := sub.OnForceUpdate(func(context.Context) error {
		p.Send(refreshMsg{})
		return nil
	})
	defer func() { _ = sub.Stop(id) }()

	_, err := p.Run()
	return err
}

// Init loads the actor list and the chat log
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadActors(), m.loadChat())
}

// Update handles keys, window resizes and service results
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case actorsLoadedMsg:
		m.actors = msg.actors
		if m.actorIdx >= len(m.actors) {
			m.actorIdx = 0
		}
		m.err = nil
		return m, m.buildActions()

	case actionsBuiltMsg:
		m.rows = flatten(msg.groups)
		if m.actionIdx >= len(m.rows) || m.rows[m.actionIdx].action == nil {
			m.actionIdx = m.firstAction(0, 1)
		}
		return m, nil

	case chatLoadedMsg:
		m.chat = msg.messages
		return m, nil

	case clickDoneMsg:
		m.status = "clicked " + msg.action
		m.err = nil
		return m, m.loadChat()

	case refreshMsg:
		return m, tea.Batch(m.loadActors(), m.loadChat())

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == paneActors {
			m.focus = paneActions
		} else {
			m.focus = paneActors
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, tea.Batch(m.loadActors(), m.loadChat())

	case key.Matches(msg, m.keys.Up):
		return m.move(-1)

	case key.Matches(msg, m.keys.Down):
		return m.move(1)

	case key.Matches(msg, m.keys.Select):
		if m.focus != paneActors || len(m.actors) == 0 {
			return m, nil
		}
		id := m.actors[m.actorIdx].ID
		controlled := make(map[string]bool, len(m.controlled)+1)
		for k, v := range m.controlled {
			controlled[k] = v
		}
		if controlled[id] {
			delete(controlled, id)
		} else {
			controlled[id] = true
		}
		m.controlled = controlled
		return m, m.buildActions()

	case key.Matches(msg, m.keys.Click):
		return m, m.click(host.MouseButtonLeft)

	case key.Matches(msg, m.keys.RightClick):
		return m, m.click(host.MouseButtonRight)
	}

	return m, nil
}

func (m Model) move(delta int) (tea.Model, tea.Cmd) {
	if m.focus == paneActors {
		if len(m.actors) == 0 {
			return m, nil
		}
		next := m.actorIdx + delta
		if next < 0 || next >= len(m.actors) {
			return m, nil
		}
		m.actorIdx = next
		if len(m.controlled) == 0 {
			return m, m.buildActions()
		}
		return m, nil
	}

	if next := m.firstAction(m.actionIdx+delta, delta); next >= 0 {
		m.actionIdx = next
	}
	return m, nil
}

// firstAction returns the first action row from start stepping by dir,
// or -1 when there is none
func (m Model) firstAction(start, dir int) int {
	for i := start; i >= 0 && i < len(m.rows); i += dir {
		if m.rows[i].action != nil {
			return i
		}
	}
	return -1
}

// selection returns the controlled actor ids, falling back to the actor
// under the cursor
func (m Model) selection() []string {
	if len(m.controlled) == 0 {
		if len(m.actors) == 0 {
			return nil
		}
		return []string{m.actors[m.actorIdx].ID}
	}

	ids := make([]string, 0, len(m.controlled))
	for _, a := range m.actors {
		if m.controlled[a.ID] {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func (m Model) loadActors() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		out, err := svc.ListActors(ctx, &bridge.ListActorsInput{})
		if err != nil {
			return errMsg{err: err}
		}
		return actorsLoadedMsg{actors: out.Actors}
	}
}

func (m Model) loadChat() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		out, err := svc.ListChat(ctx, &bridge.ListChatInput{Limit: chatLines})
		if err != nil {
			return errMsg{err: err}
		}
		return chatLoadedMsg{messages: out.Messages}
	}
}

func (m Model) buildActions() tea.Cmd {
	ids := m.selection()
	if len(ids) == 0 {
		return func() tea.Msg { return actionsBuiltMsg{} }
	}

	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		out, err := svc.BuildActions(ctx, &bridge.BuildActionsInput{ActorIDs: ids})
		if err != nil {
			return errMsg{err: err}
		}
		return actionsBuiltMsg{groups: out.Groups}
	}
}

func (m Model) click(button host.MouseButton) tea.Cmd {
	if m.focus != paneActions || m.actionIdx < 0 || m.actionIdx >= len(m.rows) {
		return nil
	}
	action := m.rows[m.actionIdx].action
	if action == nil {
		return nil
	}

	ids := m.selection()
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		_, err := svc.HandleClick(ctx, &bridge.HandleClickInput{
			ActorIDs:     ids,
			EncodedValue: action.EncodedValue,
			Event:        host.ClickEvent{Button: button},
		})
		if err != nil {
			return errMsg{err: err}
		}
		return clickDoneMsg{action: action.Name}
	}
}

func flatten(groups []hud.GroupActions) []row {
	var rows []row
	for _, g := range groups {
		if len(g.Actions) == 0 {
			continue
		}
		rows = append(rows, row{group: g.Group.ID})
		for i := range g.Actions {
			rows = append(rows, row{group: g.Group.ID, action: &g.Actions[i]})
		}
	}
	return rows
}

// View renders the actor pane, the action pane, the chat pane and a status
// bar
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	actors := m.paneStyle(paneActors).Render(m.renderActors())
	actions := m.paneStyle(paneActions).Render(m.renderActions())
	body := lipgloss.JoinHorizontal(lipgloss.Top, actors, actions)
	chat := stylePane.Render(m.renderChat())

	return lipgloss.JoinVertical(lipgloss.Left, body, chat) + "\n" + m.renderStatusBar()
}

func (m Model) paneStyle(p pane) lipgloss.Style {
	if m.focus == p {
		return styleFocusedPane
	}
	return stylePane
}

func (m Model) renderActors() string {
	if len(m.actors) == 0 {
		return styleMuted.Render("no actors")
	}

	var b strings.Builder
	for i, a := range m.actors {
		marker := "[ ]"
		if m.controlled[a.ID] {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s (%s)", marker, a.Name, a.Type)
		if i == m.actorIdx {
			line = styleCursor.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < len(m.actors)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderActions() string {
	if len(m.rows) == 0 {
		return styleMuted.Render("no actions")
	}

	lines := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		if r.action == nil {
			lines = append(lines, styleGroupHeader.Render(string(r.group)))
			continue
		}

		name := r.action.ListName
		if r.action.CSSClass == hud.CSSToggleActive {
			name = styleActive.Render(name)
		}
		if i == m.actionIdx && m.focus == paneActions {
			lines = append(lines, styleCursor.Render("> ")+name)
		} else {
			lines = append(lines, "  "+name)
		}
	}
	return strings.Join(lines, "\n")
}

// renderChat lists the loaded messages oldest first so the newest sits at
// the bottom
func (m Model) renderChat() string {
	if len(m.chat) == 0 {
		return styleMuted.Render("no chat")
	}

	lines := make([]string, 0, len(m.chat))
	for i := len(m.chat) - 1; i >= 0; i-- {
		msg := m.chat[i]
		line := styleSpeaker.Render(msg.Speaker+":") + " " + msg.Content
		if r := msg.Roll; r != nil {
			line += " " + styleMuted.Render(fmt.Sprintf("%d icons, wrath %d", r.Icons, r.Wrath))
			switch {
			case r.Critical:
				line += " " + styleActive.Render("critical")
			case r.Complication:
				line += " " + styleError.Render("complication")
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	text := m.keys.helpLine()
	if m.status != "" {
		text = m.status + "  |  " + text
	}
	bar := styleStatusBar.Width(m.width).Render(text)
	if m.err != nil {
		return styleError.Render("error: "+m.err.Error()) + "\n" + bar
	}
	return bar
}
