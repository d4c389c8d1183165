package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm, modeTitle:
			return m.updateForm(msg)
		case modeConfirmClear:
			return m.updateConfirmClear(msg)
		case modeDetails:
			return m.updateDetails(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	// Non-key messages (blink ticks and the like) belong to the form.
	if m.form != nil && (m.mode == modeForm || m.mode == modeTitle) {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}
	return m, nil
}

func (m tuiModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevDay):
		m.dayIdx = (m.dayIdx + 6) % 7
		m.clampSelection()
	case key.Matches(msg, m.keys.NextDay):
		m.dayIdx = (m.dayIdx + 1) % 7
		m.clampSelection()
	case key.Matches(msg, m.keys.PrevBlock):
		if m.blockIdx > 0 {
			m.blockIdx--
		}
	case key.Matches(msg, m.keys.NextBlock):
		if m.blockIdx < len(m.blocks())-1 {
			m.blockIdx++
		}

	case key.Matches(msg, m.keys.Open):
		if m.selected() != nil {
			m.mode = modeDetails
		}

	case key.Matches(msg, m.keys.Add):
		m.fields = newClassFormFields(nil)
		m.fields.Days = []string{string(m.day())}
		m.editingID = ""
		m.form = buildClassForm(m.fields)
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		if blk := m.selected(); blk != nil {
			m.fields = newClassFormFields(blk.Class)
			m.editingID = blk.Class.ID
			m.form = buildClassForm(m.fields)
			m.mode = modeForm
			return m, m.form.Init()
		}

	case key.Matches(msg, m.keys.Delete):
		if blk := m.selected(); blk != nil {
			name := blk.Class.DisplayName()
			if err := m.app.Schedule.DeleteClass(context.Background(), blk.Class.ID); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("Removed %s.", name)
			}
			m.refresh()
		}

	case key.Matches(msg, m.keys.Title):
		m.titleDraft = m.app.Schedule.Schedule().Title
		m.form = buildTitleForm(&m.titleDraft)
		m.mode = modeTitle
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Clear):
		if len(m.app.Schedule.Schedule().Classes) > 0 {
			m.mode = modeConfirmClear
		}

	case key.Matches(msg, m.keys.Share):
		link, err := m.app.Schedule.ShareLink(defaultShareBase)
		if err != nil {
			m.status = err.Error()
			break
		}
		if err := clipboard.WriteAll(link); err != nil {
			// Clipboard is best-effort; show the link so it can be copied
			// by hand.
			m.status = "Clipboard unavailable: " + link
		} else {
			m.status = "Share link copied to clipboard."
		}

	case key.Matches(msg, m.keys.Export):
		path, err := m.app.Schedule.ExportFile(context.Background(), ".")
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = "Exported to " + path
		}
	}
	return m, nil
}

func (m tuiModel) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		if blk := m.selected(); blk != nil {
			m.fields = newClassFormFields(blk.Class)
			m.editingID = blk.Class.ID
			m.form = buildClassForm(m.fields)
			m.mode = modeForm
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.Delete):
		if blk := m.selected(); blk != nil {
			if err := m.app.Schedule.DeleteClass(context.Background(), blk.Class.ID); err != nil {
				m.status = err.Error()
			}
			m.refresh()
		}
		m.mode = modeBrowse
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	default:
		m.mode = modeBrowse
	}
	return m, nil
}

func (m tuiModel) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "y" {
		if err := m.app.Schedule.ClearAll(context.Background()); err != nil {
			m.status = err.Error()
		} else {
			m.status = "Schedule cleared."
		}
		m.refresh()
	} else {
		m.status = "Cancelled."
	}
	m.mode = modeBrowse
	return m, nil
}

func (m tuiModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.mode = modeBrowse
		m.form = nil
		m.status = "Cancelled."
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm(cmd)
	case huh.StateAborted:
		m.mode = modeBrowse
		m.form = nil
		m.status = "Cancelled."
		return m, nil
	}
	return m, cmd
}

func (m tuiModel) submitForm(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	if m.mode == modeTitle {
		if err := m.app.Schedule.SetTitle(ctx, m.titleDraft); err != nil {
			m.status = err.Error()
		}
	} else {
		fields := m.fields.ToFields()
		var err error
		if m.editingID == "" {
			_, err = m.app.Schedule.AddClass(ctx, fields)
		} else {
			err = m.app.Schedule.UpdateClass(ctx, m.editingID, fields)
		}
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				m.status = verr.Message
			} else {
				m.status = err.Error()
			}
		} else {
			m.status = "Saved."
		}
	}

	m.mode = modeBrowse
	m.form = nil
	m.refresh()
	return m, cmd
}
