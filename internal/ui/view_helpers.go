// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"fitbook/internal/client"
	"fitbook/internal/command"
	"fitbook/internal/routine"

	"github.com/charmbracelet/bubbles/key"
)

// --- View Helpers ---

// refreshListPane regenerates the viewport content for the active pane.
// Called whenever the book, the filter state or the active pane changes.
func (m *model) refreshListPane() {
	if !m.ready || m.mgr == nil {
		return
	}
	var b strings.Builder
	switch m.activePane {
	case paneClients:
		renderClientList(&b, m.mgr.FilteredClients())
	case paneRoutines:
		renderRoutineList(&b, m.mgr.FilteredRoutines())
	}
	m.viewport.SetContent(b.String())
}

// renderClientList writes the one-based, filtered client listing. The shown
// indices are exactly what edit/delete commands address.
func renderClientList(b *strings.Builder, clients []client.Client) {
	b.WriteString(paneTitleStyle.Render("Clients") + "\n")
	if len(clients) == 0 {
		b.WriteString(dimStyle.Render("  (no clients to show)") + "\n")
		return
	}
	for i, c := range clients {
		fmt.Fprintf(b, "%s %s\n", indexStyle.Render(fmt.Sprintf("%3d.", i+1)), c.Name)
		fmt.Fprintf(b, "     %s\n", fieldStyle.Render(fmt.Sprintf("Phone: %s  Email: %s", c.Phone, c.Email)))
		fmt.Fprintf(b, "     %s\n", fieldStyle.Render(fmt.Sprintf("Address: %s", c.Address)))
		fmt.Fprintf(b, "     %s\n", fieldStyle.Render(fmt.Sprintf("Weight: %s kg  Gender: %s  Calories: %s kcal", c.Weight, c.Gender, c.Calorie)))
		if len(c.Appointments) > 0 {
			var parts []string
			for _, a := range c.Appointments {
				parts = append(parts, a.String())
			}
			fmt.Fprintf(b, "     %s\n", fieldStyle.Render("Appointments: "+strings.Join(parts, ", ")))
		}
		if len(c.Tags) > 0 {
			var parts []string
			for _, t := range c.Tags {
				parts = append(parts, "["+t.String()+"]")
			}
			fmt.Fprintf(b, "     %s\n", tagStyle.Render("Tags: "+strings.Join(parts, " ")))
		}
	}
}

// renderRoutineList writes the one-based, filtered routine listing.
func renderRoutineList(b *strings.Builder, routines []routine.Routine) {
	b.WriteString(paneTitleStyle.Render("Routines") + "\n")
	if len(routines) == 0 {
		b.WriteString(dimStyle.Render("  (no routines to show)") + "\n")
		return
	}
	for i, r := range routines {
		fmt.Fprintf(b, "%s %s\n", indexStyle.Render(fmt.Sprintf("%3d.", i+1)), r.Name)
		for _, e := range r.Exercises {
			fmt.Fprintf(b, "     %s\n", fieldStyle.Render("- "+e.String()))
		}
	}
}

// --- State-Specific View Renderers ---
// These functions generate the body and footer content for specific UI
// states. View() combines them with the header.

func (m *model) renderLoadingView() (string, string) {
	body := statusStyle.Render("Loading FitBook data...")
	footer := m.renderFooter(m.keymap.Quit)
	return body, footer
}

func (m *model) renderBrowseView() (string, string) {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.feedback != "" {
		if m.feedbackIsErr {
			b.WriteString(errorStyle.Render(firstLine(m.feedback)))
		} else {
			b.WriteString(successStyle.Render(firstLine(m.feedback)))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())

	footer := m.renderFooter(m.keymap.Enter, m.keymap.Tab, m.keymap.AddForm, m.keymap.Up, m.keymap.Down, m.keymap.Quit)
	return b.String(), footer
}

func (m *model) renderHelpView() (string, string) {
	body := mainContentBorderStyle.Render(command.HelpText)
	footer := m.renderFooter(m.keymap.Esc, m.keymap.Quit)
	return body, footer
}

func (m *model) renderAddFormView() (string, string) {
	labels := [formFieldCount]string{
		"Name", "Phone", "Email", "Address", "Weight", "Gender", "Calories",
		"Appointments", "Tags",
	}

	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Add a new client") + "\n\n")
	for i, input := range m.formInputs {
		label := labels[i]
		if i == m.formFocus {
			label = cursorStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		fmt.Fprintf(&b, "%-30s %s\n", label, input.View())
	}
	if m.feedback != "" && m.feedbackIsErr {
		b.WriteString("\n" + errorStyle.Render(firstLine(m.feedback)))
	}

	footer := m.renderFooter(m.keymap.Enter, m.keymap.Tab, m.keymap.ShiftTab, m.keymap.Esc, m.keymap.Quit)
	return b.String(), footer
}

// renderFooter builds the status bar line from key bindings.
func (m *model) renderFooter(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return footerStyle.Render(strings.Join(parts, footerSeparatorStyle.Render(" | ")))
}

// firstLine trims feedback to its first line; full messages (like help) get
// their own view instead of the one-line feedback slot.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
