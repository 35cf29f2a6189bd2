// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-parcel-tracker/models"
	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "────────────────────────────────────────"

type styles struct {
	page   lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	faint  lipgloss.Style
	status lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		page:   r.NewStyle().Padding(0, 1),
		title:  r.NewStyle().Bold(true),
		label:  r.NewStyle().Bold(true).Width(18),
		faint:  r.NewStyle().Faint(true),
		status: r.NewStyle().Italic(true),
	}
}

func (s styles) renderPage(title, data string) string {
	var b strings.Builder

	b.WriteString(s.title.Render(title))
	b.WriteString("\n")
	b.WriteString(s.faint.Render(uiDivider))
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
	} else {
		b.WriteString("-")
	}

	return s.page.Render(b.String()) + "\n"
}

func (s styles) field(label, value string) string {
	return s.label.Render(label+":") + " " + value
}

func (s styles) renderDelivery(resp models.DeliveryResponse, copied bool) string {
	lines := []string{
		s.field("Package ID", resp.PackageID),
		s.field("Status", s.status.Render(resp.Status)),
	}
	if copied {
		lines = append(lines, s.faint.Render("package id copied to clipboard"))
	}
	return s.renderPage("DELIVERY", strings.Join(lines, "\n"))
}

func (s styles) renderTracking(resp models.TrackingResponse) string {
	return s.renderPage("TRACKING", strings.Join([]string{
		s.field("Package ID", resp.PackageID),
		s.field("Destination", resp.Destination),
		s.field("Current location", resp.CurrentLocation),
		s.field("Speed", resp.Speed),
		s.field("Tracking info", s.status.Render(resp.TrackingInfo)),
	}, "\n"))
}

func (s styles) renderPackages(title string, packages []models.Package) string {
	if len(packages) == 0 {
		return s.renderPage(title, s.faint.Render("no packages"))
	}

	lines := make([]string, 0, len(packages))
	for _, p := range packages {
		lines = append(lines, fmt.Sprintf("%s  %s -> %s  (%s)", p.PackageID, p.CurrentLocation, p.Destination, p.Speed))
	}
	return s.renderPage(fmt.Sprintf("%s (%d)", title, len(packages)), strings.Join(lines, "\n"))
}

func (s styles) renderCount(count int) string {
	return s.renderPage("PACKAGES", s.field("Package count", fmt.Sprint(count)))
}

func (s styles) renderVersion(server string, build models.AppBuildInfo) string {
	return s.renderPage("VERSION", strings.Join([]string{
		s.field("Server version", valueOrNA(server)),
		s.field("Client version", build.BuildVersion()),
		s.field("Client build date", build.BuildDate()),
		s.field("Client commit", build.BuildCommit()),
	}, "\n"))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
