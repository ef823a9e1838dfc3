package tui

import (
	"fmt"
	"strings"

	"github.com/jask/vidcash/internal/content"
)

func (a *App) renderHeader(st styles) string {
	nav := "[l] Home  [r] Rules  [f] FAQ  [a] Login  [s] Sign Up"
	if _, ok := a.sessions.Current(); ok {
		nav += "  [d] Dashboard"
	}
	return st.Brand.Render("VidCash") + " " + st.Muted.Render("Earn by Watching") + "   " + nav
}

func (a *App) renderFooter(st styles) string {
	return st.Muted.Render("[t] Terms of Service  [p] Privacy Policy  [ctrl+t] Theme  [q] Quit")
}

func (a *App) renderLanding(st styles) string {
	land := a.deps.Pages.Landing
	var b strings.Builder
	b.WriteString(a.renderHeader(st) + "\n\n")
	b.WriteString(st.Title.Render(land.Headline) + "\n\n")
	b.WriteString(st.Button.Render("Start Earning Now") + "  " + st.Muted.Render("[enter]") + "\n\n")

	b.WriteString(st.Label.Render("How It Works") + "\n")
	for i, step := range land.Steps {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}

	b.WriteString("\n" + st.Label.Render("Our Packages") + "\n")
	f := a.opts.Money
	for _, p := range a.deps.Catalog.All() {
		card := fmt.Sprintf("%s  %s  %d videos/day  %s per referral",
			st.Brand.Render(string(p.Tier)), f.Amount(p.Price), p.DailyVideoQuota, f.Amount(p.ReferralBonus))
		if p.Featured {
			b.WriteString(st.Featured.Render(card+"  "+st.Warning.Render("Most Popular")) + "\n")
		} else {
			b.WriteString(st.Card.Render(card) + "\n")
		}
	}

	if len(a.deps.Pages.Testimonials) > 0 {
		b.WriteString("\n" + st.Label.Render("What Our Users Say") + "\n")
		for _, t := range a.deps.Pages.Testimonials {
			b.WriteString(st.Text.Render(fmt.Sprintf("%q", t.Text)) + "\n")
			b.WriteString(st.Muted.Render("  - "+t.Name+", "+t.Role) + "\n")
		}
	}
	b.WriteString("\n" + a.renderFooter(st))
	return b.String()
}

func (a *App) renderDocument(st styles, doc content.Document) string {
	var b strings.Builder
	b.WriteString(a.renderHeader(st) + "\n\n")
	b.WriteString(st.Title.Render(doc.Title) + "\n")
	if doc.Intro != "" {
		b.WriteString(st.Muted.Render(doc.Intro) + "\n")
	}
	width := a.width
	if width <= 0 || width > 100 {
		width = 100
	}
	para := st.Text.Width(width)
	for _, s := range doc.Sections {
		b.WriteString("\n" + st.Label.Render(s.Heading) + "\n")
		b.WriteString(para.Render(s.Text) + "\n")
	}
	b.WriteString("\n" + st.Muted.Render("[up/down] Scroll  [esc] Home") + "\n")
	b.WriteString(a.renderFooter(st))
	return b.String()
}
