package view

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"
	"unicode"
	"unicode/utf8"

	"lead_dashboard/internal/domain"
	"lead_dashboard/internal/source/leads"
)

const (
	title          = "AI Lead Dashboard"
	version        = "v1.0"
	clearScreen    = "\033[H\033[2J"
	cellWidth      = 40
	placeholderKey = "your-secret-api-key-here"
)

// Settings is what the settings tab shows about the running client.
type Settings struct {
	BackendURL       string
	APIKey           string
	Interval         time.Duration
	ArchiveEnabled   bool
	PublisherEnabled bool
}

type Option func(*Renderer)

// WithLocation sets the zone timestamps are shown in.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) { r.loc = loc }
}

// WithClearScreen clears the terminal before every frame.
func WithClearScreen(clear bool) Option {
	return func(r *Renderer) { r.clear = clear }
}

// WithTab sets the initially selected tab.
func WithTab(t Tab) Option {
	return func(r *Renderer) { r.tab = t }
}

// Renderer draws the selected tab for the most recent snapshot.
type Renderer struct {
	out      io.Writer
	settings Settings
	loc      *time.Location
	clear    bool

	// held for a whole frame so frames reach out in snapshot order
	drawMu sync.Mutex

	mu     sync.Mutex
	tab    Tab
	health *leads.Health
	last   domain.Snapshot
}

func NewRenderer(out io.Writer, settings Settings, opts ...Option) *Renderer {
	r := &Renderer{
		out:      out,
		settings: settings,
		loc:      time.Local,
		last:     domain.Snapshot{Loading: true},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tab returns the selected tab.
func (r *Renderer) Tab() Tab {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tab
}

// Select switches tabs and redraws the last snapshot.
func (r *Renderer) Select(t Tab) error {
	r.drawMu.Lock()
	defer r.drawMu.Unlock()

	r.mu.Lock()
	r.tab = t
	snap := r.last
	r.mu.Unlock()
	return r.draw(snap)
}

// SetHealth records the backend status document for the settings tab.
func (r *Renderer) SetHealth(h *leads.Health) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.health = h
}

// Observe redraws on every applied refresh. Older snapshots are ignored.
func (r *Renderer) Observe(snap domain.Snapshot) {
	r.drawMu.Lock()
	defer r.drawMu.Unlock()

	r.mu.Lock()
	if snap.Seq < r.last.Seq {
		r.mu.Unlock()
		return
	}
	r.last = snap
	r.mu.Unlock()

	_ = r.draw(snap)
}

// Render writes one frame.
func (r *Renderer) Render(snap domain.Snapshot) error {
	r.drawMu.Lock()
	defer r.drawMu.Unlock()
	return r.draw(snap)
}

func (r *Renderer) draw(snap domain.Snapshot) error {
	r.mu.Lock()
	tab := r.tab
	health := r.health
	r.mu.Unlock()

	var buf bytes.Buffer
	if r.clear {
		buf.WriteString(clearScreen)
	}

	r.header(&buf, snap, tab)

	switch tab {
	case TabLeads:
		r.leadsTab(&buf, snap)
	case TabAnalytics:
		r.analyticsTab(&buf, snap)
	case TabSettings:
		r.settingsTab(&buf, snap, health)
	default:
		r.dashboardTab(&buf, snap)
	}

	r.footer(&buf, snap)

	_, err := r.out.Write(buf.Bytes())
	return err
}

func (r *Renderer) header(buf *bytes.Buffer, snap domain.Snapshot, selected Tab) {
	buf.WriteString(title)
	if !snap.LastUpdate.IsZero() {
		fmt.Fprintf(buf, "    Updated: %s", snap.LastUpdate.In(r.loc).Format("03:04 PM"))
	}
	buf.WriteString("\n")

	names := make([]string, 0, len(tabNames))
	for i, t := range Tabs() {
		label := fmt.Sprintf("%d:%s", i+1, t)
		if t == selected {
			label = "[" + label + "]"
		}
		names = append(names, label)
	}
	buf.WriteString(strings.Join(names, "  "))
	buf.WriteString("\n\n")

	if snap.LastError != nil {
		fmt.Fprintf(buf, "!! %s\n\n", snap.LastError)
	}
}

func (r *Renderer) footer(buf *bytes.Buffer, snap domain.Snapshot) {
	status := "Connected"
	if snap.LastError != nil {
		status = "Disconnected"
	}
	fmt.Fprintf(buf, "\n%s %s - real-time monitoring active\n", title, version)
	fmt.Fprintf(buf, "Backend: %s\n", status)
	fmt.Fprintf(buf, "Backend URL: %s\n", r.settings.BackendURL)
	buf.WriteString("commands: r refresh, 1-4 or tab name to switch, q quit\n")
}

func (r *Renderer) dashboardTab(buf *bytes.Buffer, snap domain.Snapshot) {
	tw := tabwriter.NewWriter(buf, 0, 0, 4, ' ', 0)
	fmt.Fprintln(tw, "Total Leads\tHigh Priority\tAI Responses\t")
	fmt.Fprintf(tw, "%d\t%d\t%d\t\n", snap.Stats.TotalLeads, snap.Stats.HighPriority, snap.Stats.AIResponses)
	fmt.Fprintln(tw, "All sources\tRequires attention\tSent successfully\t")
	_ = tw.Flush()

	buf.WriteString("\nRecent Leads\n")
	r.table(buf, snap, snap.Leads, true)
}

func (r *Renderer) leadsTab(buf *bytes.Buffer, snap domain.Snapshot) {
	sorted := make([]domain.Lead, len(snap.Leads))
	copy(sorted, snap.Leads)
	sort.SliceStable(sorted, func(i, j int) bool {
		return domain.RankPriority(sorted[i].Priority) > domain.RankPriority(sorted[j].Priority)
	})

	fmt.Fprintf(buf, "All Leads (%d), by priority\n", len(sorted))
	r.table(buf, snap, sorted, false)
}

func (r *Renderer) table(buf *bytes.Buffer, snap domain.Snapshot, rows []domain.Lead, truncate bool) {
	if snap.Loading {
		buf.WriteString("Loading leads...\n")
		return
	}
	if len(rows) == 0 {
		buf.WriteString("No leads found. Send a webhook to start collecting data.\n")
		return
	}

	cell := func(s string) string {
		s = oneLine(s)
		if truncate {
			s = truncateRunes(s, cellWidth)
		}
		return s
	}

	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	if truncate {
		fmt.Fprintln(tw, "SOURCE\tUSER\tCOMMENT\tAI RESPONSE\tPRIORITY\tTIME\t")
	} else {
		fmt.Fprintln(tw, "SOURCE\tUSER\tPOST\tCOMMENT\tAI RESPONSE\tPRIORITY\tTIME\t")
	}
	for _, l := range rows {
		reply := l.AIResponse
		if reply == "" {
			reply = "-"
		}
		if truncate {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
				sourceLabel(l.Source), cell(l.UserID), cell(l.CommentText), cell(reply),
				priorityLabel(l.Priority), domain.FormatClockTime(l.Timestamp, r.loc))
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
				sourceLabel(l.Source), cell(l.UserID), cell(l.PostID), cell(l.CommentText), cell(reply),
				priorityLabel(l.Priority), domain.FormatClockTime(l.Timestamp, r.loc))
		}
	}
	_ = tw.Flush()
}

func (r *Renderer) analyticsTab(buf *bytes.Buffer, snap domain.Snapshot) {
	bySource := map[domain.SourceKind]int{}
	byRank := map[domain.PriorityRank]int{}
	for _, l := range snap.Leads {
		bySource[domain.ClassifySource(l.Source)]++
		byRank[domain.RankPriority(l.Priority)]++
	}

	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BY SOURCE\tLEADS\t")
	for _, k := range []domain.SourceKind{domain.SourceFacebook, domain.SourceInstagram, domain.SourceGeneric} {
		fmt.Fprintf(tw, "%s\t%d\t\n", k, bySource[k])
	}
	fmt.Fprintln(tw, "\t\t")
	fmt.Fprintln(tw, "BY PRIORITY\tLEADS\t")
	for _, p := range []domain.PriorityRank{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow, domain.PriorityUnknown} {
		fmt.Fprintf(tw, "%s\t%d\t\n", p, byRank[p])
	}
	_ = tw.Flush()

	rate := 0.0
	if snap.Stats.TotalLeads > 0 {
		rate = 100 * float64(snap.Stats.AIResponses) / float64(snap.Stats.TotalLeads)
	}
	fmt.Fprintf(buf, "\nAI reply rate: %.0f%% (%d of %d)\n", rate, snap.Stats.AIResponses, snap.Stats.TotalLeads)
}

func (r *Renderer) settingsTab(buf *bytes.Buffer, snap domain.Snapshot, health *leads.Health) {
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Backend URL\t%s\t\n", r.settings.BackendURL)
	fmt.Fprintf(tw, "API key\t%s\t\n", maskKey(r.settings.APIKey))
	fmt.Fprintf(tw, "Poll interval\t%s\t\n", r.settings.Interval)
	fmt.Fprintf(tw, "Archive\t%s\t\n", onOff(r.settings.ArchiveEnabled))
	fmt.Fprintf(tw, "Lead events\t%s\t\n", onOff(r.settings.PublisherEnabled))
	if snap.Seq > 0 {
		fmt.Fprintf(tw, "Refreshes applied\t%d\t\n", snap.Seq)
	}
	if health != nil {
		fmt.Fprintf(tw, "Backend status\t%s %s (%s)\t\n", health.Service, health.Version, health.Status)
		fmt.Fprintf(tw, "Groq connected\t%s\t\n", yesNo(health.GroqConnected))
		fmt.Fprintf(tw, "Facebook token\t%s\t\n", yesNo(health.FacebookTokenConfigured))
		fmt.Fprintf(tw, "Backend API key set\t%s\t\n", yesNo(health.APIKeyConfigured))
	} else {
		fmt.Fprintln(tw, "Backend status\tunknown\t")
	}
	_ = tw.Flush()
}

func sourceLabel(source string) string {
	switch domain.ClassifySource(source) {
	case domain.SourceFacebook:
		return "Facebook"
	case domain.SourceInstagram:
		return "Instagram"
	}
	if source == "" {
		return "-"
	}
	r, size := utf8.DecodeRuneInString(source)
	return string(unicode.ToUpper(r)) + source[size:]
}

func priorityLabel(p string) string {
	if p == "" {
		return "-"
	}
	return p
}

func maskKey(key string) string {
	switch {
	case key == "":
		return "(not set)"
	case key == placeholderKey:
		return "(default placeholder)"
	case utf8.RuneCountInString(key) <= 4:
		return "****"
	}
	return string([]rune(key)[:4]) + strings.Repeat("*", 8)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
