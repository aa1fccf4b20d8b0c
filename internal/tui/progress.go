// Package tui renders import progress and results for the command line.
package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
)

// Progress prints phase changes as lines and, on a terminal, a progress bar
// that is redrawn in place for every processed record.
//
// Update matches the service progress callback and may be called from
// several goroutines.
type Progress struct {
	mu          sync.Mutex
	w           io.Writer
	bar         progress.Model
	interactive bool
	barShown    bool
}

func NewProgress(w io.Writer, interactive bool) *Progress {
	return &Progress{
		w:           w,
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		interactive: interactive,
	}
}

func (p *Progress) Update(processed, total int, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if status != "" {
		p.endBar()
		fmt.Fprintf(p.w, "%s %s\n", phaseStyle.Render("»"), status)
		return
	}
	if !p.interactive || total <= 0 {
		return
	}

	fmt.Fprintf(p.w, "\r%s %d/%d", p.bar.ViewAs(float64(processed)/float64(total)), processed, total)
	p.barShown = true
}

// Done terminates a pending progress bar line.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.endBar()
}

func (p *Progress) endBar() {
	if p.barShown {
		fmt.Fprintln(p.w)
		p.barShown = false
	}
}
