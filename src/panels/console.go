package panels

import (
	"log/slog"

	"github.com/javanhut/RavenEditor/src/console"
	"github.com/javanhut/RavenEditor/src/dock"
)

// Console shows the shell scrollback. The shell starts the first time the
// panel is drawn; once it exits it stays down until restarted explicitly.
type Console struct {
	Console *console.Console
	Logger  *slog.Logger

	failed bool
}

func (p *Console) Draw(s Surface, tab dock.Tab) {
	pal := s.Palette()
	b := s.Bounds()
	s.Fill(b, pal.Background)
	if p.Console == nil {
		return
	}
	if !p.Console.Started() && !p.failed {
		if err := p.Console.Start(); err != nil {
			p.failed = true
			if p.Logger != nil {
				p.Logger.Error("console start", "err", err)
			}
		}
	}

	l := newLines(s, 0)
	if l.cols > 0 {
		p.Console.Resize(uint16(l.cols), uint16(max(1, l.rows())))
	}
	for _, line := range p.Console.Buffer().Lines(l.rows()) {
		if !l.add(0, line, pal.Foreground) {
			return
		}
	}
}
