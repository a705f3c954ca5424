package game

import (
	"strconv"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
)

type dialogKind int

const (
	dialogValue dialogKind = iota
	dialogClickSound
)

type dialogResult struct {
	kind  dialogKind
	value string
	err   error
}

// openDialog runs a native dialog off the frame loop; the answer arrives on
// g.dialogs and is applied in Update. Only one dialog is open at a time.
func (g *Game) openDialog(kind dialogKind) {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true

	current := strconv.FormatFloat(g.widget.Target(), 'f', 1, 64)
	limit := strconv.FormatFloat(g.widget.MaxValue(), 'f', -1, 64)
	go func() {
		var (
			s   string
			err error
		)
		switch kind {
		case dialogValue:
			s, err = zenity.Entry("Target value (0-"+limit+"):",
				zenity.Title("Set Meter Value"),
				zenity.EntryText(current),
			)
		case dialogClickSound:
			s, err = zenity.SelectFile(
				zenity.Title("Open Click Sound"),
				zenity.FileFilters{{
					Name:     "Audio",
					Patterns: []string{"*.wav", "*.mp3", "*.flac"},
				}},
			)
		}
		g.dialogs <- dialogResult{kind: kind, value: s, err: err}
	}()
}

// pollDialogs applies a finished dialog, if any.
func (g *Game) pollDialogs() {
	var res dialogResult
	select {
	case res = <-g.dialogs:
	default:
		return
	}
	g.dialogOpen = false

	if errors.Is(res.err, zenity.ErrCanceled) {
		return
	}
	if res.err != nil {
		g.lastErr = errors.Wrap(res.err, "dialog failed")
		return
	}

	switch res.kind {
	case dialogValue:
		v, err := parseValue(res.value)
		if err != nil {
			g.lastErr = err
			return
		}
		g.widget.SetTarget(v)
	case dialogClickSound:
		g.log.WithField("path", res.value).Info("loading click sound")
		if err := g.audio.load(res.value); err != nil {
			g.lastErr = err
		}
	}
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("not a number: %q", s)
	}
	return v, nil
}
