package game

import (
	"time"

	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/meter/internal/config"
	"github.com/iburimskiy/meter/internal/sound"
)

var errSoundDisabled = errors.New("sound is disabled (start with --sound)")

// audio plays the click bank through the speaker. A nil *audio is valid and
// silent.
type audio struct {
	cfg  config.SoundConfig
	log  logrus.FieldLogger
	bank *sound.Bank
}

func newAudio(cfg config.SoundConfig, log logrus.FieldLogger) (*audio, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	a := &audio{cfg: cfg, log: log, bank: sound.NewSynthBank(sound.SampleRate, cfg.Volume)}
	if cfg.ClickFile != "" {
		if err := a.load(cfg.ClickFile); err != nil {
			log.WithError(err).Warn("falling back to the built-in click")
		}
	}

	bufferSize := sound.SampleRate.N(time.Second / 20)
	if err := speaker.Init(sound.SampleRate, bufferSize); err != nil {
		return nil, errors.Wrap(err, "failed to init speaker")
	}
	log.WithField("click", a.bank.Source()).Info("sound enabled")
	return a, nil
}

func (a *audio) load(path string) error {
	if a == nil {
		return errSoundDisabled
	}
	b, err := sound.LoadBank(path, sound.SampleRate, a.cfg.Volume)
	if err != nil {
		return err
	}
	b.SetMuted(a.bank.Muted())
	a.bank = b
	return nil
}

func (a *audio) click() {
	if a == nil || a.bank.Muted() {
		return
	}
	speaker.Play(a.bank.Click())
}

func (a *audio) toggleMute() error {
	if a == nil {
		return errSoundDisabled
	}
	a.bank.SetMuted(!a.bank.Muted())
	if a.bank.Muted() {
		speaker.Clear()
	}
	return nil
}

func (a *audio) muted() bool {
	return a == nil || a.bank.Muted()
}

func (a *audio) close() {
	if a == nil {
		return
	}
	speaker.Clear()
}
