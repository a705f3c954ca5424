package sound

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Bank holds the click sample in memory and hands out a fresh streamer for
// every play.
type Bank struct {
	format beep.Format
	buffer *beep.Buffer
	volume float64
	muted  bool
	source string
}

func newBank(sr beep.SampleRate) *Bank {
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	return &Bank{format: format, buffer: beep.NewBuffer(format)}
}

// NewSynthBank returns a bank with the built-in click.
func NewSynthBank(sr beep.SampleRate, volume float64) *Bank {
	b := newBank(sr)
	b.buffer.Append(NewClick(sr, clickFreq, clickDuration))
	b.volume = volume
	b.source = "builtin"
	return b
}

// LoadBank decodes the file at path into a bank, resampled to sr.
func LoadBank(path string, sr beep.SampleRate, volume float64) (*Bank, error) {
	streamer, format, err := Decode(path)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sr {
		s = beep.Resample(4, format.SampleRate, sr, streamer)
	}

	b := newBank(sr)
	b.buffer.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	if b.buffer.Len() == 0 {
		return nil, errors.Errorf("%s holds no samples", path)
	}
	b.volume = volume
	b.source = path
	return b, nil
}

// Decode opens path and picks a decoder from its extension. Closing the
// returned streamer closes the file.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, beep.Format{}, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "failed to open click sound")
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, errors.Wrapf(err, "failed to decode %s", path)
	}
	return &fileStreamer{StreamSeekCloser: streamer, f: f}, format, nil
}

// fileStreamer closes the underlying file together with the decoder, since
// not every decoder does.
type fileStreamer struct {
	beep.StreamSeekCloser
	f *os.File
}

func (s *fileStreamer) Close() error {
	err := s.StreamSeekCloser.Close()
	_ = s.f.Close()
	return err
}

// Click returns a new streamer playing the whole sample once.
func (b *Bank) Click() beep.Streamer {
	return &effects.Volume{
		Streamer: b.buffer.Streamer(0, b.buffer.Len()),
		Base:     2,
		Volume:   b.volume,
		Silent:   b.muted,
	}
}

func (b *Bank) Format() beep.Format { return b.format }
func (b *Bank) Len() int            { return b.buffer.Len() }
func (b *Bank) Source() string      { return b.source }
func (b *Bank) Muted() bool         { return b.muted }
func (b *Bank) SetMuted(m bool)     { b.muted = m }
