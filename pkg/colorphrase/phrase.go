package colorphrase

import (
	"sync"
	"unicode/utf8"

	"github.com/arthur-debert/colorphrase/pkg/errors"
)

// Phrase is a pattern together with its formatting configuration.
//
// Phrases are immutable: every With/Color call returns a new Phrase and
// leaves the receiver untouched. Configuration errors are detected at the
// offending call and kept on the returned Phrase; Err reports them and
// Format returns them before any parsing happens.
type Phrase struct {
	pattern string
	marks   []Mark
	cfg     Config
	err     error
	memo    *memo
}

// memo holds the result of the one-time format computation.
type memo struct {
	once     sync.Once
	segments []Segment
	text     StyledText
	err      error
}

// From is the entry point: it starts a phrase for pattern with the default
// separator and colors.
func From(pattern string) *Phrase {
	return &Phrase{pattern: pattern, cfg: DefaultConfig(), memo: &memo{}}
}

// FromMarked starts a phrase whose pattern carries style marks. Marks are
// rune offsets into pattern and are kept attached to their characters when
// delimiters are removed.
func FromMarked(pattern string, marks ...Mark) *Phrase {
	p := From(pattern)
	n := utf8.RuneCountInString(pattern)
	for _, m := range marks {
		if m.Name == "" || m.Start < 0 || m.End < m.Start || m.End > n {
			p.err = errors.Newf(errors.ErrInvalidArgument,
				"mark %q [%d, %d) does not fit a pattern of %d characters", m.Name, m.Start, m.End, n).
				WithDetail(errors.DetailPattern, pattern)
			return p
		}
	}
	p.marks = append([]Mark(nil), marks...)
	return p
}

// derive copies the phrase with a fresh, empty result cache.
func (p *Phrase) derive() *Phrase {
	return &Phrase{
		pattern: p.pattern,
		marks:   p.marks,
		cfg:     p.cfg,
		err:     p.err,
		memo:    &memo{},
	}
}

// WithSeparator sets the delimiters from a one or two character spec.
func (p *Phrase) WithSeparator(spec string) *Phrase {
	next := p.derive()
	if next.err != nil {
		return next
	}
	sep, err := ParseSeparator(spec)
	if err != nil {
		next.err = err
		return next
	}
	next.cfg.Separator = sep
	return next
}

// InnerColor sets the color of text between the delimiters.
func (p *Phrase) InnerColor(c Color) *Phrase {
	next := p.derive()
	next.cfg.Inner = c
	return next
}

// OuterColor sets the color of text outside the delimiters.
func (p *Phrase) OuterColor(c Color) *Phrase {
	next := p.derive()
	next.cfg.Outer = c
	return next
}

// WithConfig replaces the whole configuration at once.
func (p *Phrase) WithConfig(cfg Config) *Phrase {
	next := p.derive()
	next.cfg = cfg
	return next
}

// Err returns the first configuration error recorded on the phrase.
func (p *Phrase) Err() error {
	return p.err
}

// Config returns the phrase configuration.
func (p *Phrase) Config() Config {
	return p.cfg
}

// Segments validates and tokenizes the pattern.
func (p *Phrase) Segments() ([]Segment, error) {
	if p.err != nil {
		return nil, p.err
	}
	m := p.compute()
	if m.segments == nil && m.err != nil {
		return nil, m.err
	}
	return append([]Segment(nil), m.segments...), nil
}

// Format validates, tokenizes and lays out the pattern. The work happens
// once per phrase; later calls return an equal result.
func (p *Phrase) Format() (StyledText, error) {
	if p.err != nil {
		return StyledText{}, p.err
	}
	m := p.compute()
	if m.err != nil {
		return StyledText{}, m.err
	}
	return m.text.Clone(), nil
}

// MustFormat is like Format but panics on error.
func (p *Phrase) MustFormat() StyledText {
	text, err := p.Format()
	if err != nil {
		panic(err)
	}
	return text
}

// String returns the raw pattern.
func (p *Phrase) String() string {
	return p.pattern
}

func (p *Phrase) compute() *memo {
	m := p.memo
	m.once.Do(func() {
		logger := currentLogger()

		if err := Validate(p.pattern, p.cfg.Separator); err != nil {
			logger.Trace().Err(err).Str("separator", p.cfg.Separator.String()).Msg("Pattern rejected")
			m.err = withPattern(err, p.pattern)
			return
		}

		segments, err := Tokenize(p.pattern, p.cfg.Separator)
		if err != nil {
			logger.Trace().Err(err).Msg("Pattern could not be tokenized")
			m.err = withPattern(err, p.pattern)
			return
		}
		m.segments = segments

		text, err := Layout(p.pattern, segments, p.cfg, p.marks...)
		if err != nil {
			m.err = err
			return
		}
		m.text = text

		logger.Trace().
			Int("segments", len(segments)).
			Int("ranges", len(text.Ranges)).
			Msg("Pattern formatted")
	})
	return m
}

func withPattern(err error, pattern string) error {
	if coded, ok := err.(*errors.Error); ok {
		coded.WithDetail(errors.DetailPattern, pattern)
	}
	return err
}
