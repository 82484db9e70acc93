package clean

import (
	"regexp"
	"slices"
	"strings"

	"github.com/fwojciec/ramendex"
)

var (
	hoursPattern       = regexp.MustCompile(`[0-9]{1,2}:[0-9]{2}`)
	phoneNumberPattern = regexp.MustCompile(`\+?[0-9]{2,4}[-\s.][0-9]{2,4}[-\s.][0-9]{3,4}`)
	postalCodePattern  = regexp.MustCompile(`[0-9]{3}-[0-9]{4}`)
)

// SegmentState is a state of the store segmenter.
type SegmentState int

// Segmenter states.
const (
	StateScanning SegmentState = iota
	StateNamePending
	StateCollecting
)

func (s SegmentState) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StateNamePending:
		return "name_pending"
	case StateCollecting:
		return "collecting"
	}
	return "unknown"
}

// segmentEvent is the class of one input line.
type segmentEvent int

const (
	eventOther segmentEvent = iota
	eventDelimiter
	eventName
	eventDetail
)

type segmentAction int

const (
	actionNone segmentAction = iota
	actionOpen
	actionAppend
	actionEmit
)

type segmentTransition struct {
	next   SegmentState
	action segmentAction
}

// Pairs absent from the table leave the state unchanged and do nothing.
var segmentTransitions = map[SegmentState]map[segmentEvent]segmentTransition{
	StateScanning: {
		eventDelimiter: {StateNamePending, actionNone},
	},
	StateNamePending: {
		eventDelimiter: {StateNamePending, actionNone},
		eventName:      {StateCollecting, actionOpen},
	},
	StateCollecting: {
		eventDelimiter: {StateNamePending, actionEmit},
		eventDetail:    {StateCollecting, actionAppend},
	},
}

// StoreBlock is one physical store found in a directory page.
type StoreBlock struct {
	Name    string
	Details []string
}

// Content renders the block as record content: the name line followed by
// the detail lines.
func (b StoreBlock) Content() string {
	return strings.Join(append([]string{b.Name}, b.Details...), "\n")
}

// Segmentation is the result of segmenting one page.
type Segmentation struct {
	Blocks []StoreBlock
	// Delimited reports whether the delimiter occurred at all. A page
	// without it does not have the expected structure.
	Delimited bool
}

// Segmenter splits a store directory text stream into per-store blocks.
type Segmenter struct {
	delimiter  *regexp.Regexp
	brand      string
	locations  terms
	stopTokens []string
	locales    []LocaleName

	relevant []linePredicate
}

type linePredicate struct {
	name  string
	match func(line string) bool
}

// NewSegmenter compiles the vocabulary's store tables. Returns EINVALID if
// the delimiter pattern does not compile.
func NewSegmenter(v *Vocabulary) (*Segmenter, error) {
	delimiter, err := regexp.Compile(v.StoreDelimiter)
	if err != nil {
		return nil, ramendex.Errorf(ramendex.EINVALID, "invalid store delimiter %q: %v", v.StoreDelimiter, err)
	}

	phone := newTerms(v.PhoneMarkers, false)
	address := newTerms(v.AddressMarkers, false)
	weekdays := newTerms(v.Weekdays, false)
	countries := newTerms(v.Countries, false)

	return &Segmenter{
		delimiter:  delimiter,
		brand:      strings.ToLower(strings.TrimSpace(v.BrandPrefix)),
		locations:  newTerms(v.LocationKeywords, false),
		stopTokens: slices.Clone(v.StopTokens),
		locales:    slices.Clone(v.LocaleNames),
		relevant: []linePredicate{
			{"phone", func(l string) bool { return phone.match(l) || phoneNumberPattern.MatchString(l) }},
			{"hours", hoursPattern.MatchString},
			{"address", func(l string) bool { return address.match(l) || postalCodePattern.MatchString(l) }},
			{"weekday", weekdays.match},
			{"country", countries.match},
		},
	}, nil
}

// Segment runs the state machine over the lines of text.
func (s *Segmenter) Segment(text string) Segmentation {
	var (
		out     Segmentation
		state   = StateScanning
		current StoreBlock
		seen    = map[string]bool{}
		emitted = map[string]bool{}
	)

	emit := func() {
		if current.Name != "" && !emitted[current.Name] {
			emitted[current.Name] = true
			out.Blocks = append(out.Blocks, current)
		}
		current = StoreBlock{}
		clear(seen)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		event, name, keep := s.classify(line, state)
		if event == eventDelimiter {
			out.Delimited = true
		}
		tr, ok := segmentTransitions[state][event]
		if !ok {
			continue
		}

		switch tr.action {
		case actionOpen:
			current = StoreBlock{Name: name}
			if keep {
				seen[line] = true
				current.Details = append(current.Details, line)
			}
		case actionAppend:
			if !seen[line] && line != current.Name {
				seen[line] = true
				current.Details = append(current.Details, line)
			}
		case actionEmit:
			emit()
		}
		state = tr.next
	}

	if state == StateCollecting && len(current.Details) > 0 {
		emit()
	}
	return out
}

// classify maps a line to an event given the current state. For name
// events it also returns the resolved store name, and whether the line
// itself is the store's first detail.
func (s *Segmenter) classify(line string, state SegmentState) (segmentEvent, string, bool) {
	if s.delimiter.MatchString(line) {
		return eventDelimiter, "", false
	}
	switch state {
	case StateNamePending:
		if name, viaLocale := s.resolveName(line); name != "" {
			return eventName, name, viaLocale && s.isRelevant(line)
		}
	case StateCollecting:
		if s.isRelevant(line) {
			return eventDetail, "", false
		}
	}
	return eventOther, "", false
}

// resolveName returns the store name a line introduces. viaLocale is set
// when the name came from the locale table rather than the line itself.
func (s *Segmenter) resolveName(line string) (name string, viaLocale bool) {
	if s.brand != "" && strings.HasPrefix(strings.ToLower(line), s.brand) && s.locations.match(line) {
		return s.cutAtStopToken(line), false
	}
	for _, l := range s.locales {
		if l.Keyword != "" && strings.Contains(line, l.Keyword) {
			return l.Name, true
		}
	}
	return "", false
}

func (s *Segmenter) cutAtStopToken(line string) string {
	end := len(line)
	for _, tok := range s.stopTokens {
		if tok == "" {
			continue
		}
		if i := strings.Index(line, tok); i > 0 && i < end {
			end = i
		}
	}
	return strings.TrimSpace(line[:end])
}

func (s *Segmenter) isRelevant(line string) bool {
	for _, p := range s.relevant {
		if p.match(line) {
			return true
		}
	}
	return false
}
