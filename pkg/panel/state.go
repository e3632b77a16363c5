package panel

import (
	"fmt"
	"net/url"
	"strings"
)

// Fixed panel messages.
const (
	LoadingMessage = "Loading…"
	EmptyMessage   = "No summary available."
	FailedMessage  = "Failed to load summary."
)

// SearchURL is the outbound link template; the title is query-escaped.
const SearchURL = "https://www.google.com/search?q=%s"

// Phase is the visibility state of the panel.
type Phase int

const (
	Hidden Phase = iota
	Loading
	Loaded
	Failed
)

var phaseNames = [...]string{"hidden", "loading", "loaded", "failed"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText decodes a phase name.
func (p *Phase) UnmarshalText(b []byte) error {
	for i, name := range phaseNames {
		if name == string(b) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown panel phase %q", b)
}

// Summary is what the summary provider returns for one title.
type Summary struct {
	Extract          string
	ThumbnailURL     string
	OriginalImageURL string
}

// ImageURL returns the thumbnail if present, else the original image.
func (s *Summary) ImageURL() string {
	if s == nil {
		return ""
	}
	if s.ThumbnailURL != "" {
		return s.ThumbnailURL
	}
	return s.OriginalImageURL
}

// State is a snapshot of the panel.
type State struct {
	Phase    Phase  `json:"phase"`
	Title    string `json:"title,omitempty"`     // displayed title, the last one clicked
	Source   string `json:"source,omitempty"`    // title the content was fetched for
	Text     string `json:"text,omitempty"`      // plain content text
	Content  string `json:"content,omitempty"`   // escaped markup of Text
	ImageURL string `json:"image_url,omitempty"` // empty means no image
	Link     string `json:"link,omitempty"`
}

// Visible reports whether the panel is shown.
func (s State) Visible() bool { return s.Phase != Hidden }

// SearchLink returns the outbound search link for title.
func SearchLink(title string) string {
	return fmt.Sprintf(SearchURL, url.QueryEscape(title))
}

// LoadingState is the panel right after title was clicked.
func LoadingState(title string) State {
	return State{
		Phase:   Loading,
		Title:   title,
		Source:  title,
		Text:    LoadingMessage,
		Content: paragraph(LoadingMessage),
		Link:    SearchLink(title),
	}
}

// Resolve builds the panel content for a finished fetch of title.
// A nil summary without an error is treated as an empty extract.
func Resolve(title string, sum *Summary, err error) State {
	s := State{
		Title:  title,
		Source: title,
		Link:   SearchLink(title),
	}
	if err != nil {
		s.Phase = Failed
		s.Text = FailedMessage
		s.Content = paragraph(FailedMessage)
		return s
	}

	s.Phase = Loaded
	extract := ""
	if sum != nil {
		extract = strings.TrimSpace(sum.Extract)
	}
	if extract == "" {
		s.Text = EmptyMessage
		s.Content = paragraph(EmptyMessage)
	} else {
		s.Text = extract
		s.Content = paragraph(Escape(extract))
	}
	s.ImageURL = sum.ImageURL()
	return s
}

func paragraph(markup string) string { return "<p>" + markup + "</p>" }
