package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1F47E/go-asciireel/internal/palette"
	"github.com/1F47E/go-asciireel/pkg/apperr"
)

type SourceKind int

const (
	Image SourceKind = iota + 1
	Video
	Webcam
)

func (k SourceKind) String() string {
	switch k {
	case Image:
		return "image"
	case Video:
		return "video"
	case Webcam:
		return "webcam"
	}
	return fmt.Sprintf("SourceKind(%d)", int(k))
}

var sourceKeys = map[string]SourceKind{
	"i": Image,
	"v": Video,
	"w": Webcam,
}

var paletteLabels = map[string]string{
	"1": "High contrast",
	"2": "Medium contrast",
	"3": "Low contrast",
}

// Prompter asks line based questions on a terminal
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	title lipgloss.Style
	warn  lipgloss.Style
}

func New(in io.Reader, out io.Writer) *Prompter {
	r := lipgloss.NewRenderer(out)
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		title: r.NewStyle().Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("205")),
	}
}

// ChooseSource asks once, there is no retry for the source
func (p *Prompter) ChooseSource() (SourceKind, error) {
	fmt.Fprint(p.out, "Enter 'i' for image, 'v' for video, 'w' for webcam ->  ")
	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	kind, ok := sourceKeys[strings.ToLower(line)]
	if !ok {
		fmt.Fprintln(p.out, p.warn.Render("Invalid choice."))
		return 0, apperr.New(apperr.InvalidTopLevelChoice, "choose source",
			fmt.Errorf("unknown source %q", line))
	}
	return kind, nil
}

// ChoosePalette asks until a known key is entered or input ends
func (p *Prompter) ChoosePalette(t *palette.Table) (palette.Palette, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.title.Render("Choose ASCII contrast level:"))
	for _, k := range t.Keys() {
		fmt.Fprintf(p.out, "%s - %s\n", k, paletteLabels[k])
	}

	for {
		fmt.Fprint(p.out, "Enter 1, 2, or 3: ")
		line, err := p.readLine()
		if err != nil {
			return palette.Palette{}, err
		}
		pal, err := t.Select(line)
		if err == nil {
			return pal, nil
		}
		fmt.Fprintln(p.out, p.warn.Render("Invalid choice. Please enter 1, 2, or 3."))
	}
}

// readLine returns the trimmed line, io.EOF only when nothing was typed
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		fmt.Fprintln(p.out)
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
