package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nguyentantai21042004/caption-summary/internal/summarizer"
)

const (
	pathPrompt = `Enter the path of the JSON subtitle file (e.g. C:\subs\episode.json or /home/user/episode.json):`
	exitPrompt = "\nPress Enter to exit..."
)

// RunInteractive asks for a file path on in, processes it, then waits for
// Enter before returning.
func RunInteractive(ctx context.Context, p Processor, in io.Reader, out io.Writer) *summarizer.Summary {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, pathPrompt)
	// A read error leaves whatever was read; an empty path is rejected downstream.
	line, _ := reader.ReadString('\n')

	summary := p.Process(ctx, CleanPath(line))

	fmt.Fprint(out, exitPrompt)
	_, _ = reader.ReadString('\n')

	return summary
}

// CleanPath trims whitespace and one pair of matching surrounding quotes,
// as left behind by drag-and-drop or "copy as path".
func CleanPath(raw string) string {
	path := strings.TrimSpace(raw)
	if len(path) >= 2 {
		first, last := path[0], path[len(path)-1]
		if first == last && (first == '"' || first == '\'') {
			path = path[1 : len(path)-1]
		}
	}
	return path
}
