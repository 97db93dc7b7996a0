package fingertree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// levelColors cycles per tree level in terminal output.
var levelColors = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
}

// Dump writes an indented outline of the tree structure to w (for debugging
// purposes). Lines are colored by indentation depth when w is a terminal;
// escape sequences are suppressed for files and pipes.
func Dump[V, A any](t Tree[V, A], w io.Writer) {
	p := printer{w: w, colored: isTerminal(w)}
	dumpSpine[V, A](p, t.spine(), 0)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type printer struct {
	w       io.Writer
	colored bool
}

func (p printer) line(depth int, format string, args ...interface{}) {
	text := strings.Repeat("    ", depth) + fmt.Sprintf(format, args...)
	if p.colored {
		c := levelColors[depth%len(levelColors)]
		fmt.Fprintln(p.w, c.Sprint(text))
		return
	}
	fmt.Fprintln(p.w, text)
}

func dumpSpine[V, A any](p printer, t spine[V], depth int) {
	switch t := t.(type) {
	case emptyTree[V]:
		p.line(depth, "empty")
	case singleTree[V]:
		p.line(depth, "single")
		dumpElement[V, A](p, t.el, depth+1)
	case *deepTree[V]:
		p.line(depth, "deep [%v]", t.m)
		p.line(depth+1, "prefix/%d [%v]", len(t.pr.els), t.pr.m)
		for _, el := range t.pr.els {
			dumpElement[V, A](p, el, depth+2)
		}
		dumpSpine[V, A](p, t.mid, depth+1)
		p.line(depth+1, "suffix/%d [%v]", len(t.sf.els), t.sf.m)
		for _, el := range t.sf.els {
			dumpElement[V, A](p, el, depth+2)
		}
	default:
		p.line(depth, "? %T", t)
	}
}

func dumpElement[V, A any](p printer, el element[V], depth int) {
	if n, ok := el.(*node[V]); ok {
		p.line(depth, "node%d [%v]", len(n.kids), n.m)
		for _, kid := range n.kids {
			dumpElement[V, A](p, kid, depth+1)
		}
		return
	}
	lf, ok := el.(leaf[V, A])
	assert(ok, "dump: unexpected element type")
	p.line(depth, "“%v” [%v]", lf.a, lf.m)
}
