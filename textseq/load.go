package textseq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/fingertree/seq"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Progress reports the state of a running load. Progress events are
// broadcast after every fragment read from the file.
type Progress struct {
	Fragments int   // number of fragments read so far
	Bytes     int64 // number of bytes read so far
	Done      bool  // true for the final event
}

// Loader is a handle on a file being loaded as a sequence of lines.
type Loader struct {
	path  string          // file name
	info  os.FileInfo     // result from Stat(path)
	file  *os.File        // file handle
	cast  *caster.Caster  // broadcaster for async file loading
	done  chan struct{}   // closed when loading has finished
	lines seq.Seq[string] // result, valid after done is closed
	err   error           // remember last I/O error
}

// Load opens a file, which must be a regular text file, and starts loading
// it as a sequence of lines. Clients may indicate a recommended fragment
// length in bytes; a fragSize of 0 lets Load use sensible defaults.
//
// Loading is done asynchronously, with opening of the file always done
// synchronously. Clients collect the result with Loader.Lines, which
// blocks until loading is complete.
func Load(name string, fragSize int64) (*Loader, error) {
	l, err := openFile(name)
	if err != nil {
		return nil, err
	}
	size := l.info.Size()
	if fragSize <= 0 || fragSize > tenKb {
		if size < 64 {
			fragSize = max(size, 1)
		} else if size < 1024 {
			fragSize = 64
		} else if size < tenKb {
			fragSize = 256
		} else if size < hundredKb {
			fragSize = 512
		} else if size < oneMb {
			fragSize = twoKb
		} else {
			fragSize = sixKb
		}
	}
	go l.loadAllFragments(fragSize)
	return l, nil
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	l := &Loader{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast progress as fragments are loaded
		done: make(chan struct{}),
	}
	return l, nil
}

// Lines blocks until loading has finished and returns the sequence of
// lines. Line terminators are stripped.
func (l *Loader) Lines() (seq.Seq[string], error) {
	<-l.done
	return l.lines, l.err
}

// Err returns the loading error, if any. Err blocks until loading has
// finished.
func (l *Loader) Err() error {
	<-l.done
	return l.err
}

// Progress subscribes to progress events for this load. The returned
// channel is closed when loading finishes or ctx is cancelled. Events
// missed before the subscription are not replayed.
func (l *Loader) Progress(ctx context.Context) <-chan Progress {
	out := make(chan Progress, 8)
	ch, ok := l.cast.Sub(ctx, 8)
	if !ok { // loading already finished
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for m := range ch {
			p, ok := m.(Progress)
			if !ok {
				continue
			}
			// The send must stay cancellable: an abandoned subscription
			// would otherwise park this goroutine forever once out's
			// buffer is full.
			select {
			case out <- p:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// loadAllFragments reads the file fragment by fragment, splits fragments
// into lines and appends them to the line sequence. It runs as a
// goroutine and signals completion by closing l.done.
func (l *Loader) loadAllFragments(fragSize int64) {
	defer func() {
		l.file.Close()
		close(l.done)
		l.cast.Close()
	}()
	size := l.info.Size()
	lines := seq.New[string]()
	var carry strings.Builder // unterminated tail of the previous fragment
	buf := make([]byte, fragSize)
	frags := 0
	var pos int64
	for pos < size {
		n := min(fragSize, size-pos)
		cnt, err := l.file.ReadAt(buf[:n], pos)
		if err != nil && err != io.EOF {
			l.err = fmt.Errorf("error loading text fragment: %w", err)
			tracer().Errorf(l.err.Error())
			return
		} else if int64(cnt) < n {
			l.err = fmt.Errorf("not all bytes loaded for text fragment")
			tracer().Errorf(l.err.Error())
			return
		}
		frag := buf[:n]
		for {
			nl := bytes.IndexByte(frag, '\n')
			if nl < 0 {
				carry.Write(frag)
				break
			}
			carry.Write(frag[:nl])
			lines = lines.Append(strings.TrimSuffix(carry.String(), "\r"))
			carry.Reset()
			frag = frag[nl+1:]
		}
		pos += n
		frags++
		l.cast.TryPub(Progress{Fragments: frags, Bytes: pos})
	}
	if carry.Len() > 0 { // file does not end in a newline
		lines = lines.Append(carry.String())
	}
	l.lines = lines
	tracer().Debugf("loaded %d fragments from %s", frags, l.path)
	l.cast.TryPub(Progress{Fragments: frags, Bytes: pos, Done: true})
}
