// Package snss defines the boundary to the SNSS session-snapshot
// decoder capability. The binary layout of SNSS files is out of scope
// here; a Decoder is a black box that yields navigation records or
// fails for a given file.
package snss

import (
	"errors"
	"io"
)

// Dialect selects which of the two closely related SNSS layouts a file
// uses.
type Dialect int

const (
	// DialectSession covers "Current Session" and "Last Session" files.
	DialectSession Dialect = iota
	// DialectTab covers "Current Tabs" and "Last Tabs" files.
	DialectTab
)

func (d Dialect) String() string {
	switch d {
	case DialectSession:
		return "session"
	case DialectTab:
		return "tab"
	default:
		return "unknown"
	}
}

// NavigationEntry is one visited-URL record recovered from a snapshot
// file, distinct from a history-store row.
type NavigationEntry struct {
	URL   string
	Title string
}

// Decoder recovers navigation entries from one snapshot file. A Decode
// failure is recoverable: the caller skips that file and tries the next
// candidate.
type Decoder interface {
	Decode(r io.Reader, dialect Dialect) ([]NavigationEntry, error)
}

// ErrDecoderUnavailable reports that no decoder capability could be
// located or initialized; the tabs feature is then absent as a whole.
var ErrDecoderUnavailable = errors.New("snss decoder unavailable")

var registered Decoder

// Register installs the process-wide decoder capability. A build that
// bundles a decoder calls this from an init function in its own file,
// typically a build-tagged registration file under cmd/chrome-rescue:
//
//	//go:build snss
//
//	func init() { snss.Register(mydecoder.New()) }
//
// Builds that ship without one leave it unset and tab extraction
// reports absence.
func Register(d Decoder) {
	registered = d
}

// Registered returns the installed decoder, or nil when none exists.
func Registered() Decoder {
	return registered
}
