package status

import (
	"strings"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds stored strings in bytes so status bar cells stay short
const MaxStringLen = 20

// ShortIDLen is the prefix of a session id kept by StoreID
const ShortIDLen = 8

// AtomicString is a lock-free string cell
// Zero value is ready to use
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncating to MaxStringLen bytes on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// StoreID keeps the leading group of a session id, enough to tell sessions apart in the status bar
func (s *AtomicString) StoreID(id string) {
	if i := strings.IndexByte(id, '-'); i > 0 && i <= ShortIDLen {
		id = id[:i]
	} else if len(id) > ShortIDLen {
		id = id[:ShortIDLen]
	}
	s.Store(id)
}

// Load returns the stored value, empty when unset
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
