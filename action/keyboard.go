package action

import (
	"log"
	"strings"
	"unicode"

	"github.com/lixenwraith/gaze-browse/parameter"
)

// KeyboardView is the read-only keyboard state handed to the drawing pass
type KeyboardView struct {
	Lifecycle   Lifecycle
	Text        string
	CurrentWord string
	Shift       bool
	Frame       OverlayHandle
}

// KeyboardAction collects text typed on an on-screen keyboard
// Key presses arrive from the host between ticks; Update only reports completion
type KeyboardAction struct {
	overlay   Overlay
	frameName string

	lifecycle Lifecycle
	frame     OverlayHandle
	text      strings.Builder
	word      []rune
	shift     bool
	complete  bool
	submit    bool
}

// NewKeyboardAction creates an inactive keyboard bound to the host overlay collection
func NewKeyboardAction(overlay Overlay) *KeyboardAction {
	return &KeyboardAction{
		overlay:   overlay,
		frameName: parameter.KeyboardFrameName,
		frame:     NoOverlay,
	}
}

// Activate clears the buffers and acquires the keyboard frame
// A frame still held from an earlier session is released first
func (k *KeyboardAction) Activate() {
	k.releaseFrame()
	k.lifecycle = Active
	k.text.Reset()
	k.word = k.word[:0]
	k.shift = false
	k.complete = false
	k.submit = false

	if k.overlay != nil {
		k.frame = k.overlay.AddFloatingFrame(k.frameName)
	}
}

// Update reports whether the user completed or submitted the text
func (k *KeyboardAction) Update(tpf float64, input Input) bool {
	switch k.lifecycle {
	case Inactive:
		return false
	case Finished, Aborted:
		return true
	}
	if k.complete || k.submit {
		k.commitWord()
		k.lifecycle = Finished
		log.Printf("Keyboard finished (submit=%t, %d runes)", k.submit, len([]rune(k.text.String())))
		return true
	}
	return false
}

// Draw hands the keyboard view to the canvas
func (k *KeyboardAction) Draw(canvas Canvas) {
	if canvas == nil || k.lifecycle == Inactive {
		return
	}
	canvas.DrawKeyboard(k.View())
}

// Deactivate releases the overlay frame
func (k *KeyboardAction) Deactivate() {
	k.releaseFrame()
	k.lifecycle = Inactive
}

// Abort terminates without completing, typed text is kept but not submitted
func (k *KeyboardAction) Abort() {
	if k.lifecycle != Active {
		return
	}
	k.lifecycle = Aborted
	k.submit = false
	log.Printf("Keyboard aborted")
}

func (k *KeyboardAction) releaseFrame() {
	if k.frame != NoOverlay && k.overlay != nil {
		k.overlay.RemoveFloatingFrame(k.frame)
	}
	k.frame = NoOverlay
}

// editable reports whether key input is accepted
func (k *KeyboardAction) editable() bool {
	return k.lifecycle == Active && !k.complete && !k.submit
}

// TypeRune appends a character to the current word, honoring shift once
func (k *KeyboardAction) TypeRune(r rune) {
	if !k.editable() {
		return
	}
	if unicode.IsSpace(r) {
		k.Space()
		return
	}
	if k.shift {
		r = unicode.ToUpper(r)
		k.shift = false
	}
	k.word = append(k.word, r)
}

// Space commits the current word followed by a separator
func (k *KeyboardAction) Space() {
	if !k.editable() {
		return
	}
	k.commitWord()
	k.text.WriteByte(' ')
}

// DeleteCharacter removes the last rune of the current word, or of the committed text
func (k *KeyboardAction) DeleteCharacter() {
	if !k.editable() {
		return
	}
	if n := len(k.word); n > 0 {
		k.word = k.word[:n-1]
		return
	}
	committed := []rune(k.text.String())
	if len(committed) == 0 {
		return
	}
	committed = committed[:len(committed)-1]
	k.text.Reset()
	k.text.WriteString(string(committed))
}

// ToggleShift capitalizes the next typed rune
func (k *KeyboardAction) ToggleShift() {
	if !k.editable() {
		return
	}
	k.shift = !k.shift
}

// AcceptSuggestion replaces the current word with a completion and commits it
func (k *KeyboardAction) AcceptSuggestion(word string) {
	if !k.editable() || word == "" {
		return
	}
	k.word = append(k.word[:0], []rune(word)...)
	k.commitWord()
	k.text.WriteByte(' ')
}

// Complete finishes input without submitting
func (k *KeyboardAction) Complete() {
	if k.lifecycle == Active {
		k.complete = true
	}
}

// Submit finishes input and asks the host to submit the field
func (k *KeyboardAction) Submit() {
	if k.lifecycle == Active {
		k.submit = true
	}
}

func (k *KeyboardAction) commitWord() {
	if len(k.word) == 0 {
		return
	}
	k.text.WriteString(string(k.word))
	k.word = k.word[:0]
}

// Text returns committed text plus the word in progress
func (k *KeyboardAction) Text() string {
	return k.text.String() + string(k.word)
}

// CurrentWord returns the word in progress
func (k *KeyboardAction) CurrentWord() string {
	return string(k.word)
}

// Submitted reports whether the text should be submitted by the host
func (k *KeyboardAction) Submitted() bool {
	return k.submit
}

// Lifecycle returns the protocol state
func (k *KeyboardAction) Lifecycle() Lifecycle {
	return k.lifecycle
}

// Frame returns the owned overlay handle, NoOverlay when none
func (k *KeyboardAction) Frame() OverlayHandle {
	return k.frame
}

// View snapshots the keyboard state
func (k *KeyboardAction) View() KeyboardView {
	return KeyboardView{
		Lifecycle:   k.lifecycle,
		Text:        k.Text(),
		CurrentWord: k.CurrentWord(),
		Shift:       k.shift,
		Frame:       k.frame,
	}
}
