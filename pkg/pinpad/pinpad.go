// Package pinpad models the six-slot PIN entry used on the login screen:
// one digit per slot, focus moves forward on input and back on backspace,
// pasted text is spread across the slots, and a complete PIN with an email
// present requests submission.
package pinpad

import "strings"

const Length = 6

// Blurred is the focus index reported once the pad has handed off to submit.
const Blurred = -1

type Pad struct {
	digits [Length]string
	email  string
	focus  int
	submit bool
}

func New(email string) *Pad {
	return &Pad{email: strings.TrimSpace(email)}
}

func (p *Pad) Focus() int {
	return p.focus
}

// Input writes v into slot i and returns the slot that should hold focus.
// Anything other than a single digit or an empty string is ignored.
func (p *Pad) Input(i int, v string) int {
	if i < 0 || i >= Length {
		return p.focus
	}
	if v != "" && !isDigit(v) {
		p.focus = i
		return p.focus
	}

	p.digits[i] = v
	p.focus = i

	if v == "" {
		return p.focus
	}

	if i < Length-1 {
		p.focus = i + 1
		return p.focus
	}

	if p.email != "" && p.Complete() {
		p.submit = true
		p.focus = Blurred
	}
	return p.focus
}

// Backspace clears slot i, or when it is already empty moves back one slot
// and clears that one instead.
func (p *Pad) Backspace(i int) int {
	if i < 0 || i >= Length {
		return p.focus
	}

	switch {
	case p.digits[i] != "":
		p.digits[i] = ""
		p.focus = i
	case i > 0:
		p.digits[i-1] = ""
		p.focus = i - 1
	default:
		p.focus = 0
	}
	return p.focus
}

// Paste keeps the digits of text, fills slots from the first one and
// returns the next focus. Text without digits leaves the pad untouched.
func (p *Pad) Paste(text string) int {
	digits := Normalize(text)
	if digits == "" {
		return p.focus
	}

	for i := 0; i < len(digits); i++ {
		p.digits[i] = string(digits[i])
	}

	if len(digits) == Length && p.email != "" {
		p.submit = true
		p.focus = Blurred
		return p.focus
	}

	p.focus = len(digits)
	if p.focus > Length-1 {
		p.focus = Length - 1
	}
	return p.focus
}

func (p *Pad) Value() string {
	return strings.Join(p.digits[:], "")
}

func (p *Pad) Complete() bool {
	for _, d := range p.digits {
		if d == "" {
			return false
		}
	}
	return true
}

// ShouldSubmit reports a pending auto-submit and clears it, so one
// completed entry triggers one submission.
func (p *Pad) ShouldSubmit() bool {
	if !p.submit {
		return false
	}
	p.submit = false
	return true
}

func (p *Pad) Reset() {
	p.digits = [Length]string{}
	p.focus = 0
	p.submit = false
}

// Normalize strips non-digits and keeps at most six of what remains.
func Normalize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == Length {
				break
			}
		}
	}
	return b.String()
}

// FromDigits replays per-slot input through a pad and returns the PIN, or
// false when any slot is missing or not a digit.
func FromDigits(digits []string) (string, bool) {
	if len(digits) != Length {
		return "", false
	}

	pad := New("")
	for i, d := range digits {
		if !isDigit(d) {
			return "", false
		}
		pad.Input(i, d)
	}
	return pad.Value(), pad.Complete()
}

// Valid reports whether pin is exactly six ASCII digits.
func Valid(pin string) bool {
	if len(pin) != Length {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

func isDigit(v string) bool {
	return len(v) == 1 && v[0] >= '0' && v[0] <= '9'
}
