package tui

// typewriter reveals text one rune per Step.
type typewriter struct {
	text  []rune
	shown int
}

func newTypewriter(text string) typewriter {
	return typewriter{text: []rune(text)}
}

// Step reveals the next rune and reports whether anything is left to reveal.
func (t *typewriter) Step() bool {
	if t.shown < len(t.text) {
		t.shown++
	}
	return !t.Done()
}

func (t *typewriter) Done() bool { return t.shown >= len(t.text) }

func (t *typewriter) Reset() { t.shown = 0 }

func (t typewriter) Visible() string { return string(t.text[:t.shown]) }
