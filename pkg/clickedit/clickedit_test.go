package clickedit

// Test doubles for the surface contract. The fakes record surface
// state and let tests drive the click/focus-loss callbacks directly,
// without a terminal.

type fakeDisplay struct {
	text    string
	visible bool
	clicked func()
}

func (d *fakeDisplay) SetText(text string)     { d.text = text }
func (d *fakeDisplay) SetVisible(visible bool) { d.visible = visible }
func (d *fakeDisplay) OnClick(fn func())       { d.clicked = fn }

// click simulates the user clicking the flat text.
func (d *fakeDisplay) click() { d.clicked() }

type fakeInput struct {
	raw       Value
	visible   bool
	focused   bool
	lostFocus func()
	edited    func()
}

func (i *fakeInput) RawValue() Value         { return i.raw }
func (i *fakeInput) SetRawValue(v Value)     { i.raw = v }
func (i *fakeInput) SetVisible(visible bool) { i.visible = visible }
func (i *fakeInput) RequestFocus()           { i.focused = true }
func (i *fakeInput) OnFocusLost(fn func())   { i.lostFocus = fn }
func (i *fakeInput) OnEdit(fn func())        { i.edited = fn }

// edit simulates the user changing the in-progress value.
func (i *fakeInput) edit(v Value) {
	i.raw = v
	if i.edited != nil {
		i.edited()
	}
}

// blur simulates focus leaving the input surface.
func (i *fakeInput) blur() {
	i.focused = false
	i.lostFocus()
}

type fakeToolkit struct {
	display *fakeDisplay
	input   *fakeInput
}

func newFakeToolkit() *fakeToolkit {
	return &fakeToolkit{display: &fakeDisplay{}, input: &fakeInput{}}
}

func (t *fakeToolkit) NewDisplaySurface() DisplaySurface { return t.display }

func (t *fakeToolkit) NewInputSurface(Variant) (InputSurface, error) { return t.input, nil }
