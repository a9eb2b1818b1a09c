package keys

// catalog is the US-layout key table. Lookup copies entries out, so the map is
// never mutated after init.
var catalog = map[string]Descriptor{
	// Control and navigation keys
	"Backspace":   {Code: "Backspace", Key: "Backspace", VirtualKeyCode: 8},
	"Tab":         {Code: "Tab", Key: "Tab", VirtualKeyCode: 9},
	"Enter":       {Code: "Enter", Key: "Enter", Text: "\r", UnmodifiedText: "\r", VirtualKeyCode: 13},
	"Pause":       {Code: "Pause", Key: "Pause", VirtualKeyCode: 19},
	"CapsLock":    {Code: "CapsLock", Key: "CapsLock", VirtualKeyCode: 20},
	"Escape":      {Code: "Escape", Key: "Escape", VirtualKeyCode: 27},
	"Space":       {Code: "Space", Key: " ", Text: " ", UnmodifiedText: " ", VirtualKeyCode: 32},
	"PageUp":      {Code: "PageUp", Key: "PageUp", VirtualKeyCode: 33},
	"PageDown":    {Code: "PageDown", Key: "PageDown", VirtualKeyCode: 34},
	"End":         {Code: "End", Key: "End", VirtualKeyCode: 35},
	"Home":        {Code: "Home", Key: "Home", VirtualKeyCode: 36},
	"ArrowLeft":   {Code: "ArrowLeft", Key: "ArrowLeft", VirtualKeyCode: 37},
	"ArrowUp":     {Code: "ArrowUp", Key: "ArrowUp", VirtualKeyCode: 38},
	"ArrowRight":  {Code: "ArrowRight", Key: "ArrowRight", VirtualKeyCode: 39},
	"ArrowDown":   {Code: "ArrowDown", Key: "ArrowDown", VirtualKeyCode: 40},
	"PrintScreen": {Code: "PrintScreen", Key: "PrintScreen", VirtualKeyCode: 44},
	"Insert":      {Code: "Insert", Key: "Insert", VirtualKeyCode: 45},
	"Delete":      {Code: "Delete", Key: "Delete", VirtualKeyCode: 46},
	"ContextMenu": {Code: "ContextMenu", Key: "ContextMenu", VirtualKeyCode: 93},
	"NumLock":     {Code: "NumLock", Key: "NumLock", VirtualKeyCode: 144},
	"ScrollLock":  {Code: "ScrollLock", Key: "ScrollLock", VirtualKeyCode: 145},

	// Modifier keys. Left and right variants alias the same modifier bit;
	// the bare name resolves to the left-hand physical key.
	"Shift":        {Code: "ShiftLeft", Key: "Shift", VirtualKeyCode: 16, Modifier: ModifierShift},
	"ShiftLeft":    {Code: "ShiftLeft", Key: "Shift", VirtualKeyCode: 16, Modifier: ModifierShift},
	"ShiftRight":   {Code: "ShiftRight", Key: "Shift", VirtualKeyCode: 16, Modifier: ModifierShift},
	"Control":      {Code: "ControlLeft", Key: "Control", VirtualKeyCode: 17, Modifier: ModifierControl},
	"ControlLeft":  {Code: "ControlLeft", Key: "Control", VirtualKeyCode: 17, Modifier: ModifierControl},
	"ControlRight": {Code: "ControlRight", Key: "Control", VirtualKeyCode: 17, Modifier: ModifierControl},
	"Alt":          {Code: "AltLeft", Key: "Alt", VirtualKeyCode: 18, Modifier: ModifierAlt},
	"AltLeft":      {Code: "AltLeft", Key: "Alt", VirtualKeyCode: 18, Modifier: ModifierAlt},
	"AltRight":     {Code: "AltRight", Key: "Alt", VirtualKeyCode: 18, Modifier: ModifierAlt},
	"Meta":         {Code: "MetaLeft", Key: "Meta", VirtualKeyCode: 91, Modifier: ModifierMeta},
	"MetaLeft":     {Code: "MetaLeft", Key: "Meta", VirtualKeyCode: 91, Modifier: ModifierMeta},
	"MetaRight":    {Code: "MetaRight", Key: "Meta", VirtualKeyCode: 92, Modifier: ModifierMeta},

	// Function keys
	"F1":  {Code: "F1", Key: "F1", VirtualKeyCode: 112},
	"F2":  {Code: "F2", Key: "F2", VirtualKeyCode: 113},
	"F3":  {Code: "F3", Key: "F3", VirtualKeyCode: 114},
	"F4":  {Code: "F4", Key: "F4", VirtualKeyCode: 115},
	"F5":  {Code: "F5", Key: "F5", VirtualKeyCode: 116},
	"F6":  {Code: "F6", Key: "F6", VirtualKeyCode: 117},
	"F7":  {Code: "F7", Key: "F7", VirtualKeyCode: 118},
	"F8":  {Code: "F8", Key: "F8", VirtualKeyCode: 119},
	"F9":  {Code: "F9", Key: "F9", VirtualKeyCode: 120},
	"F10": {Code: "F10", Key: "F10", VirtualKeyCode: 121},
	"F11": {Code: "F11", Key: "F11", VirtualKeyCode: 122},
	"F12": {Code: "F12", Key: "F12", VirtualKeyCode: 123},

	// Numpad
	"NumpadMultiply": {Code: "NumpadMultiply", Key: "*", Text: "*", UnmodifiedText: "*", VirtualKeyCode: 106},
	"NumpadAdd":      {Code: "NumpadAdd", Key: "+", Text: "+", UnmodifiedText: "+", VirtualKeyCode: 107},
	"NumpadSubtract": {Code: "NumpadSubtract", Key: "-", Text: "-", UnmodifiedText: "-", VirtualKeyCode: 109},
	"NumpadDecimal":  {Code: "NumpadDecimal", Key: ".", Text: ".", UnmodifiedText: ".", VirtualKeyCode: 110},
	"NumpadDivide":   {Code: "NumpadDivide", Key: "/", Text: "/", UnmodifiedText: "/", VirtualKeyCode: 111},
	"NumpadEnter":    {Code: "NumpadEnter", Key: "Enter", Text: "\r", UnmodifiedText: "\r", VirtualKeyCode: 13},
}

// shiftedDigits maps the top-row digits to the symbol produced with Shift.
var shiftedDigits = map[byte]string{
	'1': "!", '2': "@", '3': "#", '4': "$", '5': "%",
	'6': "^", '7': "&", '8': "*", '9': "(", '0': ")",
}

// punctuation maps unshifted punctuation to its code, virtual key code and
// shifted variant.
var punctuation = map[string]struct {
	code    string
	vk      int
	shifted string
}{
	";":  {"Semicolon", 186, ":"},
	"=":  {"Equal", 187, "+"},
	",":  {"Comma", 188, "<"},
	"-":  {"Minus", 189, "_"},
	".":  {"Period", 190, ">"},
	"/":  {"Slash", 191, "?"},
	"`":  {"Backquote", 192, "~"},
	"[":  {"BracketLeft", 219, "{"},
	"\\": {"Backslash", 220, "|"},
	"]":  {"BracketRight", 221, "}"},
	"'":  {"Quote", 222, "\""},
}

func init() {
	// Letters: lowercase entry plus an uppercase alias that types the
	// shifted character directly.
	for c := byte('a'); c <= 'z'; c++ {
		lower := string(c)
		upper := string(c - 'a' + 'A')
		code := "Key" + upper
		vk := int(c - 'a' + 'A')
		catalog[lower] = Descriptor{
			Code: code, Key: lower,
			Text: lower, UnmodifiedText: lower, ShiftedText: upper,
			VirtualKeyCode: vk,
		}
		catalog[upper] = Descriptor{
			Code: code, Key: upper,
			Text: upper, UnmodifiedText: lower, ShiftedText: upper,
			VirtualKeyCode: vk,
		}
	}

	// Digits and their shifted symbols.
	for c := byte('0'); c <= '9'; c++ {
		digit := string(c)
		code := "Digit" + digit
		vk := int(c)
		shifted := shiftedDigits[c]
		catalog[digit] = Descriptor{
			Code: code, Key: digit,
			Text: digit, UnmodifiedText: digit, ShiftedText: shifted,
			VirtualKeyCode: vk,
		}
		catalog[shifted] = Descriptor{
			Code: code, Key: shifted,
			Text: shifted, UnmodifiedText: digit, ShiftedText: shifted,
			VirtualKeyCode: vk,
		}
	}

	// Punctuation and shifted variants.
	for base, p := range punctuation {
		catalog[base] = Descriptor{
			Code: p.code, Key: base,
			Text: base, UnmodifiedText: base, ShiftedText: p.shifted,
			VirtualKeyCode: p.vk,
		}
		catalog[p.shifted] = Descriptor{
			Code: p.code, Key: p.shifted,
			Text: p.shifted, UnmodifiedText: base, ShiftedText: p.shifted,
			VirtualKeyCode: p.vk,
		}
	}
}
