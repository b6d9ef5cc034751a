package keysym

// table lists the keysym names accepted in key specs.
var table = []struct {
	name string
	sym  Keysym
}{
	// Latin-1 punctuation
	{"space", 0x0020},
	{"exclam", 0x0021},
	{"quotedbl", 0x0022},
	{"numbersign", 0x0023},
	{"dollar", 0x0024},
	{"percent", 0x0025},
	{"ampersand", 0x0026},
	{"apostrophe", 0x0027},
	{"parenleft", 0x0028},
	{"parenright", 0x0029},
	{"asterisk", 0x002a},
	{"plus", 0x002b},
	{"comma", 0x002c},
	{"minus", 0x002d},
	{"period", 0x002e},
	{"slash", 0x002f},
	{"colon", 0x003a},
	{"semicolon", 0x003b},
	{"less", 0x003c},
	{"equal", 0x003d},
	{"greater", 0x003e},
	{"question", 0x003f},
	{"at", 0x0040},
	{"bracketleft", 0x005b},
	{"backslash", 0x005c},
	{"bracketright", 0x005d},
	{"asciicircum", 0x005e},
	{"underscore", 0x005f},
	{"grave", 0x0060},
	{"braceleft", 0x007b},
	{"bar", 0x007c},
	{"braceright", 0x007d},
	{"asciitilde", 0x007e},
	// Digits and letters
	{"0", 0x0030},
	{"1", 0x0031},
	{"2", 0x0032},
	{"3", 0x0033},
	{"4", 0x0034},
	{"5", 0x0035},
	{"6", 0x0036},
	{"7", 0x0037},
	{"8", 0x0038},
	{"9", 0x0039},
	{"a", 0x0061},
	{"b", 0x0062},
	{"c", 0x0063},
	{"d", 0x0064},
	{"e", 0x0065},
	{"f", 0x0066},
	{"g", 0x0067},
	{"h", 0x0068},
	{"i", 0x0069},
	{"j", 0x006a},
	{"k", 0x006b},
	{"l", 0x006c},
	{"m", 0x006d},
	{"n", 0x006e},
	{"o", 0x006f},
	{"p", 0x0070},
	{"q", 0x0071},
	{"r", 0x0072},
	{"s", 0x0073},
	{"t", 0x0074},
	{"u", 0x0075},
	{"v", 0x0076},
	{"w", 0x0077},
	{"x", 0x0078},
	{"y", 0x0079},
	{"z", 0x007a},
	{"A", 0x0041},
	{"B", 0x0042},
	{"C", 0x0043},
	{"D", 0x0044},
	{"E", 0x0045},
	{"F", 0x0046},
	{"G", 0x0047},
	{"H", 0x0048},
	{"I", 0x0049},
	{"J", 0x004a},
	{"K", 0x004b},
	{"L", 0x004c},
	{"M", 0x004d},
	{"N", 0x004e},
	{"O", 0x004f},
	{"P", 0x0050},
	{"Q", 0x0051},
	{"R", 0x0052},
	{"S", 0x0053},
	{"T", 0x0054},
	{"U", 0x0055},
	{"V", 0x0056},
	{"W", 0x0057},
	{"X", 0x0058},
	{"Y", 0x0059},
	{"Z", 0x005a},
	// Editing and navigation
	{"BackSpace", 0xff08},
	{"Tab", 0xff09},
	{"Linefeed", 0xff0a},
	{"Clear", 0xff0b},
	{"Return", 0xff0d},
	{"Pause", 0xff13},
	{"Scroll_Lock", 0xff14},
	{"Sys_Req", 0xff15},
	{"Escape", 0xff1b},
	{"Delete", 0xffff},
	{"Home", 0xff50},
	{"Left", 0xff51},
	{"Up", 0xff52},
	{"Right", 0xff53},
	{"Down", 0xff54},
	{"Prior", 0xff55},
	{"Page_Up", 0xff55},
	{"Next", 0xff56},
	{"Page_Down", 0xff56},
	{"End", 0xff57},
	{"Begin", 0xff58},
	{"Select", 0xff60},
	{"Print", 0xff61},
	{"Execute", 0xff62},
	{"Insert", 0xff63},
	{"Undo", 0xff65},
	{"Redo", 0xff66},
	{"Menu", 0xff67},
	{"Find", 0xff68},
	{"Cancel", 0xff69},
	{"Help", 0xff6a},
	{"Break", 0xff6b},
	{"Num_Lock", 0xff7f},
	{"ISO_Left_Tab", 0xfe20},
	// Keypad
	{"KP_Space", 0xff80},
	{"KP_Tab", 0xff89},
	{"KP_Enter", 0xff8d},
	{"KP_Home", 0xff95},
	{"KP_Left", 0xff96},
	{"KP_Up", 0xff97},
	{"KP_Right", 0xff98},
	{"KP_Down", 0xff99},
	{"KP_Prior", 0xff9a},
	{"KP_Next", 0xff9b},
	{"KP_End", 0xff9c},
	{"KP_Begin", 0xff9d},
	{"KP_Insert", 0xff9e},
	{"KP_Delete", 0xff9f},
	{"KP_Equal", 0xffbd},
	{"KP_Multiply", 0xffaa},
	{"KP_Add", 0xffab},
	{"KP_Separator", 0xffac},
	{"KP_Subtract", 0xffad},
	{"KP_Decimal", 0xffae},
	{"KP_Divide", 0xffaf},
	{"KP_0", 0xffb0},
	{"KP_1", 0xffb1},
	{"KP_2", 0xffb2},
	{"KP_3", 0xffb3},
	{"KP_4", 0xffb4},
	{"KP_5", 0xffb5},
	{"KP_6", 0xffb6},
	{"KP_7", 0xffb7},
	{"KP_8", 0xffb8},
	{"KP_9", 0xffb9},
	// Function keys
	{"F1", 0xffbe},
	{"F2", 0xffbf},
	{"F3", 0xffc0},
	{"F4", 0xffc1},
	{"F5", 0xffc2},
	{"F6", 0xffc3},
	{"F7", 0xffc4},
	{"F8", 0xffc5},
	{"F9", 0xffc6},
	{"F10", 0xffc7},
	{"F11", 0xffc8},
	{"F12", 0xffc9},
	{"F13", 0xffca},
	{"F14", 0xffcb},
	{"F15", 0xffcc},
	{"F16", 0xffcd},
	{"F17", 0xffce},
	{"F18", 0xffcf},
	{"F19", 0xffd0},
	{"F20", 0xffd1},
	{"F21", 0xffd2},
	{"F22", 0xffd3},
	{"F23", 0xffd4},
	{"F24", 0xffd5},
	// Modifiers
	{"Shift_L", 0xffe1},
	{"Shift_R", 0xffe2},
	{"Control_L", 0xffe3},
	{"Control_R", 0xffe4},
	{"Caps_Lock", 0xffe5},
	{"Shift_Lock", 0xffe6},
	{"Meta_L", 0xffe7},
	{"Meta_R", 0xffe8},
	{"Alt_L", 0xffe9},
	{"Alt_R", 0xffea},
	{"Super_L", 0xffeb},
	{"Super_R", 0xffec},
	{"Hyper_L", 0xffed},
	{"Hyper_R", 0xffee},
}
