package main

// demoScript is a small ANSI byte stream exercising the parser's CSI/SGR
// dispatch: cursor positioning, 16-color and truecolor SGR, and a
// three-row box drawn with put_char via plain text.
const demoScript = "" +
	"\x1b[1;1H" +
	"\x1b[38;2;255;85;85m\x1b[48;2;0;0;0mansiscreen\x1b[0m\r\n" +
	"\x1b[32mexact CGA green\x1b[0m \x1b[94mbright blue\x1b[0m\r\n" +
	"\x1b[38;5;208mxterm-256 orange\x1b[0m\r\n" +
	"\x1b[1m\x1b[4mbold + underline\x1b[0m\r\n" +
	"┌──────────┐\r\n" +
	"│  preview │\r\n" +
	"└──────────┘\r\n"
