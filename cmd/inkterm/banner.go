package main

// bannerLines reproduces the original firmware's boot banner: setup()
// fed these two lines through the parser before the first render so the
// panel never starts on a truly blank screen.
var bannerLines = []string{
	"Welcome to RobCo Industries (TM) Termlink",
	"Initializing...",
}

func bannerBytes() []byte {
	var out []byte
	for _, line := range bannerLines {
		out = append(out, line...)
		out = append(out, '\r', '\n')
	}
	return out
}
