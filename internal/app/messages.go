package app

type copyResultMsg struct {
	generation int
	row        int
	markup     string
	method     ClipboardMethod
	err        error
}
